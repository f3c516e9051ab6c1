package service

import "time"

// TaskRequest is the validated wire payload for Create and Update.
// The adaptation layer guarantees Title and DueDate are present and, on
// Create, that DueDate is future-dated; the service does not re-validate.
// UserID is stamped by the service from the caller identity, never taken
// from the client.
type TaskRequest struct {
	ID          string `json:"id,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	Title       string `json:"title"                 validate:"required"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date"              validate:"required"`
	Status      string `json:"status,omitempty"      validate:"omitempty,oneof=PENDING IN_PROGRESS EXPIRED COMPLETED"`
}

// TaskResponse is the wire shape for a task. List results carry only
// ID/Title/Description; single-item results carry the full field set.
// The asymmetry is deliberate: abbreviated rows keep list payloads small.
type TaskResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id,omitempty"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Status           string     `json:"status,omitempty"`
	CreatedDate      *time.Time `json:"created_date,omitempty"`
	CreatedBy        string     `json:"created_by,omitempty"`
	LastModifiedDate *time.Time `json:"last_modified_date,omitempty"`
	LastModifiedBy   string     `json:"last_modified_by,omitempty"`
	Deleted          *bool      `json:"deleted,omitempty"`
}

// QueryParams shape the List operation. Page is zero-based.
type QueryParams struct {
	Page          int
	Size          int
	Status        string
	SortBy        string
	SortDirection string
}

// DefaultQueryParams returns the documented List defaults.
func DefaultQueryParams() QueryParams {
	return QueryParams{
		Page:          0,
		Size:          25,
		Status:        "",
		SortBy:        "dueDate",
		SortDirection: "desc",
	}
}

// PageInfo summarizes pagination state for a List result.
type PageInfo struct {
	TotalElements    int64 `json:"totalElements"`
	PageSize         int   `json:"pageSize"`
	TotalPages       int64 `json:"totalPages"`
	CurrentPage      int   `json:"currentPage"`
	NumberOfElements int64 `json:"numberOfElements"`
}

// TaskPage is one page of abbreviated task responses plus its metadata.
// Tasks preserve the sort order the caller requested.
type TaskPage struct {
	Tasks  []TaskResponse
	Paging PageInfo
}

// buildPageInfo computes page metadata from the total element count and the
// query: totalPages = ceil(total/size); numberOfElements is zero for an empty
// result set and min(size, total - page*size) otherwise.
func buildPageInfo(totalElements int64, params QueryParams) PageInfo {
	size := int64(params.Size)

	var totalPages int64
	if size > 0 {
		totalPages = (totalElements + size - 1) / size
	}

	var numberOfElements int64
	if totalElements > 0 {
		remaining := totalElements - int64(params.Page)*size
		if remaining < 0 {
			remaining = 0
		}
		numberOfElements = remaining
		if size < numberOfElements {
			numberOfElements = size
		}
	}

	return PageInfo{
		TotalElements:    totalElements,
		PageSize:         params.Size,
		TotalPages:       totalPages,
		CurrentPage:      params.Page,
		NumberOfElements: numberOfElements,
	}
}
