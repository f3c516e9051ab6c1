package api

// TaskIDResponse carries the identifier of a freshly created task.
type TaskIDResponse struct {
	ID string `json:"id"`
}
