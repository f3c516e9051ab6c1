package store

import (
	"context"
	"strings"

	"github.com/jmvillal/tasktrack/internal/domain"
)

// Sort directions accepted by PageRequest.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// PageRequest describes one page of a sorted task listing.
// Page is zero-based.
type PageRequest struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection string
}

// Offset returns the row offset for this page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Normalize clamps out-of-range paging values and canonicalizes the sort
// direction. Unknown sort fields are left to the implementation's whitelist.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = 25
	}
	if p.SortBy == "" {
		p.SortBy = "dueDate"
	}
	if strings.EqualFold(p.SortDirection, SortAsc) {
		p.SortDirection = SortAsc
	} else {
		p.SortDirection = SortDesc
	}
	return p
}

// TaskStore defines the narrow gateway interface over the task collection.
// All operations take a context and surface failures as errors; the lifecycle
// service is responsible for reclassifying them at its boundary.
type TaskStore interface {
	// FindByID retrieves a task by its unique ID, whether or not it has
	// been soft-deleted. Filtering deleted tasks is service policy, not a
	// gateway concern. Returns ErrTaskNotFound if no row exists.
	FindByID(ctx context.Context, id string) (*domain.Task, error)

	// FindByTitleAndUser retrieves the non-deleted task with the given
	// title owned by userID. Returns ErrTaskNotFound if none exists.
	FindByTitleAndUser(ctx context.Context, title, userID string) (*domain.Task, error)

	// CountByUser returns the number of non-deleted tasks owned by userID.
	CountByUser(ctx context.Context, userID string) (int64, error)

	// CountByUserAndStatus returns the number of non-deleted tasks owned by
	// userID with the given status.
	CountByUserAndStatus(ctx context.Context, userID string, status domain.Status) (int64, error)

	// FindPageByUser retrieves one page of the user's tasks ordered per the
	// page request. Soft-deleted tasks are excluded.
	FindPageByUser(ctx context.Context, userID string, page PageRequest) ([]*domain.Task, error)

	// Save inserts or replaces the task keyed by its ID, assigning a new
	// identifier when the ID is empty. Returns the persisted task.
	// Returns ErrTitleExists when the insert violates the per-user unique
	// title constraint on non-deleted tasks.
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)
}
