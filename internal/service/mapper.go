package service

import (
	"fmt"
	"time"

	"github.com/jmvillal/tasktrack/internal/domain"
)

// DueDateLayout is the wire format for due dates, e.g. "2026-09-14T10:00:00".
const DueDateLayout = "2006-01-02T15:04:05"

// parseDueDate parses the request's due date representation.
func parseDueDate(raw string) (time.Time, error) {
	t, err := time.Parse(DueDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: %w", raw, err)
	}
	return t, nil
}

// createOf builds a new entity from a create request: status is forced to
// PENDING and deleted to false regardless of the request, creation audit
// fields are stamped from the request's owner, and the ID is left empty for
// the store to assign.
func createOf(req TaskRequest) (*domain.Task, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	return &domain.Task{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      domain.StatusPending,
		CreatedDate: time.Now().UTC(),
		CreatedBy:   req.UserID,
		Deleted:     false,
	}, nil
}

// updateOf builds a replacement entity from an update request: every field
// comes from the request, and modification audit fields are stamped. The
// caller overwrites the ID with the existing task's identifier afterwards;
// created* fields are restored from the existing entity by the caller too.
func updateOf(req TaskRequest) (*domain.Task, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	return &domain.Task{
		ID:               req.ID,
		UserID:           req.UserID,
		Title:            req.Title,
		Description:      req.Description,
		DueDate:          dueDate,
		Status:           domain.Status(req.Status),
		LastModifiedDate: time.Now().UTC(),
		LastModifiedBy:   req.UserID,
	}, nil
}

// responseOf maps an entity to its abbreviated response shape: only
// ID, Title, and Description are carried. Used for list results.
func responseOf(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
	}
}

// withDetailsOf maps an entity to its full response shape. Used for
// get-by-id and update results.
func withDetailsOf(task *domain.Task) TaskResponse {
	deleted := task.Deleted
	resp := TaskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedBy:   task.CreatedBy,
		Deleted:     &deleted,
	}

	if !task.DueDate.IsZero() {
		due := task.DueDate
		resp.DueDate = &due
	}
	if !task.CreatedDate.IsZero() {
		created := task.CreatedDate
		resp.CreatedDate = &created
	}
	if !task.LastModifiedDate.IsZero() {
		modified := task.LastModifiedDate
		resp.LastModifiedDate = &modified
	}
	resp.LastModifiedBy = task.LastModifiedBy

	return resp
}
