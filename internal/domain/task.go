package domain

import (
	"fmt"
	"time"
)

// Task-specific validation errors. All wrap ErrValidation so callers can
// match the category without naming the field.
var (
	// ErrTaskUserIDEmpty is returned when a task's owning user ID is empty.
	ErrTaskUserIDEmpty = fmt.Errorf("%w: task user ID cannot be empty", ErrValidation)

	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = fmt.Errorf("%w: task title cannot be empty", ErrValidation)

	// ErrTaskDueDateEmpty is returned when a task's due date is unset.
	ErrTaskDueDateEmpty = fmt.Errorf("%w: task due date cannot be empty", ErrValidation)
)

// Status represents the workflow state of a task.
type Status string

// Valid task statuses. A freshly created task is always StatusPending;
// the lifecycle service never transitions statuses on its own.
const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusExpired    Status = "EXPIRED"
	StatusCompleted  Status = "COMPLETED"
)

// IsValid reports whether s is one of the known task statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusExpired, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus converts a raw string into a Status.
// Returns ErrInvalidStatus if the value is not a known status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Task represents a single tracked task owned by a user.
//
// The ID is assigned by the store on first save and is empty for entities
// that have not been persisted yet. Deleted tasks are retained with the
// Deleted flag set rather than being physically removed.
type Task struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	DueDate          time.Time `json:"due_date"`
	Status           Status    `json:"status"`
	CreatedDate      time.Time `json:"created_date"`
	CreatedBy        string    `json:"created_by"`
	LastModifiedDate time.Time `json:"last_modified_date,omitempty"`
	LastModifiedBy   string    `json:"last_modified_by,omitempty"`
	Deleted          bool      `json:"deleted"`
}

// NewTask creates a new Task owned by userID with the given title,
// description, and due date. The status is forced to StatusPending, the
// deleted flag to false, and creation audit fields are stamped; the ID is
// left empty for the store to assign.
// Returns an error if validation fails.
func NewTask(userID, title, description string, dueDate time.Time) (*Task, error) {
	task := &Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      StatusPending,
		CreatedDate: time.Now().UTC(),
		CreatedBy:   userID,
		Deleted:     false,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.UserID == "" {
		return ErrTaskUserIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if t.DueDate.IsZero() {
		return ErrTaskDueDateEmpty
	}

	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}

// MarkDeleted flips the soft-delete flag and stamps the last-modified
// timestamp. All other fields are left untouched.
func (t *Task) MarkDeleted() {
	t.Deleted = true
	t.LastModifiedDate = time.Now().UTC()
}
