package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a TaskError for the caller-facing layer. The service
// only signals the kind; the transport encoding (HTTP status) is chosen by
// the adaptation layer.
type ErrorKind int

const (
	// KindInternal marks an unclassified store failure.
	KindInternal ErrorKind = iota

	// KindConflict marks a duplicate title for the user on create.
	KindConflict

	// KindNotFound marks a lookup whose identifier matched no entity.
	KindNotFound
)

// TaskError is the classified error produced at the boundary of every public
// lifecycle operation. Message is a fixed, human-readable string that is safe
// to expose; Err retains the original cause for logging and is never shown
// to callers of Internal errors.
type TaskError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface for TaskError.
func (e *TaskError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewConflictError creates a TaskError of kind Conflict.
func NewConflictError(message string) *TaskError {
	return &TaskError{Kind: KindConflict, Message: message}
}

// NewNotFoundError creates a TaskError of kind NotFound.
func NewNotFoundError(message string) *TaskError {
	return &TaskError{Kind: KindNotFound, Message: message}
}

// NewInternalError creates a TaskError of kind Internal wrapping the cause.
func NewInternalError(message string, err error) *TaskError {
	return &TaskError{Kind: KindInternal, Message: message, Err: err}
}

// classify wraps err as an Internal TaskError with the given message unless
// it is already a TaskError, in which case it propagates unchanged. Every
// store failure is reclassified exactly once at each operation boundary.
func classify(err error, internalMessage string) error {
	var taskErr *TaskError
	if errors.As(err, &taskErr) {
		return taskErr
	}
	return NewInternalError(internalMessage, err)
}

// IsConflict reports whether err is a Conflict TaskError.
func IsConflict(err error) bool {
	var taskErr *TaskError
	return errors.As(err, &taskErr) && taskErr.Kind == KindConflict
}

// IsNotFound reports whether err is a NotFound TaskError.
func IsNotFound(err error) bool {
	var taskErr *TaskError
	return errors.As(err, &taskErr) && taskErr.Kind == KindNotFound
}
