package api

import (
	"errors"
	"net/http"

	"github.com/jmvillal/tasktrack/internal/service"
)

// MapErrorToStatusCode maps service errors to HTTP status codes. The mapping
// keys off the error classification only, never the message text.
func MapErrorToStatusCode(err error) int {
	switch {
	case service.IsConflict(err):
		return http.StatusConflict

	case service.IsNotFound(err):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a message safe to expose to clients. Classified
// service errors already carry fixed, sanitized messages; anything else gets
// a generic one.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var taskErr *service.TaskError
	if errors.As(err, &taskErr) {
		return taskErr.Message
	}

	return "An unexpected error occurred"
}
