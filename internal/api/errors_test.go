package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmvillal/tasktrack/internal/service"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"conflict", service.NewConflictError("Task already exists"), http.StatusConflict},
		{"not found", service.NewNotFoundError("Task not found"), http.StatusNotFound},
		{"internal", service.NewInternalError("Error creating task", nil), http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped conflict",
			fmt.Errorf("handling: %w", service.NewConflictError("Task already exists")),
			http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "Task not found",
		GetSafeErrorMessage(service.NewNotFoundError("Task not found")))
	assert.Equal(t, "Error updating task",
		GetSafeErrorMessage(service.NewInternalError("Error updating task", errors.New("pq: secret"))))
	assert.Equal(t, "An unexpected error occurred",
		GetSafeErrorMessage(errors.New("pq: password=hunter2")))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
