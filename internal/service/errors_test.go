package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := NewConflictError("Task already exists")
		assert.Equal(t, "Task already exists", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewInternalError("Error creating task", cause)
		assert.Equal(t, "Error creating task: disk full", err.Error())
		assert.ErrorIs(t, err, cause)
	})
}

func TestClassify(t *testing.T) {
	t.Run("plain errors become internal", func(t *testing.T) {
		cause := errors.New("boom")
		err := classify(cause, "Error updating task")

		var taskErr *TaskError
		require.ErrorAs(t, err, &taskErr)
		assert.Equal(t, KindInternal, taskErr.Kind)
		assert.Equal(t, "Error updating task", taskErr.Message)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("classified errors propagate unchanged", func(t *testing.T) {
		original := NewNotFoundError("Task not found")
		err := classify(original, "Error updating task")
		assert.Same(t, original, err)
	})

	t.Run("wrapped classified errors keep their kind", func(t *testing.T) {
		inner := NewConflictError("Task already exists")
		wrapped := fmt.Errorf("saving: %w", inner)

		err := classify(wrapped, "Error creating task")
		assert.True(t, IsConflict(err))
	})
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, IsConflict(NewConflictError("x")))
	assert.False(t, IsConflict(NewNotFoundError("x")))
	assert.True(t, IsNotFound(NewNotFoundError("x")))
	assert.False(t, IsNotFound(errors.New("x")))
	assert.False(t, IsConflict(nil))
}
