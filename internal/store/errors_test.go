package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHelpers(t *testing.T) {
	t.Run("entity errors satisfy their category", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrTaskNotFound))
		assert.True(t, IsDuplicateError(ErrTitleExists))
		assert.False(t, IsNotFoundError(ErrTitleExists))
		assert.False(t, IsDuplicateError(ErrTaskNotFound))
	})

	t.Run("wrapping preserves the category", func(t *testing.T) {
		wrapped := fmt.Errorf("finding task: %w", ErrTaskNotFound)
		assert.True(t, IsNotFoundError(wrapped))
	})

	t.Run("unrelated errors match nothing", func(t *testing.T) {
		err := errors.New("connection refused")
		assert.False(t, IsNotFoundError(err))
		assert.False(t, IsDuplicateError(err))
	})
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("task", "save", "failed to save task", cause)

	assert.Contains(t, err.Error(), "save operation on task failed")
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("task", "count", "failed to count tasks", nil)
	assert.Equal(t, "count operation on task failed: failed to count tasks", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}
