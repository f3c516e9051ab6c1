package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	due := time.Now().Add(48 * time.Hour)

	t.Run("stamps ownership and initial state", func(t *testing.T) {
		task, err := NewTask("user-1", "one", "first", due)
		require.NoError(t, err)

		assert.Empty(t, task.ID)
		assert.Equal(t, "user-1", task.UserID)
		assert.Equal(t, "user-1", task.CreatedBy)
		assert.Equal(t, StatusPending, task.Status)
		assert.False(t, task.Deleted)
		assert.False(t, task.CreatedDate.IsZero())
	})

	t.Run("validation failures", func(t *testing.T) {
		_, err := NewTask("", "one", "", due)
		assert.ErrorIs(t, err, ErrTaskUserIDEmpty)
		assert.ErrorIs(t, err, ErrValidation)

		_, err = NewTask("user-1", "", "", due)
		assert.ErrorIs(t, err, ErrTaskTitleEmpty)

		_, err = NewTask("user-1", "one", "", time.Time{})
		assert.ErrorIs(t, err, ErrTaskDueDateEmpty)
	})
}

func TestTaskValidate_InvalidStatus(t *testing.T) {
	task := Task{
		UserID:  "user-1",
		Title:   "one",
		DueDate: time.Now(),
		Status:  Status("SOMEDAY"),
	}
	assert.ErrorIs(t, task.Validate(), ErrInvalidStatus)
}

func TestMarkDeleted(t *testing.T) {
	task, err := NewTask("user-1", "one", "", time.Now().Add(time.Hour))
	require.NoError(t, err)

	before := task.LastModifiedDate
	task.MarkDeleted()

	assert.True(t, task.Deleted)
	assert.True(t, task.LastModifiedDate.After(before))
	assert.Equal(t, "one", task.Title)
	assert.Equal(t, StatusPending, task.Status)
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "IN_PROGRESS", "EXPIRED", "COMPLETED"} {
		status, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), status)
	}

	_, err := ParseStatus("pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
