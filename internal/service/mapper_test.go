package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmvillal/tasktrack/internal/domain"
)

func TestCreateOf(t *testing.T) {
	req := TaskRequest{
		UserID:      "user-1",
		Title:       "one",
		Description: "first",
		DueDate:     "2027-03-01T12:00:00",
		// A client-supplied status must not survive creation.
		Status:      string(domain.StatusCompleted),
	}

	task, err := createOf(req)
	require.NoError(t, err)

	assert.Empty(t, task.ID)
	assert.Equal(t, "user-1", task.UserID)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.False(t, task.Deleted)
	assert.Equal(t, "user-1", task.CreatedBy)
	assert.False(t, task.CreatedDate.IsZero())
	assert.True(t, task.LastModifiedDate.IsZero())
	assert.Equal(t, time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC), task.DueDate)
}

func TestCreateOf_BadDueDate(t *testing.T) {
	_, err := createOf(TaskRequest{Title: "one", DueDate: "2027-03-01"})
	assert.Error(t, err)
}

func TestUpdateOf(t *testing.T) {
	req := TaskRequest{
		ID:      "ignored",
		UserID:  "user-1",
		Title:   "new title",
		DueDate: "2027-03-01T12:00:00",
		Status:  string(domain.StatusInProgress),
	}

	task, err := updateOf(req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInProgress, task.Status)
	assert.False(t, task.LastModifiedDate.IsZero())
	assert.Equal(t, "user-1", task.LastModifiedBy)
	assert.True(t, task.CreatedDate.IsZero())
	assert.Empty(t, task.CreatedBy)
}

func TestResponseOf_AbbreviatedShape(t *testing.T) {
	task := &domain.Task{
		ID:          "t1",
		UserID:      "user-1",
		Title:       "one",
		Description: "first",
		DueDate:     time.Now(),
		Status:      domain.StatusPending,
		CreatedBy:   "user-1",
	}

	resp := responseOf(task)

	assert.Equal(t, "t1", resp.ID)
	assert.Equal(t, "one", resp.Title)
	assert.Equal(t, "first", resp.Description)
	assert.Empty(t, resp.UserID)
	assert.Empty(t, resp.Status)
	assert.Nil(t, resp.DueDate)
	assert.Nil(t, resp.Deleted)
}

func TestWithDetailsOf_FullShape(t *testing.T) {
	due := time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC)
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	task := &domain.Task{
		ID:          "t1",
		UserID:      "user-1",
		Title:       "one",
		DueDate:     due,
		Status:      domain.StatusExpired,
		CreatedDate: created,
		CreatedBy:   "user-1",
	}

	resp := withDetailsOf(task)

	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, string(domain.StatusExpired), resp.Status)
	require.NotNil(t, resp.DueDate)
	assert.True(t, due.Equal(*resp.DueDate))
	require.NotNil(t, resp.CreatedDate)
	assert.True(t, created.Equal(*resp.CreatedDate))
	assert.Nil(t, resp.LastModifiedDate)
	require.NotNil(t, resp.Deleted)
	assert.False(t, *resp.Deleted)

	// The response must not alias the entity's flag.
	task.Deleted = true
	assert.False(t, *resp.Deleted)
}
