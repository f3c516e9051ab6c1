package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmvillal/tasktrack/internal/domain"
)

// Integration tests require Redis running on localhost:6379 and skip
// otherwise.
const testRedisAddr = "localhost:6379"

func setupTestCache(t *testing.T) *TaskCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	cache := NewTaskCache(client, time.Minute)
	t.Cleanup(func() {
		_ = client.Close()
	})

	return cache
}

func TestNewTaskCache_TTLDefault(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	defer client.Close()

	cache := NewTaskCache(client, 0)
	assert.Equal(t, 5*time.Minute, cache.ttl)

	cache = NewTaskCache(client, 30*time.Second)
	assert.Equal(t, 30*time.Second, cache.ttl)
}

func TestTaskCache_RoundTrip(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	task := &domain.Task{
		ID:      "cache-test-t1",
		UserID:  "user-1",
		Title:   "one",
		DueDate: time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:  domain.StatusPending,
	}
	t.Cleanup(func() {
		_ = cache.Invalidate(ctx, task.ID)
	})

	_, hit, err := cache.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.SetTask(ctx, task))

	got, hit, err := cache.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, task.Title, got.Title)
	assert.True(t, task.DueDate.Equal(got.DueDate))

	require.NoError(t, cache.Invalidate(ctx, task.ID))

	_, hit, err = cache.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, hit)

	stats := cache.GetStats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
	assert.Equal(t, uint64(1), stats.Sets)
	assert.Equal(t, uint64(1), stats.Deletes)
	assert.Equal(t, uint64(0), stats.Errors)
}
