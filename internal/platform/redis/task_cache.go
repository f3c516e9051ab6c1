// Package redis provides a Redis-backed cache for task detail lookups using
// the cache-aside pattern. The lifecycle service treats every cache failure
// as a miss, so the store remains the source of truth.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jmvillal/tasktrack/internal/domain"
)

// keyPrefix namespaces all task cache keys.
const keyPrefix = "task:"

// Stats tracks cache counters.
type Stats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Sets    uint64 `json:"sets"`
	Deletes uint64 `json:"deletes"`
	Errors  uint64 `json:"errors"`
}

// TaskCache caches task entities by ID with a fixed TTL.
type TaskCache struct {
	client *redis.Client
	ttl    time.Duration
	stats  *Stats
}

// NewTaskCache creates a cache over the given client. A non-positive ttl
// defaults to five minutes.
func NewTaskCache(client *redis.Client, ttl time.Duration) *TaskCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TaskCache{
		client: client,
		ttl:    ttl,
		stats:  &Stats{},
	}
}

// GetTask retrieves a cached task by ID.
// The boolean reports whether it was found (cache hit); a miss is not an error.
func (c *TaskCache) GetTask(ctx context.Context, id string) (*domain.Task, bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			atomic.AddUint64(&c.stats.Misses, 1)
			return nil, false, nil
		}
		atomic.AddUint64(&c.stats.Errors, 1)
		return nil, false, fmt.Errorf("cache get error: %w", err)
	}

	var task domain.Task
	if err := json.Unmarshal(data, &task); err != nil {
		atomic.AddUint64(&c.stats.Errors, 1)
		return nil, false, fmt.Errorf("cache unmarshal error: %w", err)
	}

	atomic.AddUint64(&c.stats.Hits, 1)
	return &task, true, nil
}

// SetTask stores a task in the cache with the configured TTL.
func (c *TaskCache) SetTask(ctx context.Context, task *domain.Task) error {
	data, err := json.Marshal(task)
	if err != nil {
		atomic.AddUint64(&c.stats.Errors, 1)
		return fmt.Errorf("cache marshal error: %w", err)
	}

	if err := c.client.Set(ctx, keyPrefix+task.ID, data, c.ttl).Err(); err != nil {
		atomic.AddUint64(&c.stats.Errors, 1)
		return fmt.Errorf("cache set error: %w", err)
	}

	atomic.AddUint64(&c.stats.Sets, 1)
	return nil
}

// Invalidate removes a task from the cache. Called after every mutation.
func (c *TaskCache) Invalidate(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		atomic.AddUint64(&c.stats.Errors, 1)
		return fmt.Errorf("cache delete error: %w", err)
	}

	atomic.AddUint64(&c.stats.Deletes, 1)
	return nil
}

// GetStats returns a snapshot of the current counters.
func (c *TaskCache) GetStats() Stats {
	return Stats{
		Hits:    atomic.LoadUint64(&c.stats.Hits),
		Misses:  atomic.LoadUint64(&c.stats.Misses),
		Sets:    atomic.LoadUint64(&c.stats.Sets),
		Deletes: atomic.LoadUint64(&c.stats.Deletes),
		Errors:  atomic.LoadUint64(&c.stats.Errors),
	}
}

// Ping checks if the Redis connection is healthy.
func (c *TaskCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the underlying Redis client.
func (c *TaskCache) Close() error {
	return c.client.Close()
}
