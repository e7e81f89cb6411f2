// Package cache keeps short-lived aggregate stats in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKeyPrefix = "jobtrail:stats:" // jobtrail:stats:{name}

// StatsCache stores JSON-encoded stats snapshots under a TTL. A nil
// *StatsCache is valid and caches nothing.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a StatsCache over client.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// Get decodes the snapshot stored under name into dest and reports whether
// one was found.
func (c *StatsCache) Get(ctx context.Context, name string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}

	data, err := c.client.Get(ctx, c.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get stats %q: %w", name, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal stats %q: %w", name, err)
	}
	return true, nil
}

func (c *StatsCache) Set(ctx context.Context, name string, value any) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal stats %q: %w", name, err)
	}

	if err := c.client.Set(ctx, c.key(name), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set stats %q: %w", name, err)
	}
	return nil
}

// Invalidate drops the snapshot so the next read recomputes it.
func (c *StatsCache) Invalidate(ctx context.Context, name string) error {
	if c == nil {
		return nil
	}

	if err := c.client.Del(ctx, c.key(name)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats %q: %w", name, err)
	}
	return nil
}

func (c *StatsCache) Ping(ctx context.Context) error {
	if c == nil {
		return errors.New("stats cache disabled")
	}
	return c.client.Ping(ctx).Err()
}

func (c *StatsCache) key(name string) string {
	return statsKeyPrefix + name
}
