package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReplayCache implements ports.ReplayCache using Redis. It fronts the
// database idempotency check with a fast path; the database unique
// constraints remain the source of truth, so every failure here is
// recoverable by falling through to the store.
type ReplayCache struct {
	client *goredis.Client
	prefix string
}

// NewReplayCache creates a new Redis-backed replay cache.
func NewReplayCache(client *goredis.Client) *ReplayCache {
	return &ReplayCache{
		client: client,
		prefix: "replay:",
	}
}

// Get retrieves a cached response by idempotency key.
// Returns nil, nil if the key does not exist.
func (c *ReplayCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis replay get: %w", err)
	}
	return val, nil
}

// Set stores a response in the replay cache with TTL.
func (c *ReplayCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis replay set: %w", err)
	}
	return nil
}
