package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCounter is a Counter shared across processes through Redis.
type RedisCounter struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// RedisCounterOption configures a RedisCounter.
type RedisCounterOption func(*RedisCounter)

// WithPrefix sets a key prefix. Keys are stored as "{prefix}:{key}".
func WithPrefix(prefix string) RedisCounterOption {
	return func(c *RedisCounter) {
		c.prefix = prefix
	}
}

// NewRedisCounter creates a counter on an open client.
// The client should be obtained from pkg/redis.Open.
func NewRedisCounter(client redis.UniversalClient, opts ...RedisCounterOption) *RedisCounter {
	c := &RedisCounter{client: client, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Incr increments the key and starts its window on the first hit.
func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	if window <= 0 {
		return 0, time.Time{}, ErrInvalidWindow
	}

	k := c.prefixedKey(key)

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		ttl = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("cache: incr %s: %w", key, err)
	}

	remaining := ttl.Val()
	// A negative TTL means the key has no expiry yet: this hit opened the window.
	if remaining <= 0 {
		if err := c.client.PExpire(ctx, k, window).Err(); err != nil {
			return 0, time.Time{}, fmt.Errorf("cache: expire %s: %w", key, err)
		}
		remaining = window
	}

	return incr.Val(), c.now().Add(remaining), nil
}

// Reset deletes the window for key.
func (c *RedisCounter) Reset(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefixedKey(key)).Err()
}

// Close is a no-op; the client lifecycle is owned by pkg/redis.
func (c *RedisCounter) Close() error {
	return nil
}

func (c *RedisCounter) prefixedKey(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

var _ Counter = (*RedisCounter)(nil)
