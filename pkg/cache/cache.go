package cache

import (
	"context"
	"time"
)

// Cache is a generic key-value cache with TTL support.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
type Cache[V any] interface {
	// Get returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
	Close() error
}

// Counter counts hits per key in fixed windows.
type Counter interface {
	// Incr records a hit and returns the count within the current window and
	// the time the window resets. The first hit on a key opens a new window.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)

	// Reset discards the current window for key.
	Reset(ctx context.Context, key string) error

	Close() error
}
