package cache

import (
	"context"
	"time"
)

// MemoryCounter is a Counter backed by a Memory cache.
// Each key holds its hit count until the window expires.
type MemoryCounter struct {
	store *Memory[int64]
}

// NewMemoryCounter creates an in-process counter. Options configure the
// underlying Memory cache; WithDefaultTTL has no effect since windows set their own TTL.
func NewMemoryCounter(opts ...MemoryOption) *MemoryCounter {
	return &MemoryCounter{store: NewMemory[int64](opts...)}
}

// Incr records a hit for key.
func (c *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	if window <= 0 {
		return 0, time.Time{}, ErrInvalidWindow
	}

	now := c.store.opts.now()
	e, err := c.store.update(key, func(e *entry[int64], fresh bool) {
		if fresh {
			e.expiresAt = now.Add(window)
		}
		e.value++
	})
	if err != nil {
		return 0, time.Time{}, err
	}
	return e.value, e.expiresAt, nil
}

// Reset discards the window for key.
func (c *MemoryCounter) Reset(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}

// Close stops the underlying cache janitor.
func (c *MemoryCounter) Close() error {
	return c.store.Close()
}

var _ Counter = (*MemoryCounter)(nil)
