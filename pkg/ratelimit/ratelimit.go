package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/charlieallen/portfolio/pkg/cache"
)

// Config holds rate limit settings read from the environment.
type Config struct {
	Enabled  bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Requests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"5"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"10m"`
}

// Result describes a single rate limit decision.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
	allowed   bool
}

// Allowed reports whether the hit fits in the current window.
func (r Result) Allowed() bool {
	return r.allowed
}

// RetryAfter returns how long to wait before the window resets.
// Returns 0 if the hit was allowed.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.allowed {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

// Limiter admits at most Limit hits per key in each fixed window.
type Limiter struct {
	counter cache.Counter
	limit   int
	window  time.Duration
}

// New creates a Limiter on counter.
func New(counter cache.Counter, limit int, window time.Duration) (*Limiter, error) {
	if counter == nil || limit <= 0 || window <= 0 {
		return nil, ErrInvalidConfig
	}
	return &Limiter{counter: counter, limit: limit, window: window}, nil
}

// NewFromConfig creates a Limiter from cfg.
func NewFromConfig(counter cache.Counter, cfg Config) (*Limiter, error) {
	return New(counter, cfg.Requests, cfg.Window)
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	n, resetAt, err := l.counter.Incr(ctx, key, l.window)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return Result{
		Limit:     l.limit,
		Remaining: max(l.limit-int(n), 0),
		ResetAt:   resetAt,
		allowed:   n <= int64(l.limit),
	}, nil
}

// Reset clears the window for key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	if err := l.counter.Reset(ctx, key); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}
