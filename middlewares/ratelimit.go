package middlewares

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/charlieallen/portfolio/internal"
	"github.com/charlieallen/portfolio/pkg/clientip"
	"github.com/charlieallen/portfolio/pkg/ratelimit"
)

// RateLimiter is satisfied by *ratelimit.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Result, error)
}

// RateLimitConfig configures the rate limit middleware.
type RateLimitConfig struct {
	// KeyFunc derives the bucket key. Defaults to the client IP.
	KeyFunc func(r *http.Request) string

	// FailOpen admits requests when the store errors. Defaults to true so a
	// Redis outage does not take the contact form down.
	FailOpen bool

	Now func() time.Time
}

// RateLimitOption configures RateLimitConfig.
type RateLimitOption func(*RateLimitConfig)

// WithRateLimitKey sets the key function.
func WithRateLimitKey(fn func(r *http.Request) string) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.KeyFunc = fn
	}
}

// WithRateLimitFailClosed rejects requests with 503 when the store errors.
func WithRateLimitFailClosed() RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.FailOpen = false
	}
}

// RateLimit returns middleware that limits requests per key. Every checked
// response carries X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset. Rejected requests get a 429 HTTPError with Retry-After set.
func RateLimit(limiter RateLimiter, opts ...RateLimitOption) internal.Middleware {
	cfg := &RateLimitConfig{
		KeyFunc:  clientip.FromRequest,
		FailOpen: true,
		Now:      time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if c.Request().Method == http.MethodOptions {
				return next(c)
			}

			key := cfg.KeyFunc(c.Request())
			if key == "" {
				return next(c)
			}

			res, err := limiter.Allow(c, key)
			if err != nil {
				c.LogError("rate limit check failed", "error", err)
				if cfg.FailOpen {
					return next(c)
				}
				return c.Error(http.StatusServiceUnavailable, "Service unavailable", internal.WithError(err))
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				// round up so clients never retry inside the window
				retry := res.RetryAfter(cfg.Now())
				secs := int((retry + time.Second - 1) / time.Second)
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				c.LogWarn("rate limit exceeded", "key", key)
				return c.Error(http.StatusTooManyRequests, "Too many requests")
			}

			return next(c)
		}
	}
}
