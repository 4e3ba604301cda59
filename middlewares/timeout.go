package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/charlieallen/portfolio/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that puts a deadline on the request context.
// Handlers see it through c (Context implements context.Context), so
// outbound calls such as the email dispatch are cancelled at the deadline.
// If the deadline passed and nothing was written, a *TimeoutError goes to
// the ErrorHandler.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Written() {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return errors.Join(&TimeoutError{Duration: timeout}, err)
			}
			return err
		}
	}
}
