package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/charlieallen/portfolio/pkg/health"
)

// Healthcheck reports the rate-limit store as not ready when PING fails.
//
//	portfolio.WithReadinessCheck("redis", redis.Healthcheck(client))
func Healthcheck(client redis.UniversalClient) health.CheckFunc {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrHealthcheckFailed
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrHealthcheckFailed, err)
		}
		return nil
	}
}
