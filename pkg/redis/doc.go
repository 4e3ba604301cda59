// Package redis opens go-redis clients for the shared rate-limit store.
//
// Redis is optional: when REDIS_URL is empty the application keeps rate-limit
// windows in process memory. Open validates the URL, applies pool and timeout
// defaults sized for a small web process or a Lambda instance, and retries the
// initial PING with linear backoff.
//
//	client, err := redis.Open(ctx, cfg.URL, redis.WithPoolSize(4))
//	if err != nil {
//		return err
//	}
//	app := portfolio.New(
//		portfolio.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
//	// on shutdown
//	_ = redis.Shutdown(client)(ctx)
package redis
