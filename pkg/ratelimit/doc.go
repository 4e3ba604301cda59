// Package ratelimit implements a fixed-window rate limiter over a
// cache.Counter, so the same limits apply whether hits are counted in
// process memory or in Redis.
//
//	counter := cache.NewMemoryCounter()
//	limiter, err := ratelimit.New(counter, 5, 10*time.Minute)
//
//	res, err := limiter.Allow(ctx, clientip.FromRequest(r))
//	if err == nil && !res.Allowed() {
//	    // reject, retry after res.RetryAfter(time.Now())
//	}
package ratelimit
