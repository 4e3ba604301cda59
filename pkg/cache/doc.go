// Package cache provides a TTL cache and fixed-window hit counters.
//
// [Memory] is a generic in-memory cache with TTL expiration and optional LRU
// eviction. A background janitor removes expired entries until Close is called.
//
// [Counter] counts hits per key inside a time window. Two implementations exist:
//
//   - [MemoryCounter] keeps windows in a [Memory] cache; suitable for a single process.
//   - [RedisCounter] uses INCR and PEXPIRE so every instance shares the same windows.
//
// The rate limiter in pkg/ratelimit depends only on the Counter interface:
//
//	counter := cache.NewMemoryCounter(cache.WithMaxEntries(10000))
//	defer counter.Close()
//
//	n, resetAt, err := counter.Incr(ctx, "contact:203.0.113.7", time.Minute)
package cache
