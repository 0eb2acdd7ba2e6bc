// Package ratelimiter implements token bucket rate limiting with in-memory and
// Redis backed stores and an HTTP middleware.
//
// A Bucket pairs a Config (burst capacity, refill rate and interval) with a
// Store. MemoryStore serves a single process; RedisStore runs the same
// algorithm as a Lua script so that every instance sharing a Redis server
// shares the limit.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(limiter,
//		ratelimiter.Composite(ratelimiter.ByClientIP(), ratelimiter.ByPath()), log))
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response, and Retry-After with status 429 when
// the bucket is empty. Denied requests do not consume tokens.
package ratelimiter
