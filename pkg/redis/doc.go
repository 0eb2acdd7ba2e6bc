// Package redis connects to Redis with retries and exposes a readiness check.
// The rate limiter uses the resulting client as a shared store when more than
// one service instance runs.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	r.Get("/health/ready", httpserver.ReadinessHandler(log, redis.Healthcheck(client)))
package redis
