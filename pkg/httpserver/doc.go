// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown, and provides liveness and readiness probe handlers.
//
// Run blocks until its context is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called, then drains in-flight requests within the configured
// shutdown timeout. Listen errors are wrapped with ErrStart and shutdown
// errors with ErrShutdown.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/health/live", httpserver.LivenessHandler())
//	r.Get("/health/ready", httpserver.ReadinessHandler(log, redisCheck))
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
