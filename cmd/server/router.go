package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhiyi-school/ssd-practest/handler"
	"github.com/zhiyi-school/ssd-practest/modules/search"
	"github.com/zhiyi-school/ssd-practest/pkg/clientip"
	"github.com/zhiyi-school/ssd-practest/pkg/environment"
	"github.com/zhiyi-school/ssd-practest/pkg/httpserver"
	"github.com/zhiyi-school/ssd-practest/pkg/inputguard"
	"github.com/zhiyi-school/ssd-practest/pkg/logger"
	"github.com/zhiyi-school/ssd-practest/pkg/ratelimiter"
	"github.com/zhiyi-school/ssd-practest/pkg/requestid"
	"github.com/zhiyi-school/ssd-practest/pkg/secureheaders"
)

const requestTimeout = 15 * time.Second

type routerDeps struct {
	log        *slog.Logger
	env        environment.Environment
	guard      *inputguard.Guard
	limiter    ratelimiter.RateLimiter
	checks     []httpserver.CheckFunc
	trustProxy bool
	headers    secureheaders.Config
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(d.trustProxy))
	r.Use(environment.Middleware(d.env))
	r.Use(accessLog(d.log))
	r.Use(middleware.Recoverer)
	r.Use(secureheaders.Middleware(d.headers))

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, d.checks...))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Use(ratelimiter.Middleware(d.limiter, ratelimiter.ByClientIP(), d.log))
		r.Mount("/search", search.NewService(d.guard, d.log).Handle())
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, r)
	})

	return r
}

// accessLog writes one record per request. Query strings are left out
// because they may carry user input.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Component("http"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.LogAttrs(r.Context(), slog.LevelInfo, "request",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
