package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/zhiyi-school/ssd-practest/pkg/clientip"
	"github.com/zhiyi-school/ssd-practest/pkg/config"
	"github.com/zhiyi-school/ssd-practest/pkg/environment"
	"github.com/zhiyi-school/ssd-practest/pkg/httpserver"
	"github.com/zhiyi-school/ssd-practest/pkg/inputguard"
	"github.com/zhiyi-school/ssd-practest/pkg/logger"
	"github.com/zhiyi-school/ssd-practest/pkg/ratelimiter"
	"github.com/zhiyi-school/ssd-practest/pkg/redis"
	"github.com/zhiyi-school/ssd-practest/pkg/requestid"
	"github.com/zhiyi-school/ssd-practest/pkg/secureheaders"
)

const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

var errUnknownStore = errors.New("unknown rate limit store")

type appConfig struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	Name           string `env:"APP_NAME" envDefault:"ssd-practest"`
	LogLevel       string `env:"LOG_LEVEL"`
	TrustProxy     bool   `env:"HTTP_TRUST_PROXY" envDefault:"false"`
	RateLimitStore string `env:"RATE_LIMIT_STORE" envDefault:"memory"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
	Redis     redis.Config
	Headers   secureheaders.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	limiter, checks, closeStore, err := newLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	guard := inputguard.New(inputguard.WithLogger(log))

	router := newRouter(routerDeps{
		log:        log,
		env:        environment.Parse(cfg.Env),
		guard:      guard,
		limiter:    limiter,
		checks:     checks,
		trustProxy: cfg.TrustProxy,
		headers:    cfg.Headers,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

func newLogger(cfg appConfig) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

// newLimiter builds the token bucket on the configured store. The returned
// checks feed the readiness probe and closeStore releases the backend.
func newLimiter(ctx context.Context, cfg appConfig, log *slog.Logger) (ratelimiter.RateLimiter, []httpserver.CheckFunc, func(), error) {
	var (
		store      ratelimiter.Store
		checks     []httpserver.CheckFunc
		closeStore func()
	)

	switch cfg.RateLimitStore {
	case storeMemory, "":
		ms := ratelimiter.NewMemoryStore()
		store = ms
		closeStore = func() { _ = ms.Close() }
	case storeRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		store = ratelimiter.NewRedisStore(client)
		checks = append(checks, redis.Healthcheck(client))
		closeStore = func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close redis client", logger.Error(err))
			}
		}
	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", errUnknownStore, cfg.RateLimitStore)
	}

	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		closeStore()
		return nil, nil, nil, err
	}
	return limiter, checks, closeStore, nil
}
