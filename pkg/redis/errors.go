package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned by Connect when REDIS_URL is blank.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	// ErrFailedToParseRedisConnString wraps URL parse failures.
	ErrFailedToParseRedisConnString = errors.New("redis: failed to parse connection URL")
	// ErrRedisNotReady means no ping succeeded within the retry budget.
	ErrRedisNotReady = errors.New("redis: server not ready")
	// ErrHealthcheckFailed wraps ping failures reported to the readiness probe.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
