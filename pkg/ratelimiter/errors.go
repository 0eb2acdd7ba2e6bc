package ratelimiter

import "errors"

var (
	// ErrInvalidConfig is returned by NewBucket and Config.Validate.
	ErrInvalidConfig = errors.New("ratelimiter: invalid config")
	// ErrInvalidTokenCount is returned by AllowN for n < 1.
	ErrInvalidTokenCount = errors.New("ratelimiter: token count must be positive")
	// ErrStoreUnavailable wraps backend failures from a Store.
	ErrStoreUnavailable = errors.New("ratelimiter: store unavailable")
)
