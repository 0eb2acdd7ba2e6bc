package ratelimiter

import (
	"context"
	"time"
)

// Store persists bucket state.
type Store interface {
	// ConsumeTokens refills the bucket for key, then takes tokens if enough
	// are available. remaining is the balance after the call; when the bucket
	// is short it is the negative shortfall and nothing is taken.
	// Passing tokens == 0 only reports the state.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}
