package ratelimiter_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhiyi-school/ssd-practest/pkg/ratelimiter"
)

func redisClient(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	return client
}

func TestRedisStore(t *testing.T) {
	client := redisClient(t)
	clock := newManualClock()
	prefix := "ratelimit-test:" + uuid.NewString() + ":"

	store := ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(prefix), ratelimiter.WithRedisNow(clock.Now))
	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)

	ctx := context.Background()
	t.Cleanup(func() { _ = b.Reset(ctx, "client") })

	res, err := b.Allow(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)

	res, err = b.Allow(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Remaining)

	res, err = b.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, clock.Now().Add(time.Second).UnixMilli(), res.ResetAt.UnixMilli())

	clock.Advance(time.Second)
	res, err = b.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	ttl, err := client.PTTL(ctx, prefix+"client").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, b.Reset(ctx, "client"))
	res, err = b.Status(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining)
}

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	store := ratelimiter.NewRedisStore(client)
	_, _, err := store.ConsumeTokens(context.Background(), "k", 1, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)

	require.ErrorIs(t, store.Reset(context.Background(), "k"), ratelimiter.ErrStoreUnavailable)
}
