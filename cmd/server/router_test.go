package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhiyi-school/ssd-practest/pkg/environment"
	"github.com/zhiyi-school/ssd-practest/pkg/httpserver"
	"github.com/zhiyi-school/ssd-practest/pkg/inputguard"
	"github.com/zhiyi-school/ssd-practest/pkg/logger"
	"github.com/zhiyi-school/ssd-practest/pkg/ratelimiter"
	"github.com/zhiyi-school/ssd-practest/pkg/requestid"
	"github.com/zhiyi-school/ssd-practest/pkg/secureheaders"
)

func testRouter(t *testing.T, capacity int, checks ...httpserver.CheckFunc) http.Handler {
	t.Helper()

	store := ratelimiter.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       capacity,
		RefillRate:     1,
		RefillInterval: time.Hour,
	})
	require.NoError(t, err)

	return newRouter(routerDeps{
		log:     logger.Nop(),
		env:     environment.Development,
		guard:   inputguard.New(),
		limiter: limiter,
		checks:  checks,
		headers: secureheaders.DefaultConfig(),
	})
}

func postSearch(h http.Handler, term string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"searchTerm": term})
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	h := testRouter(t, 10)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.True(t, requestid.IsValid(rec.Header().Get(requestid.Header)))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_NotReady(t *testing.T) {
	t.Parallel()

	h := testRouter(t, 10, func(context.Context) error { return errors.New("redis down") })

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_Search(t *testing.T) {
	t.Parallel()

	h := testRouter(t, 10)

	rec := postSearch(h, "<script>alert(1)</script>")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": false,
		"errors": [
			"Input contains potentially malicious content (XSS)",
			"Input cleared due to potential XSS attack"
		],
		"type": "xss"
	}`, rec.Body.String())
	assert.Equal(t, secureheaders.DefaultContentSecurityPolicy, rec.Header().Get("Content-Security-Policy"))

	rec = postSearch(h, "wireless mouse")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Search term is valid","sanitizedTerm":"wireless mouse"}`, rec.Body.String())
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	h := testRouter(t, 2)

	assert.Equal(t, http.StatusOK, postSearch(h, "a").Code)
	assert.Equal(t, http.StatusOK, postSearch(h, "b").Code)

	rec := postSearch(h, "c")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	live := httptest.NewRecorder()
	h.ServeHTTP(live, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, live.Code)
}

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testRouter(t, 10).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"errors":["Not Found"],"code":"not_found"}`, rec.Body.String())
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	_, err := newLogger(appConfig{Env: "production", Name: "test", LogLevel: "debug"})
	require.NoError(t, err)

	_, err = newLogger(appConfig{Env: "production", Name: "test", LogLevel: "loud"})
	assert.Error(t, err)
}

func TestNewLimiter(t *testing.T) {
	t.Parallel()

	cfg := appConfig{
		RateLimitStore: storeMemory,
		RateLimit:      ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second},
	}
	limiter, checks, closeStore, err := newLimiter(t.Context(), cfg, logger.Nop())
	require.NoError(t, err)
	defer closeStore()
	assert.NotNil(t, limiter)
	assert.Empty(t, checks)

	cfg.RateLimitStore = "etcd"
	_, _, _, err = newLimiter(t.Context(), cfg, logger.Nop())
	assert.ErrorIs(t, err, errUnknownStore)

	cfg.RateLimitStore = storeMemory
	cfg.RateLimit.Capacity = 0
	_, _, _, err = newLimiter(t.Context(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
}
