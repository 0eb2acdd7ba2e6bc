package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhiyi-school/ssd-practest/pkg/requestid"
)

func serve(t *testing.T, header string) (response, seen string) {
	t.Helper()

	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec.Header().Get(requestid.Header), seen
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates id", func(t *testing.T) {
		resp, seen := serve(t, "")
		require.NotEmpty(t, resp)
		assert.Equal(t, resp, seen)
		_, err := uuid.Parse(resp)
		assert.NoError(t, err)
	})

	t.Run("keeps valid id", func(t *testing.T) {
		resp, seen := serve(t, "trace_123-abc")
		assert.Equal(t, "trace_123-abc", resp)
		assert.Equal(t, "trace_123-abc", seen)
	})

	tests := map[string]string{
		"markup":   "<script>alert(1)</script>",
		"newline":  "abc\r\nSet-Cookie: x=1",
		"too long": strings.Repeat("a", 129),
		"spaces":   "a b",
	}
	for name, header := range tests {
		t.Run("replaces "+name, func(t *testing.T) {
			resp, seen := serve(t, header)
			assert.NotEqual(t, header, resp)
			assert.Equal(t, resp, seen)
			_, err := uuid.Parse(resp)
			assert.NoError(t, err)
		})
	}
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "rid"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "rid", attr.Value.String())
}
