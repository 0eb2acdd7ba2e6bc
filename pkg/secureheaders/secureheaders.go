package secureheaders

import (
	"net/http"
	"strconv"
	"time"
)

const (
	DefaultContentSecurityPolicy = "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'"
	DefaultFrameOptions          = "DENY"
	DefaultReferrerPolicy        = "no-referrer"
)

// Config holds the values of the configurable headers.
// An empty value omits the header.
type Config struct {
	ContentSecurityPolicy string        `env:"SECURE_HEADERS_CSP" envDefault:"default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'"`
	FrameOptions          string        `env:"SECURE_HEADERS_FRAME_OPTIONS" envDefault:"DENY"`
	ReferrerPolicy        string        `env:"SECURE_HEADERS_REFERRER_POLICY" envDefault:"no-referrer"`
	HSTSMaxAge            time.Duration `env:"SECURE_HEADERS_HSTS_MAX_AGE" envDefault:"0s"`
}

// DefaultConfig returns the values used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		ContentSecurityPolicy: DefaultContentSecurityPolicy,
		FrameOptions:          DefaultFrameOptions,
		ReferrerPolicy:        DefaultReferrerPolicy,
	}
}

// Middleware sets browser hardening headers on every response.
// X-Content-Type-Options and X-XSS-Protection are always sent.
// Strict-Transport-Security is only sent over TLS and when HSTSMaxAge is set.
func Middleware(cfg Config) func(http.Handler) http.Handler {
	static := http.Header{}
	static.Set("X-Content-Type-Options", "nosniff")
	static.Set("X-XSS-Protection", "1; mode=block")
	if cfg.ContentSecurityPolicy != "" {
		static.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
	}
	if cfg.FrameOptions != "" {
		static.Set("X-Frame-Options", cfg.FrameOptions)
	}
	if cfg.ReferrerPolicy != "" {
		static.Set("Referrer-Policy", cfg.ReferrerPolicy)
	}

	var hsts string
	if secs := int64(cfg.HSTSMaxAge / time.Second); secs > 0 {
		hsts = "max-age=" + strconv.FormatInt(secs, 10) + "; includeSubDomains"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for k, v := range static {
				h.Set(k, v[0])
			}
			if hsts != "" && r.TLS != nil {
				h.Set("Strict-Transport-Security", hsts)
			}
			next.ServeHTTP(w, r)
		})
	}
}
