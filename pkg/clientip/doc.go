// Package clientip resolves the address of the caller of an HTTP request and
// carries it through the request context.
//
// The address keys rate limiting and appears in detection logs, so proxy
// headers (CF-Connecting-IP, X-Forwarded-For, X-Real-IP) are read only when
// the deployment sits behind a trusted proxy. Without that, RemoteAddr is the
// only source.
//
//	r.Use(clientip.Middleware(cfg.TrustProxy))
//	ip := clientip.FromContext(r.Context())
package clientip
