// Package requestid assigns every HTTP request an identifier, exposes it
// through the request context and injects it into log records.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// A client supplied X-Request-ID is kept only if it is 1 to 128 characters
// of [A-Za-z0-9_-]; otherwise a random UUID replaces it.
package requestid
