// Package secureheaders provides middleware that adds browser hardening
// headers (CSP, frame, sniffing and referrer policies) to HTTP responses.
//
//	r.Use(secureheaders.Middleware(secureheaders.DefaultConfig()))
//
// Config carries env tags and can be loaded with config.Load.
package secureheaders
