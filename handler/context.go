package handler

import (
	"context"
	"net/http"
)

// Context is the per-request value handed to a HandlerFunc. It behaves as
// the request's context.Context and exposes the request and writer.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext returns a Context bound to r.Context().
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return requestContext{Context: r.Context(), w: w, r: r}
}

type requestContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c requestContext) Request() *http.Request { return c.r }
func (c requestContext) ResponseWriter() http.ResponseWriter { return c.w }
