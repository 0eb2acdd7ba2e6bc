package binder

import (
	"net/http"
	"strings"
)

const (
	mediaTypeJSON = "application/json"
	mediaTypeForm = "application/x-www-form-urlencoded"
)

// mediaType returns the lowercased media type of the request without parameters.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = ct[:idx]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

// hasBody reports whether the request may carry a body.
// A request with unknown length is assumed to have one.
func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}

// Body dispatches to JSON or Form by the request media type.
// A request without a body and without a content type binds nothing,
// leaving the target at its zero value.
//
// Example:
//
//	type SearchRequest struct {
//		Term any `json:"searchTerm" form:"searchTerm"`
//	}
//
//	mux.Handle("POST /search", handler.Wrap(h,
//		handler.WithBinder[handler.Context, SearchRequest](binder.Body()),
//	))
func Body() func(r *http.Request, v any) error {
	bindJSON := JSON()
	bindForm := Form()

	return func(r *http.Request, v any) error {
		switch mt := mediaType(r); {
		case mt == mediaTypeJSON:
			return bindJSON(r, v)
		case mt == mediaTypeForm:
			return bindForm(r, v)
		case mt == "" && !hasBody(r):
			return nil
		case mt == "":
			return ErrMissingContentType
		default:
			return ErrUnsupportedMediaType
		}
	}
}
