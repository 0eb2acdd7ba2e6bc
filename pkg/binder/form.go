package binder

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultMaxFormSize is the default maximum size for urlencoded bodies (1MB).
const DefaultMaxFormSize = 1 << 20 // 1 MB

// Form creates a binder for application/x-www-form-urlencoded bodies.
// Only body values are bound; query string parameters are ignored.
// Requests with another media type return ErrBinderNotApplicable.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Supported field types: string, integer, float and bool kinds, slices of
// those, pointers for optional fields, and empty interfaces, which receive
// the first value as a string.
//
// Example:
//
//	type SearchRequest struct {
//		Term string `form:"searchTerm"`
//		Tags []string `form:"tags"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if mediaType(r) != mediaTypeForm {
			return ErrBinderNotApplicable
		}

		if r.Body != nil {
			r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxFormSize)
		}
		if err := r.ParseForm(); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, DefaultMaxFormSize)
			}
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return decodeValues(v, "form", r.PostForm, ErrInvalidForm)
	}
}
