package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON creates a JSON binder function.
// Requests with another media type return ErrBinderNotApplicable so the
// binder can be chained with others. Unknown fields are ignored and string
// values are bound as sent: escaping is left to the caller, after validation.
//
// Example:
//
//	handler.Wrap(h, handler.WithBinder[handler.Context, CreateRequest](binder.JSON()))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		if mediaType(r) != mediaTypeJSON {
			return ErrBinderNotApplicable
		}
		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, DefaultMaxJSONSize)
		}
		if len(body) == 0 {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if err := json.Unmarshal(body, v); err != nil {
			switch {
			case errors.As(err, &syntaxErr):
				return fmt.Errorf("%w: malformed JSON at offset %d", ErrFailedToParseJSON, syntaxErr.Offset)
			case errors.As(err, &typeErr):
				return fmt.Errorf("%w: field %s has wrong type", ErrFailedToParseJSON, typeErr.Field)
			default:
				var invalid *json.InvalidUnmarshalError
				if errors.As(err, &invalid) {
					return fmt.Errorf("%w: %v", ErrInvalidTarget, err)
				}
				return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
			}
		}

		return nil
	}
}
