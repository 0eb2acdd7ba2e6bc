// Package binder decodes HTTP request bodies into typed request structs.
//
// Binders share the signature func(r *http.Request, v any) error and plug into
// handler.Wrap through handler.WithBinder or handler.WithBinders.
//
// # Available Binders
//
//   - JSON(): binds application/json bodies through encoding/json tags
//   - Form(): binds application/x-www-form-urlencoded bodies through `form` tags
//   - Body(): picks JSON or Form from the Content-Type header
//
// JSON and Form return ErrBinderNotApplicable for other media types, which
// lets handler.Wrap try the next binder in a chain.
//
// Values are bound verbatim. Binders never escape or trim strings, so input
// validation sees exactly what the client sent.
//
// # Error Handling
//
// All errors wrap one of the package sentinels:
//
//	if errors.Is(err, binder.ErrUnsupportedMediaType) {
//		// 415
//	}
//	if errors.Is(err, binder.ErrFailedToParseJSON) || errors.Is(err, binder.ErrInvalidForm) {
//		// 400
//	}
//
// Error messages never include submitted values.
package binder
