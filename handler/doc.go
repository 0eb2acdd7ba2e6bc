// Package handler provides typed HTTP handlers with JSON responses.
//
// A HandlerFunc receives a Context and a request struct decoded by binders,
// and returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	type SearchRequest struct {
//		Term any `json:"searchTerm" form:"searchTerm"`
//	}
//
//	func search(ctx handler.Context, req SearchRequest) handler.Response {
//		return handler.JSON(map[string]any{"success": true})
//	}
//
//	mux.Handle("POST /search", handler.Wrap(search,
//		handler.WithBinder[handler.Context, SearchRequest](binder.Body()),
//		handler.WithErrorHandler[handler.Context, SearchRequest](handler.NewErrorHandler(log)),
//	))
//
// # Errors
//
// Binding and rendering failures go to the ErrorHandler. ClassifyError maps
// HTTPError values, binder sentinels and validator.ValidationErrors to a
// status code and client safe messages; any other error becomes a 500 with a
// generic message. Every error response has the ErrorBody shape:
//
//	{"success":false,"errors":["Bad Request"],"code":"bad_request"}
//
// Error text produced from request data never reaches the client.
package handler
