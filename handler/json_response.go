package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
	Code    string   `json:"code,omitempty"`
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   any
}

// Render encodes the body before touching the writer, so an encoding failure
// leaves the response untouched for the error handler.
func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	data, err := json.Marshal(j.body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	_, err = w.Write(append(data, '\n'))
	return err
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON renders v as the response body with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as an ErrorBody. The status and the client visible
// messages come from ClassifyError; the raw error text is never exposed.
func JSONError(err error, opts ...JSONOption) Response {
	info := ClassifyError(err)
	r := &jsonResponse{
		status: info.StatusCode,
		body: ErrorBody{
			Success: false,
			Errors:  info.Messages,
			Code:    info.Code,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
