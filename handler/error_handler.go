package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/zhiyi-school/ssd-practest/pkg/binder"
	"github.com/zhiyi-school/ssd-practest/pkg/logger"
	"github.com/zhiyi-school/ssd-practest/pkg/validator"
)

const genericErrorMessage = "An error occurred processing your request"

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Code       string
	Messages   []string
	LogLevel   slog.Level
}

// binderErrors maps binder sentinels to client facing errors.
var binderErrors = []struct {
	err    error
	public HTTPError
}{
	{binder.ErrMissingContentType, ErrUnsupportedMediaType},
	{binder.ErrUnsupportedMediaType, ErrUnsupportedMediaType},
	{binder.ErrBodyTooLarge, ErrRequestEntityTooLarge},
	{binder.ErrFailedToParseJSON, ErrBadRequest},
	{binder.ErrInvalidForm, ErrBadRequest},
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func fromHTTPError(e HTTPError) ErrorInfo {
	msg := http.StatusText(e.Code)
	if msg == "" {
		msg = genericErrorMessage
	}
	return ErrorInfo{StatusCode: e.Code, Code: e.Key, Messages: []string{msg}}
}

// ClassifyError maps err to a status code and client safe messages.
// Validation errors take precedence over HTTP errors; anything unknown is a 500.
func ClassifyError(err error) ErrorInfo {
	info := fromHTTPError(ErrInternalServerError)
	info.Messages = []string{genericErrorMessage}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info = fromHTTPError(httpErr)
	} else {
		for _, m := range binderErrors {
			if errors.Is(err, m.err) {
				info = fromHTTPError(m.public)
				break
			}
		}
	}

	if ve := validator.ExtractValidationErrors(err); len(ve) > 0 {
		info = ErrorInfo{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       "validation_error",
			Messages:   ve.Messages(),
		}
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

// NewErrorHandler returns an error handler that logs the failure and renders
// it as an ErrorBody. Request scoped attributes such as the request id are
// expected to come from the logger's context extractors.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := ClassifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
		)

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
