package search

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhiyi-school/ssd-practest/handler"
	"github.com/zhiyi-school/ssd-practest/pkg/binder"
	"github.com/zhiyi-school/ssd-practest/pkg/inputguard"
	"github.com/zhiyi-school/ssd-practest/pkg/logger"
	"github.com/zhiyi-school/ssd-practest/pkg/validator"
)

// Response messages.
const (
	MsgRequired    = "Search term is required"
	MsgValid       = "Search term is valid"
	MsgClearedXSS  = "Input cleared due to potential XSS attack"
	MsgClearedSQLi = "Input cleared due to potential SQL injection attack"
)

const (
	searchTermField  = "searchTerm"
	componentName    = "search"
	rejectedLogEvent = "search_rejected"
)

// Guard classifies and escapes search terms. *inputguard.Guard satisfies it.
type Guard interface {
	ValidateValueContext(ctx context.Context, v any) inputguard.Verdict
	Sanitize(s string) string
}

// Request is the body of POST /. The term is left untyped so that JSON
// numbers, objects and nulls reach the guard and are rejected there.
type Request struct {
	Term any `json:"searchTerm" form:"searchTerm"`
}

// Success is returned for an accepted term.
type Success struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	SanitizedTerm string `json:"sanitizedTerm"`
}

// Failure is returned for a missing or rejected term. It never carries the
// submitted value.
type Failure struct {
	Success bool                `json:"success"`
	Errors  []string            `json:"errors"`
	Type    inputguard.Category `json:"type,omitempty"`
}

// Service validates search terms submitted by browsers.
type Service struct {
	guard        Guard
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// Option configures a Service.
type Option func(*Service)

// WithErrorHandler sets the handler for malformed requests.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// NewService creates a search service. A nil logger discards output.
func NewService(guard Guard, log *slog.Logger, opts ...Option) *Service {
	if guard == nil {
		panic("search: nil guard")
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Service{
		guard:        guard,
		log:          log.With(logger.Component(componentName)),
		errorHandler: handler.NewErrorHandler(log),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the module router. Mount it under a prefix such as /search.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(s.search,
		handler.WithBinder[handler.Context, Request](binder.Body()),
		handler.WithErrorHandler[handler.Context, Request](s.errorHandler),
	))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, r)
	})

	return r
}

func (s *Service) search(ctx handler.Context, req Request) handler.Response {
	if err := validator.Apply(
		validator.Present(searchTermField, req.Term).WithMessage(MsgRequired),
	); err != nil {
		return handler.JSON(Failure{Errors: validator.ExtractValidationErrors(err).Messages()})
	}

	verdict := s.guard.ValidateValueContext(ctx, req.Term)
	if !verdict.IsValid {
		s.log.LogAttrs(ctx, slog.LevelInfo, "search term rejected",
			logger.Category(string(verdict.Category)),
			logger.Event(rejectedLogEvent),
		)
		return handler.JSON(rejection(verdict))
	}

	term, _ := req.Term.(string)
	return handler.JSON(Success{
		Success:       true,
		Message:       MsgValid,
		SanitizedTerm: s.guard.Sanitize(term),
	})
}

// rejection builds the failure body for a verdict, adding a notice when the
// input was classified as an attack.
func rejection(v inputguard.Verdict) Failure {
	errs := make([]string, 0, len(v.Errors)+1)
	errs = append(errs, v.Errors...)

	switch v.Category {
	case inputguard.CategoryXSS:
		errs = append(errs, MsgClearedXSS)
	case inputguard.CategorySQLInjection:
		errs = append(errs, MsgClearedSQLi)
	}

	return Failure{Errors: errs, Type: v.Category}
}
