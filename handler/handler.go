package handler

import (
	"errors"
	"net/http"

	"github.com/zhiyi-school/ssd-practest/pkg/binder"
)

// HandlerFunc turns a decoded request R into a Response.
//
//	search := func(ctx handler.Context, req SearchRequest) handler.Response {
//		return handler.JSON(result)
//	}
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response writes status, headers and body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes r into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for a bind or render failure.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc. In a list, the first one runs outermost.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption customizes Wrap.
type WrapOption[C Context, R any] func(*route[C, R])

type route[C Context, R any] struct {
	bind       []Bind
	onError    ErrorHandler[C]
	newContext func(http.ResponseWriter, *http.Request) C
	decorate   []Decorator[C, R]
}

// WithBinder makes b the only binder. A nil b is ignored.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		if b != nil {
			rt.bind = []Bind{b}
		}
	}
}

// WithBinders appends binders. They run in order and any that returns
// binder.ErrBinderNotApplicable is passed over.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		rt.bind = append(rt.bind, binders...)
	}
}

func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		if h != nil {
			rt.onError = h
		}
	}
}

// WithContextFactory is required when C is not handler.Context.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		if f != nil {
			rt.newContext = f
		}
	}
}

func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		rt.decorate = append(rt.decorate, decorators...)
	}
}

func renderError[C Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if JSONError(err).Render(w, ctx.Request()) != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func defaultContext[C Context](w http.ResponseWriter, r *http.Request) C {
	c, ok := NewContext(w, r).(C)
	if !ok {
		panic("handler: custom context type needs WithContextFactory")
	}
	return c
}

// Wrap adapts h to net/http: it builds the context, runs the binders into a
// zero R, calls the decorated handler and renders its Response. Bind errors,
// a nil Response and render errors go to the error handler, which defaults
// to the JSON error envelope.
//
//	r.Post("/", handler.Wrap(svc.search,
//		handler.WithBinder[handler.Context, Request](binder.Body()),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	rt := &route[C, R]{
		onError:    renderError[C],
		newContext: defaultContext[C],
	}
	for _, opt := range opts {
		opt(rt)
	}

	for i := range rt.decorate {
		h = rt.decorate[len(rt.decorate)-1-i](h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := rt.newContext(w, r)

		var req R
		for _, bind := range rt.bind {
			err := bind(r, &req)
			if err == nil || errors.Is(err, binder.ErrBinderNotApplicable) {
				continue
			}
			rt.onError(ctx, err)
			return
		}

		resp := h(ctx, req)
		if resp == nil {
			rt.onError(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			rt.onError(ctx, err)
		}
	}
}
