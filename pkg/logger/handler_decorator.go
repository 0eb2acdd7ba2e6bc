package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor derives one attribute from a context, reporting false when
// there is nothing to add.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator is a slog.Handler that enriches each record with the
// attributes its extractors find in the record's context.
type LogHandlerDecorator struct {
	inner      slog.Handler
	extractors []ContextExtractor
}

// NewLogHandlerDecorator decorates inner. Nil extractors are ignored.
func NewLogHandlerDecorator(inner slog.Handler, extractors ...ContextExtractor) slog.Handler {
	extractors = slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool {
		return ex == nil
	})
	return &LogHandlerDecorator{inner: inner, extractors: extractors}
}

func (d *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return d.inner.Enabled(ctx, level)
}

// Handle evaluates the extractors per record, never caching their results.
func (d *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if ctx == nil {
		return d.inner.Handle(ctx, rec)
	}
	for _, extract := range d.extractors {
		if attr, ok := extract(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return d.inner.Handle(ctx, rec)
}

func (d *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return d.derive(d.inner.WithAttrs(attrs))
}

func (d *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return d.derive(d.inner.WithGroup(name))
}

func (d *LogHandlerDecorator) derive(inner slog.Handler) *LogHandlerDecorator {
	return &LogHandlerDecorator{inner: inner, extractors: d.extractors}
}
