package inputguard

import (
	"context"
	"log/slog"

	"github.com/zhiyi-school/ssd-practest/pkg/logger"
)

// Guard validates untrusted text against the pattern library.
// A Guard is immutable after New and safe for concurrent use.
type Guard struct {
	library Library
	clock   Clock
	log     *slog.Logger
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the logger used to report detections.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Guard) {
		if l != nil {
			g.log = l
		}
	}
}

// WithClock sets the time source for scan budget accounting.
// A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(g *Guard) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithLibrary replaces the default rule sets.
func WithLibrary(lib Library) Option {
	return func(g *Guard) {
		g.library = lib
	}
}

// New returns a Guard using the default library, the system clock and a
// logger that discards output unless overridden by options.
func New(opts ...Option) *Guard {
	g := &Guard{
		library: DefaultLibrary(),
		clock:   systemClock,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(logger.Component("inputguard"))
	return g
}

// Validate classifies input. It never panics.
func (g *Guard) Validate(input string) Verdict {
	return g.ValidateContext(context.Background(), input)
}

// ValidateValue classifies an arbitrary decoded value, such as a field taken
// from a JSON document. Anything other than a non-empty string is invalid.
func (g *Guard) ValidateValue(v any) Verdict {
	return g.ValidateValueContext(context.Background(), v)
}

// ValidateValueContext is ValidateValue with a context carried into log records.
func (g *Guard) ValidateValueContext(ctx context.Context, v any) Verdict {
	s, ok := v.(string)
	if !ok {
		return invalidVerdict(MsgInvalidInput)
	}
	return g.ValidateContext(ctx, s)
}

// ValidateContext classifies input. The context only feeds request scoped
// attributes into log records; cancellation is not observed because a scan is
// already bounded by the time budget.
func (g *Guard) ValidateContext(ctx context.Context, input string) (verdict Verdict) {
	defer func() {
		if r := recover(); r != nil {
			g.log.ErrorContext(ctx, "validation aborted",
				logger.Event("panic"),
				slog.Any("panic", r),
			)
			verdict = invalidVerdict(MsgInvalidInput)
		}
	}()

	if input == "" {
		return invalidVerdict(MsgInvalidInput)
	}
	if exceedsLength(input, maxInputLength) {
		return invalidVerdict(MsgInputTooLong)
	}

	if res := g.scan(g.library.xss, input, maxAttackScanLength); res.detected() {
		g.report(ctx, CategoryXSS, res, input)
		return attackVerdict(CategoryXSS)
	}
	if res := g.scan(g.library.sqli, input, maxAttackScanLength); res.detected() {
		g.report(ctx, CategorySQLInjection, res, input)
		return attackVerdict(CategorySQLInjection)
	}

	errs := make([]string, 0, 2)
	if exceedsLength(input, maxValidLength) {
		errs = append(errs, MsgExceedsRecommendedLength)
	}
	if g.containsSuspiciousPatterns(ctx, input) {
		errs = append(errs, MsgSuspicious)
	}

	return Verdict{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Category: CategoryValid,
	}
}

// ContainsSuspiciousPatterns runs only the secondary heuristics. Inputs longer
// than the suspicious scan limit are always suspicious.
func (g *Guard) ContainsSuspiciousPatterns(input string) bool {
	return g.containsSuspiciousPatterns(context.Background(), input)
}

func (g *Guard) containsSuspiciousPatterns(ctx context.Context, input string) bool {
	res := g.scan(g.library.suspicious, input, maxSuspiciousScanLength)
	if res.detected() {
		g.log.LogAttrs(ctx, slog.LevelDebug, "suspicious input",
			logger.Rule(res.rule),
			logger.Event(res.outcome.String()),
			logger.Duration(res.elapsed),
		)
	}
	return res.detected()
}
