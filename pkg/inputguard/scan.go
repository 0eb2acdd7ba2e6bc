package inputguard

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/zhiyi-school/ssd-practest/pkg/logger"
)

type scanOutcome int

const (
	scanClean scanOutcome = iota
	scanMatched
	scanOversized
	scanTimeout
	scanFault
)

func (o scanOutcome) String() string {
	switch o {
	case scanClean:
		return "clean"
	case scanMatched:
		return "matched"
	case scanOversized:
		return "oversized"
	case scanTimeout:
		return "timeout"
	case scanFault:
		return "fault"
	default:
		return "unknown"
	}
}

// scanResult describes how a rule set scan ended.
// Every outcome except scanClean must be treated as a positive detection.
type scanResult struct {
	outcome scanOutcome
	rule    string
	elapsed time.Duration
}

func (r scanResult) detected() bool {
	return r.outcome != scanClean
}

// scan runs rules against input in order and stops at the first positive.
// Inputs longer than limit are denied without evaluating any rule. A rule that
// runs past perPatternBudget, a scan that runs past globalScanBudget, and a
// matcher that panics all count as a positive.
func (g *Guard) scan(rules []PatternRule, input string, limit int) scanResult {
	if exceedsLength(input, limit) {
		return scanResult{outcome: scanOversized}
	}

	start := g.clock.Now()
	for _, r := range rules {
		ruleStart := g.clock.Now()
		matched, ok := evaluate(r.Matcher, input)
		now := g.clock.Now()

		switch {
		case !ok:
			return scanResult{outcome: scanFault, rule: r.Name, elapsed: now.Sub(start)}
		case matched:
			return scanResult{outcome: scanMatched, rule: r.Name, elapsed: now.Sub(start)}
		case now.Sub(ruleStart) > perPatternBudget, now.Sub(start) > globalScanBudget:
			return scanResult{outcome: scanTimeout, rule: r.Name, elapsed: now.Sub(start)}
		}
	}

	return scanResult{outcome: scanClean, elapsed: g.clock.Now().Sub(start)}
}

// evaluate calls the matcher and converts a panic into ok == false.
func evaluate(m Matcher, input string) (matched, ok bool) {
	defer func() {
		if recover() != nil {
			matched, ok = true, false
		}
	}()
	if m == nil {
		return true, false
	}
	return m.MatchString(input), true
}

// report logs a positive scan result. The raw input is never logged.
func (g *Guard) report(ctx context.Context, category Category, res scanResult, input string) {
	if !res.detected() {
		return
	}

	level := slog.LevelWarn
	if res.outcome == scanTimeout || res.outcome == scanFault {
		level = slog.LevelError
	}

	g.log.LogAttrs(ctx, level, "input rejected",
		logger.Category(string(category)),
		logger.Rule(res.rule),
		logger.Event(res.outcome.String()),
		logger.InputLength(utf8.RuneCountInString(input)),
		logger.Duration(res.elapsed),
	)
}
