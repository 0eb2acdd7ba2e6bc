package inputguard

import "time"

// Engine invariants. They are compile-time constants and are never read from
// the environment or changed at runtime.
const (
	maxInputLength          = 10000
	maxValidLength          = 1000
	maxAttackScanLength     = 5000
	maxSuspiciousScanLength = 2000
	globalScanBudget        = 30 * time.Millisecond
	perPatternBudget        = 5 * time.Millisecond
	maxEncodedProbeLength   = 200
	maxDecodedProbeLength   = 400
	maxSanitizeLength       = 5000
)

// EngineLimits is a read-only snapshot of the engine invariants.
// Lengths are measured in characters (runes).
type EngineLimits struct {
	MaxInputLength          int
	MaxValidLength          int
	MaxAttackScanLength     int
	MaxSuspiciousScanLength int
	GlobalScanBudget        time.Duration
	PerPatternBudget        time.Duration
	MaxEncodedProbeLength   int
	MaxDecodedProbeLength   int
	MaxSanitizeLength       int
}

// Limits returns a copy of the engine invariants.
func Limits() EngineLimits {
	return EngineLimits{
		MaxInputLength:          maxInputLength,
		MaxValidLength:          maxValidLength,
		MaxAttackScanLength:     maxAttackScanLength,
		MaxSuspiciousScanLength: maxSuspiciousScanLength,
		GlobalScanBudget:        globalScanBudget,
		PerPatternBudget:        perPatternBudget,
		MaxEncodedProbeLength:   maxEncodedProbeLength,
		MaxDecodedProbeLength:   maxDecodedProbeLength,
		MaxSanitizeLength:       maxSanitizeLength,
	}
}

// exceedsLength reports whether s has more than limit characters.
// It stops counting once the limit is passed, so the cost is bounded by limit
// rather than by len(s).
func exceedsLength(s string, limit int) bool {
	if len(s) <= limit {
		return false
	}
	n := 0
	for range s {
		n++
		if n > limit {
			return true
		}
	}
	return false
}
