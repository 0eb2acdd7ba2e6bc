package inputguard

import "github.com/zhiyi-school/ssd-practest/pkg/sanitizer"

var sanitize = sanitizer.Compose(
	sanitizer.Truncate(maxSanitizeLength),
	sanitizer.EncodeHTMLEntities,
)

// Sanitize truncates s to the sanitize limit and HTML-encodes it so that it
// can be echoed into a page. Empty input yields "".
//
// Sanitize is not idempotent for strings containing "&" or any of the
// encoded characters; callers must sanitize exactly once.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return sanitize(s)
}

// SanitizeValue is Sanitize for decoded values. Non-strings yield "".
func SanitizeValue(v any) string {
	s, _ := v.(string)
	return Sanitize(s)
}

// Sanitize is the package level Sanitize, available on a Guard for callers
// that hold one.
func (g *Guard) Sanitize(s string) string {
	return Sanitize(s)
}
