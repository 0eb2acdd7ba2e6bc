package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// htmlEntityReplacer performs a single left-to-right pass, so the ampersands
// it inserts are never encoded again.
var htmlEntityReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EncodeHTMLEntities replaces & < > " ' and / with HTML entities.
// The result is equivalent to substituting "&" first and the remaining
// characters afterwards. It is not idempotent: encoding twice encodes the
// ampersands introduced by the first pass.
func EncodeHTMLEntities(s string) string {
	if s == "" {
		return ""
	}
	return htmlEntityReplacer.Replace(s)
}

// LimitLength truncates s to at most maxLength characters (runes).
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	// Fast path: byte length is an upper bound on rune count.
	if len(s) <= maxLength {
		return s
	}

	n := 0
	for i := range s {
		if n == maxLength {
			return s[:i]
		}
		n++
	}
	return s
}

// Truncate returns a transform that applies LimitLength with the given cap,
// for use in Apply and Compose pipelines.
func Truncate(maxLength int) func(string) string {
	return func(s string) string {
		return LimitLength(s, maxLength)
	}
}

// Length reports the number of characters (runes) in s. Invalid UTF-8 bytes
// count as one character each.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
