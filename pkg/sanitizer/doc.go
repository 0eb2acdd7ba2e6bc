// Package sanitizer provides small, stateless helpers for turning untrusted
// text into something that is safe to echo back into an HTML page.
//
// Helpers:
//
//   - EncodeHTMLEntities replaces the six characters that can open a tag,
//     close an attribute value or start a URL path (& < > " ' /) with their
//     HTML entities.
//   - LimitLength and Truncate cap input length in runes.
//
// Apply and Compose chain helpers into pipelines:
//
//	encode := sanitizer.Compose(
//	    sanitizer.Truncate(5000),
//	    sanitizer.EncodeHTMLEntities,
//	)
//
//	safe := encode(`<b>"hi"</b>`) // "&lt;b&gt;&quot;hi&quot;&lt;&#x2F;b&gt;"
//
// # Error handling
//
// None of the helpers returns an error. They always produce a string, falling
// back to an empty string for non-positive limits.
//
// # Concurrency
//
// There is no package state besides immutable replacers, so every helper is
// safe for concurrent use.
package sanitizer
