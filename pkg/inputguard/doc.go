// Package inputguard classifies untrusted text as valid, structurally
// invalid, cross-site scripting or SQL injection before it is echoed back to
// a browser, and encodes accepted text for safe output.
//
// Validation runs in a fixed order and stops at the first hard failure:
//
//  1. empty input, or input longer than the hard ceiling, is invalid;
//  2. the XSS rule set is scanned;
//  3. the SQL injection rule set is scanned;
//  4. soft checks (recommended length, suspicious character runs, percent
//     escapes) add errors without changing the category.
//
// A scan denies when it cannot reach a confident negative: inputs too long to
// scan, rules that overrun their time budget and matchers that panic all
// count as detections. Time is read through a Clock so that tests can
// simulate slow matchers.
//
// # Usage
//
//	guard := inputguard.New(inputguard.WithLogger(log))
//
//	v := guard.Validate(term)
//	if !v.IsValid {
//		return v.Errors
//	}
//	safe := guard.Sanitize(term)
//
// Sanitize must be applied exactly once: encoding is not idempotent for text
// containing "&" or other escaped characters.
package inputguard
