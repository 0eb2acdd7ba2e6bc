// Package search exposes the input guard over HTTP.
//
// POST / accepts {"searchTerm": ...} as JSON or a urlencoded form field and
// answers with one of three JSON bodies, always with status 200:
//
//	{"success":false,"errors":["Search term is required"]}
//	{"success":false,"errors":["Input contains potentially malicious content (XSS)","Input cleared due to potential XSS attack"],"type":"xss"}
//	{"success":true,"message":"Search term is valid","sanitizedTerm":"caf&#x27;e"}
//
// A term counts as missing when the field is absent, null, or a string that
// is empty or only whitespace. Whitespace-only terms are therefore answered
// with "Search term is required" rather than validated and echoed. Any other
// non-string value, including 0 and false, reaches the guard and is answered
// with "Invalid input provided" and "type":"invalid".
//
// Rejected terms are never echoed. Malformed bodies go through the configured
// handler.ErrorHandler and produce a 400 or 415 ErrorBody.
//
// Usage:
//
//	guard := inputguard.New(inputguard.WithLogger(log))
//	r.Mount("/search", search.NewService(guard, log).Handle())
package search
