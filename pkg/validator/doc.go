// Package validator builds declarative request checks out of small Rule
// values and reports every failure at once.
//
//	err := validator.Apply(
//		validator.Present("searchTerm", req.SearchTerm).WithMessage("Search term is required"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		return verrs.Messages()
//	}
//
// These rules cover request shape only. Content checks for malicious input
// live in package inputguard.
package validator
