package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Present checks that a decoded value exists and, when it is a string, that
// it is not blank. Values of other types count as present; checking their
// type is left to the caller.
func Present(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			switch v := value.(type) {
			case nil:
				return false
			case string:
				return strings.TrimSpace(v) != ""
			default:
				return true
			}
		},
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// RequiredString checks that value is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// MaxLen checks that value has at most max characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters long", max)},
	}
}
