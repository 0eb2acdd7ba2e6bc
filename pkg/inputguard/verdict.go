package inputguard

// Category classifies why an input was rejected.
type Category string

const (
	// CategoryValid means no attack signature matched. The verdict may still
	// carry soft errors (length over the recommended maximum, suspicious
	// character sequences).
	CategoryValid Category = "valid"
	// CategoryInvalid is reserved for structural problems: wrong type, empty
	// input or input over the hard length ceiling.
	CategoryInvalid Category = "invalid"
	// CategoryXSS marks a cross-site scripting signature, confirmed or
	// presumed because the scan could not finish.
	CategoryXSS Category = "xss"
	// CategorySQLInjection marks a SQL injection signature, confirmed or
	// presumed because the scan could not finish.
	CategorySQLInjection Category = "sqli"
)

// IsAttack reports whether c is one of the attack categories.
func (c Category) IsAttack() bool {
	return c == CategoryXSS || c == CategorySQLInjection
}

// IsKnown reports whether c is one of the declared categories.
func (c Category) IsKnown() bool {
	switch c {
	case CategoryValid, CategoryInvalid, CategoryXSS, CategorySQLInjection:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Human-readable verdict messages. They never contain any part of the input.
const (
	MsgInvalidInput             = "Invalid input provided"
	MsgInputTooLong             = "Input is too long"
	MsgXSS                      = "Input contains potentially malicious content (XSS)"
	MsgSQLInjection             = "Input contains potentially malicious content (SQL Injection)"
	MsgExceedsRecommendedLength = "Input is too long (maximum 1000 characters)"
	MsgSuspicious               = "Input contains suspicious patterns"
)

// Verdict is the result of validating one input.
// Errors is ordered by detection order and is empty, never nil, when the
// input is valid.
type Verdict struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Category Category `json:"type"`
}

func invalidVerdict(msg string) Verdict {
	return Verdict{IsValid: false, Errors: []string{msg}, Category: CategoryInvalid}
}

func attackVerdict(category Category) Verdict {
	msg := MsgXSS
	if category == CategorySQLInjection {
		msg = MsgSQLInjection
	}
	return Verdict{IsValid: false, Errors: []string{msg}, Category: category}
}
