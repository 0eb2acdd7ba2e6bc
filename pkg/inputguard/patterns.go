package inputguard

import (
	"net/url"
	"regexp"
	"slices"
)

// Matcher reports whether an input matches an attack signature.
// *regexp.Regexp satisfies it.
type Matcher interface {
	MatchString(s string) bool
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(s string) bool

func (f MatcherFunc) MatchString(s string) bool { return f(s) }

// PatternRule is one named signature of a given category.
type PatternRule struct {
	Name     string
	Category Category
	Matcher  Matcher
}

// Every quantifier below carries an explicit upper bound. Go's regexp package
// is RE2-based and matches in linear time, so the bounds and the scan budget
// are a second layer rather than the only defense.
var xssRules = []PatternRule{
	rule("xss.script_tag", CategoryXSS, `(?i)<\s{0,10}/?\s{0,10}script\b`),
	rule("xss.javascript_uri", CategoryXSS, `(?i)javascript\s{0,10}:`),
	rule("xss.vbscript_uri", CategoryXSS, `(?i)vbscript\s{0,10}:`),
	rule("xss.event_handler", CategoryXSS, `(?i)\bon\w{1,40}\s{0,10}=`),
	rule("xss.dangerous_tag", CategoryXSS, `(?i)<\s{0,10}(iframe|object|embed|link|meta|style)\b`),
	rule("xss.data_html_uri", CategoryXSS, `(?i)data\s{0,10}:\s{0,10}text/html`),
	rule("xss.css_expression", CategoryXSS, `(?i)expression\s{0,10}\(`),
	rule("xss.css_url", CategoryXSS, `(?i)\burl\s{0,10}\(`),
	rule("xss.attribute_javascript", CategoryXSS, `(?i)\b(href|src)\s{0,10}=\s{0,10}['"]{0,3}\s{0,10}javascript\s{0,10}:`),
}

var sqlInjectionRules = []PatternRule{
	rule("sqli.quoted_boolean", CategorySQLInjection, `(?i)['"]\s{0,10}\b(or|and)\b\s{0,10}['"]?\s{0,10}\w{1,50}\s{0,10}['"]?\s{0,10}(=|<|>|\blike\b)`),
	rule("sqli.quoted_boolean_pair", CategorySQLInjection, `(?i)['"]\s{0,10}\b(or|and)\b\s{0,10}['"]`),
	rule("sqli.union_select", CategorySQLInjection, `(?i)\bunion\s{1,10}(all\s{1,10})?select\b`),
	rule("sqli.comment_truncation", CategorySQLInjection, `['";]\s{0,10}(--|#|/\*)`),
	rule("sqli.stacked_query", CategorySQLInjection, `(?i);\s{0,10}(drop|delete|update|insert|create|alter|truncate|exec|execute|shutdown|grant|revoke)\b`),
	rule("sqli.numeric_tautology", CategorySQLInjection, `(?i)\b(or|and)\s{1,10}\d{1,10}\s{0,10}=\s{0,10}\d{1,10}`),
	rule("sqli.string_tautology", CategorySQLInjection, `(?i)\b(or|and)\s{1,10}['"]\w{1,50}['"]\s{0,10}=\s{0,10}['"]\w{1,50}['"]`),
	rule("sqli.encoded_quote_keyword", CategorySQLInjection, `(?i)(%27|%22|%60)(\s|%20|\+){0,10}(or|and|union|select|insert|update|delete|drop|exec|%6f%72|%61%6e%64)`),
	rule("sqli.encoded_union", CategorySQLInjection, `(?i)('|%27)(\s|%20|\+){0,10}(u|%55)(n|%4e)(i|%49)(o|%4f)(n|%4e)`),
	rule("sqli.stored_procedure", CategorySQLInjection, `(?i)\bexec(ute)?(\s|\+){1,10}[sx]p\w{1,50}`),
	rule("sqli.extended_procedure", CategorySQLInjection, `(?i)\bxp_\w{1,50}`),
	rule("sqli.blind_comparison_comment", CategorySQLInjection, `\d\s{0,10}=\s{0,10}\d\s{0,10}(--|#|/\*)`),
	rule("sqli.waitfor_delay", CategorySQLInjection, `(?i)\bwaitfor\s{1,10}delay\b`),
	rule("sqli.sleep_call", CategorySQLInjection, `(?i)\bsleep\s{0,10}\(\s{0,10}\d`),
	rule("sqli.benchmark_call", CategorySQLInjection, `(?i)\bbenchmark\s{0,10}\(\s{0,10}\d`),
}

var (
	// percentTokenRegex finds percent-escape-looking tokens, including
	// malformed ones like "%zz", so that they reach the decode probe.
	percentTokenRegex = regexp.MustCompile(`%[0-9A-Za-z]{2}`)

	suspiciousRules = []PatternRule{
		rule("suspicious.special_char_run", CategoryValid, `[<>'";&|(){}\[\]]{3,10}`),
		rule("suspicious.operator_run", CategoryValid, `[=<>!]{2,5}`),
		{Name: "suspicious.percent_encoding", Category: CategoryValid, Matcher: MatcherFunc(percentEncodingProbe)},
	}
)

func rule(name string, category Category, pattern string) PatternRule {
	return PatternRule{Name: name, Category: category, Matcher: regexp.MustCompile(pattern)}
}

// percentEncodingProbe decodes the input once and flags anything that changes
// under decoding, cannot be decoded, or is too large to probe. The decoded form
// is never scanned again for attack signatures.
func percentEncodingProbe(s string) bool {
	if !percentTokenRegex.MatchString(s) {
		return false
	}
	if exceedsLength(s, maxEncodedProbeLength) {
		return true
	}

	decoded, err := url.PathUnescape(s)
	if err != nil {
		return true
	}
	if exceedsLength(decoded, maxDecodedProbeLength) {
		return true
	}
	return decoded != s
}

// Library holds the ordered rule sets used by a Guard.
// Order does not change the verdict but decides which rule is reported.
type Library struct {
	xss        []PatternRule
	sqli       []PatternRule
	suspicious []PatternRule
}

// DefaultLibrary returns the built-in rule sets.
func DefaultLibrary() Library {
	return Library{
		xss:        slices.Clone(xssRules),
		sqli:       slices.Clone(sqlInjectionRules),
		suspicious: slices.Clone(suspiciousRules),
	}
}

// NewLibrary builds a library from caller supplied rule sets.
// The slices are copied.
func NewLibrary(xss, sqlInjection, suspicious []PatternRule) Library {
	return Library{
		xss:        slices.Clone(xss),
		sqli:       slices.Clone(sqlInjection),
		suspicious: slices.Clone(suspicious),
	}
}

// XSS returns a copy of the XSS rules in evaluation order.
func (l Library) XSS() []PatternRule { return slices.Clone(l.xss) }

// SQLInjection returns a copy of the SQL injection rules in evaluation order.
func (l Library) SQLInjection() []PatternRule { return slices.Clone(l.sqli) }

// Suspicious returns a copy of the secondary heuristic rules.
func (l Library) Suspicious() []PatternRule { return slices.Clone(l.suspicious) }
