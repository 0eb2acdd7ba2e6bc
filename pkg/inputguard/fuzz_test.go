package inputguard_test

import (
	"testing"
	"unicode/utf8"

	"github.com/zhiyi-school/ssd-practest/pkg/inputguard"
)

func FuzzValidate(f *testing.F) {
	corpus, err := inputguard.LoadCorpus("testdata/corpus.yaml")
	if err != nil {
		f.Fatal(err)
	}
	for _, e := range corpus.Entries {
		f.Add(e.Input)
	}
	f.Add("\xff\xfe")
	f.Add("%%%%")

	guard := inputguard.New()

	f.Fuzz(func(t *testing.T, input string) {
		v := guard.Validate(input)

		if !v.Category.IsKnown() {
			t.Fatalf("unknown category %q", v.Category)
		}
		if v.Errors == nil {
			t.Fatal("errors must not be nil")
		}
		if v.IsValid != (len(v.Errors) == 0) {
			t.Fatalf("isValid=%v with errors %v", v.IsValid, v.Errors)
		}
		if v.Category != inputguard.CategoryValid && (v.IsValid || len(v.Errors) != 1) {
			t.Fatalf("category %s must carry exactly one error, got %v", v.Category, v.Errors)
		}

		out := inputguard.Sanitize(input)
		if utf8.RuneCountInString(input) <= 5000 && len(out) < len(input) {
			t.Fatalf("sanitized output shorter than input")
		}
	})
}
