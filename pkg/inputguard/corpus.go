package inputguard

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCorpus is returned when a corpus file cannot be decoded or
// contains malformed entries.
var ErrInvalidCorpus = errors.New("invalid corpus")

// CorpusEntry is one labelled sample.
// When Accept is set the entry also asserts the IsValid flag.
type CorpusEntry struct {
	Name   string   `yaml:"name"`
	Input  string   `yaml:"input"`
	Expect Category `yaml:"expect"`
	Accept *bool    `yaml:"accept,omitempty"`
}

// Check reports whether v satisfies the entry's expectations.
func (e CorpusEntry) Check(v Verdict) bool {
	if v.Category != e.Expect {
		return false
	}
	if e.Accept != nil && v.IsValid != *e.Accept {
		return false
	}
	return true
}

// Corpus is a named collection of labelled samples.
type Corpus struct {
	Entries []CorpusEntry `yaml:"entries"`
}

// ByCategory returns the entries expecting the given category.
func (c Corpus) ByCategory(category Category) []CorpusEntry {
	out := make([]CorpusEntry, 0, len(c.Entries))
	for _, e := range c.Entries {
		if e.Expect == category {
			out = append(out, e)
		}
	}
	return out
}

// ParseCorpus decodes a YAML corpus document.
func ParseCorpus(data []byte) (Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Corpus{}, errors.Join(ErrInvalidCorpus, err)
	}
	for i, e := range c.Entries {
		if !e.Expect.IsKnown() {
			return Corpus{}, fmt.Errorf("%w: entry %d (%q): unknown category %q", ErrInvalidCorpus, i, e.Name, e.Expect)
		}
	}
	return c, nil
}

// LoadCorpus reads and decodes a YAML corpus file.
func LoadCorpus(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("read corpus: %w", err)
	}
	return ParseCorpus(data)
}
