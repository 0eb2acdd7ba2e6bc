package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhiyi-school/ssd-practest/pkg/sanitizer"
)

func TestEncodeHTMLEntities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "encodes script tag",
			input:    "<script>alert('xss')</script>",
			expected: "&lt;script&gt;alert(&#x27;xss&#x27;)&lt;&#x2F;script&gt;",
		},
		{
			name:     "encodes quotes and ampersands",
			input:    `"test" & 'value'`,
			expected: "&quot;test&quot; &amp; &#x27;value&#x27;",
		},
		{
			name:     "encodes slash",
			input:    "a/b/c",
			expected: "a&#x2F;b&#x2F;c",
		},
		{
			name:     "encodes existing entity once",
			input:    "&lt;",
			expected: "&amp;lt;",
		},
		{
			name:     "handles normal text",
			input:    "normal text",
			expected: "normal text",
		},
		{
			name:     "handles unicode",
			input:    "café <ü>",
			expected: "café &lt;ü&gt;",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.EncodeHTMLEntities(tt.input))
		})
	}
}

func TestEncodeHTMLEntities_NotIdempotent(t *testing.T) {
	t.Parallel()

	once := sanitizer.EncodeHTMLEntities("a & b")
	twice := sanitizer.EncodeHTMLEntities(once)

	assert.Equal(t, "a &amp; b", once)
	assert.Equal(t, "a &amp;amp; b", twice)
}

func TestLimitLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{
			name:      "truncates long string",
			input:     "very long string",
			maxLength: 5,
			expected:  "very ",
		},
		{
			name:      "preserves short string",
			input:     "short",
			maxLength: 10,
			expected:  "short",
		},
		{
			name:      "preserves exact length",
			input:     "exact",
			maxLength: 5,
			expected:  "exact",
		},
		{
			name:      "handles zero length",
			input:     "test",
			maxLength: 0,
			expected:  "",
		},
		{
			name:      "handles negative length",
			input:     "test",
			maxLength: -1,
			expected:  "",
		},
		{
			name:      "counts runes not bytes",
			input:     "héllo wörld",
			maxLength: 4,
			expected:  "héll",
		},
		{
			name:      "multibyte string shorter than cap in runes",
			input:     "日本語",
			maxLength: 3,
			expected:  "日本語",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.LimitLength(tt.input, tt.maxLength))
		})
	}
}

func TestLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, sanitizer.Length(""))
	assert.Equal(t, 5, sanitizer.Length("hello"))
	assert.Equal(t, 3, sanitizer.Length("日本語"))
	assert.Equal(t, 2, sanitizer.Length("\xff\xfe"))
}

func BenchmarkEncodeHTMLEntities(b *testing.B) {
	input := strings.Repeat(`<a href="/x?a=1&b=2">'q'</a>`, 100)
	b.ResetTimer()
	for b.Loop() {
		_ = sanitizer.EncodeHTMLEntities(input)
	}
}

func BenchmarkLimitLength(b *testing.B) {
	input := strings.Repeat("é", 10000)
	b.ResetTimer()
	for b.Loop() {
		_ = sanitizer.LimitLength(input, 5000)
	}
}
