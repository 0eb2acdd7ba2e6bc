package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhiyi-school/ssd-practest/pkg/inputguard"
)

func decodeResults(t *testing.T, out *bytes.Buffer) []result {
	t.Helper()
	var results []result
	sc := bufio.NewScanner(out)
	for sc.Scan() {
		var r result
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		results = append(results, r)
	}
	require.NoError(t, sc.Err())
	return results
}

func writeCorpus(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	in := strings.NewReader("wireless mouse\n<script>alert(1)</script>\n' OR 1=1 --\n")
	err := run(t.Context(), []string{"-workers", "2"}, in, &out, &errOut)
	require.NoError(t, err)

	results := decodeResults(t, &out)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Nil(t, r.OK)
	}
	assert.Equal(t, inputguard.CategoryValid, results[0].Type)
	assert.True(t, results[0].IsValid)
	assert.Equal(t, inputguard.CategoryXSS, results[1].Type)
	assert.Equal(t, inputguard.CategorySQLInjection, results[2].Type)
	assert.NotContains(t, out.String(), "alert")
}

func TestRun_Corpus(t *testing.T) {
	t.Parallel()

	path := writeCorpus(t, `
entries:
  - name: benign
    input: "red shoes"
    expect: valid
    accept: true
  - name: script
    input: "<script>x</script>"
    expect: xss
`)

	var out, errOut bytes.Buffer
	require.NoError(t, run(t.Context(), []string{"-corpus", path}, strings.NewReader(""), &out, &errOut))

	results := decodeResults(t, &out)
	require.Len(t, results, 2)
	assert.Equal(t, "benign", results[0].Name)
	require.NotNil(t, results[0].OK)
	assert.True(t, *results[0].OK)
	assert.Equal(t, "script", results[1].Name)
	assert.Equal(t, inputguard.CategoryXSS, results[1].Expect)
}

func TestRun_CorpusMismatch(t *testing.T) {
	t.Parallel()

	path := writeCorpus(t, `
entries:
  - name: mislabelled
    input: "<iframe src=x>"
    expect: valid
`)

	var out, errOut bytes.Buffer
	err := run(t.Context(), []string{"-corpus", path}, strings.NewReader(""), &out, &errOut)
	require.ErrorIs(t, err, errMismatch)

	results := decodeResults(t, &out)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].OK)
	assert.False(t, *results[0].OK)
}

func TestRun_BundledCorpus(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	path := filepath.Join("..", "..", "pkg", "inputguard", "testdata", "corpus.yaml")
	require.NoError(t, run(t.Context(), []string{"-corpus", path, "-workers", "4"}, strings.NewReader(""), &out, &errOut))
	assert.NotEmpty(t, decodeResults(t, &out))
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"unknown flag":   {"-nope"},
		"zero workers":   {"-workers", "0"},
		"missing corpus": {"-corpus", filepath.Join(t.TempDir(), "absent.yaml")},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var out, errOut bytes.Buffer
			err := run(t.Context(), args, strings.NewReader(""), &out, &errOut)
			require.Error(t, err)
			assert.NotErrorIs(t, err, errMismatch)
		})
	}

	t.Run("bad corpus", func(t *testing.T) {
		t.Parallel()
		path := writeCorpus(t, "entries:\n  - name: x\n    input: y\n    expect: spam\n")
		var out, errOut bytes.Buffer
		err := run(t.Context(), []string{"-corpus", path}, strings.NewReader(""), &out, &errOut)
		assert.ErrorIs(t, err, inputguard.ErrInvalidCorpus)
	})
}
