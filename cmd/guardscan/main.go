// Command guardscan runs the input guard over a labelled YAML corpus or over
// newline separated inputs read from stdin, printing one JSON line per input.
//
//	guardscan -corpus pkg/inputguard/testdata/corpus.yaml
//	printf 'hello\n<script>\n' | guardscan
//
// The exit status is 1 when a corpus entry does not get its expected verdict
// and 2 on usage or I/O errors.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/zhiyi-school/ssd-practest/pkg/inputguard"
	"github.com/zhiyi-school/ssd-practest/pkg/logger"
)

// maxLineSize bounds a single stdin line. Longer lines fail the scan rather
// than being split.
const maxLineSize = 1 << 20

var errMismatch = errors.New("corpus mismatch")

type result struct {
	Index   int                 `json:"index"`
	Name    string              `json:"name,omitempty"`
	Length  int                 `json:"length"`
	Type    inputguard.Category `json:"type"`
	IsValid bool                `json:"isValid"`
	Errors  []string            `json:"errors"`
	Expect  inputguard.Category `json:"expect,omitempty"`
	OK      *bool               `json:"ok,omitempty"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, errMismatch):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("guardscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	corpusPath := fs.String("corpus", "", "YAML corpus file; stdin lines are scanned when empty")
	workers := fs.Int("workers", runtime.GOMAXPROCS(0), "number of concurrent validations")
	verbose := fs.Bool("v", false, "log detections to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", *workers)
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.New(logger.WithOutput(stderr), logger.WithTextFormatter(), logger.WithLevel(level))
	guard := inputguard.New(inputguard.WithLogger(log))

	entries, err := loadEntries(*corpusPath, stdin)
	if err != nil {
		return err
	}

	results, err := scan(ctx, guard, entries, *workers)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	mismatches := 0
	for _, r := range results {
		if r.OK != nil && !*r.OK {
			mismatches++
		}
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%w: %d of %d entries", errMismatch, mismatches, len(results))
	}
	return nil
}

// entry is an input with an optional expectation; stdin lines have none.
type entry struct {
	corpus *inputguard.CorpusEntry
	input  string
}

func loadEntries(corpusPath string, stdin io.Reader) ([]entry, error) {
	if corpusPath != "" {
		c, err := inputguard.LoadCorpus(corpusPath)
		if err != nil {
			return nil, err
		}
		out := make([]entry, len(c.Entries))
		for i := range c.Entries {
			out[i] = entry{corpus: &c.Entries[i], input: c.Entries[i].Input}
		}
		return out, nil
	}

	var out []entry
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		out = append(out, entry{input: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return out, nil
}

// scan validates entries with at most workers goroutines and returns results
// in input order.
func scan(ctx context.Context, guard *inputguard.Guard, entries []entry, workers int) ([]result, error) {
	results := make([]result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v := guard.ValidateContext(ctx, e.input)
			r := result{
				Index:   i,
				Length:  utf8.RuneCountInString(e.input),
				Type:    v.Category,
				IsValid: v.IsValid,
				Errors:  v.Errors,
			}
			if e.corpus != nil {
				ok := e.corpus.Check(v)
				r.Name = e.corpus.Name
				r.Expect = e.corpus.Expect
				r.OK = &ok
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
