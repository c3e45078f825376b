package table

import (
	"context"
	"errors"
	"fmt"
	"io"

	"historyfetcher/internal/yahoo"
)

// Runner adapts a bound Scanner to the fetcher.Fetcher interface so the
// coordinator can drive many symbol scans concurrently. Each Runner owns its
// own cursor; runners share no mutable state.
type Runner struct {
	scanner *Scanner
	key     string
	onBatch func([]yahoo.Row)
}

// NewRunner binds the scan and wraps it for the coordinator. onBatch, if not
// nil, is called with every non-empty batch as it arrives.
func NewRunner(in BindInput, fetch yahoo.WindowFetcher, onBatch func([]yahoo.Row)) (*Runner, error) {
	scanner, err := Bind(in, fetch)
	if err != nil {
		return nil, err
	}

	return &Runner{
		scanner: scanner,
		key:     fmt.Sprintf("history:%s:%s", in.Symbol, in.Interval),
		onBatch: onBatch,
	}, nil
}

// Fetch drives the scan to exhaustion and returns the total row count.
// The first window failure aborts the scan.
func (r *Runner) Fetch(ctx context.Context) (int, error) {
	total := 0
	for {
		rows, err := r.scanner.Scan(ctx)
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}

		total += len(rows)
		if r.onBatch != nil && len(rows) > 0 {
			r.onBatch(rows)
		}
	}
}

// Key returns the hierarchical key for this scan
func (r *Runner) Key() string {
	return r.key
}
