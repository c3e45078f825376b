// Package table exposes the history scan as a bind/scan pair, the shape a
// pull-based query engine expects from a table-producing function: bind
// validates the inputs and reports the output schema before any data is
// fetched, scan is then invoked repeatedly for batches until completion.
package table

import (
	"context"
	"time"

	"historyfetcher/internal/fetcher"
	"historyfetcher/internal/yahoo"
)

// BindInput holds the typed arguments of the table function.
type BindInput struct {
	Symbol   string
	From     time.Time
	To       time.Time
	Interval string
}

// Scanner is a bound scan. It assumes a single caller at a time; the host
// must not invoke Scan concurrently on one Scanner.
type Scanner struct {
	cursor  *yahoo.Cursor
	columns []yahoo.Column
}

// Bind validates the inputs and prepares the scan. All validation failures
// (non-date inputs, to <= from, unsupported interval) surface here, before
// any request is built.
func Bind(in BindInput, fetch yahoo.WindowFetcher) (*Scanner, error) {
	if in.From.IsZero() || in.To.IsZero() {
		return nil, fetcher.NewValidationError("start and end periods must be dates")
	}

	req, err := yahoo.NewRequest(in.Symbol, in.From, in.To, in.Interval)
	if err != nil {
		return nil, err
	}

	cursor, err := yahoo.NewCursor(req, fetch)
	if err != nil {
		return nil, err
	}

	return &Scanner{
		cursor:  cursor,
		columns: cursor.Columns(),
	}, nil
}

// Columns returns the output schema discovered at bind time.
func (s *Scanner) Columns() []yahoo.Column {
	return s.columns
}

// Scan returns the next batch of rows, or io.EOF when the range is exhausted.
// A batch may be empty without meaning completion. Any fetch or decode error
// aborts the scan and is returned unmodified.
func (s *Scanner) Scan(ctx context.Context) ([]yahoo.Row, error) {
	return s.cursor.Next(ctx)
}
