package yahoo

import (
	"context"
	"fmt"
	"io"

	"historyfetcher/internal/interval"
)

// maxSamplesPerRequest is the provider's practical cap on rows per download
// request. Ranges implying more samples than this are split into sub-windows.
const maxSamplesPerRequest = 60

// Window is one contiguous sub-range of a request's epoch span, small enough
// to fetch in a single download request.
type Window struct {
	Symbol   string
	Interval string
	From     int64
	To       int64
}

// WindowFetcher fetches and decodes the rows for one window. Implementations
// must propagate transport and parse failures unmodified; the cursor aborts
// the whole scan on the first failed window.
type WindowFetcher interface {
	FetchWindow(ctx context.Context, w Window) ([]Row, error)
}

// Cursor walks a Request window by window. It is pull-based: each Next call
// executes exactly one window's request, so a consumer that stops early never
// pays for the rest of the range.
//
// A Cursor is not safe for concurrent use. Independent cursors share no state
// and may run in parallel.
type Cursor struct {
	req     Request
	fetch   WindowFetcher
	step    int64
	curFrom int64
	curTo   int64
	planned *Window
}

// NewCursor computes the windowing plan for req and plans the first window.
// Planning is pure bookkeeping; no request is issued until Next is called, so
// a consumer can learn the output schema from Columns before pulling any data.
func NewCursor(req Request, fetch WindowFetcher) (*Cursor, error) {
	intervalSeconds := interval.Seconds(req.Interval)
	if intervalSeconds == 0 {
		// NewRequest validates the interval, so this only trips when a
		// caller hand-builds a Request.
		return nil, fmt.Errorf("unsupported interval %q", req.Interval)
	}

	span := req.ToEpoch - req.FromEpoch
	expectedSamples := span/intervalSeconds + 1

	// Split the range so no single request implies more than roughly
	// maxSamplesPerRequest samples. Integer division keeps the windows
	// aligned with what the provider accepts in practice.
	var step int64
	if expectedSamples > maxSamplesPerRequest {
		step = span / (expectedSamples/maxSamplesPerRequest + 1)
	} else {
		step = span
	}

	c := &Cursor{
		req:     req,
		fetch:   fetch,
		step:    step,
		curFrom: req.FromEpoch,
		curTo:   req.FromEpoch + step,
	}
	c.planned = c.nextWindow()
	return c, nil
}

// Plan returns the window the next Next call will execute, or nil once the
// range is exhausted. It never issues a request.
func (c *Cursor) Plan() *Window {
	return c.planned
}

// Columns returns the output schema of every batch this cursor produces.
func (c *Cursor) Columns() []Column {
	return Columns()
}

// nextWindow builds the window at the current position and advances the
// position past it. Returns nil once curFrom has reached the end of the
// overall range, which is the only termination condition. Every emitted
// window therefore has From < To.
func (c *Cursor) nextWindow() *Window {
	if c.curFrom >= c.req.ToEpoch {
		return nil
	}

	to := c.curTo
	if to > c.req.ToEpoch {
		to = c.req.ToEpoch
	}
	w := &Window{
		Symbol:   c.req.Symbol,
		Interval: c.req.Interval,
		From:     c.curFrom,
		To:       to,
	}

	c.curFrom += c.step
	c.curTo += c.step
	return w
}

// Next executes the planned window and plans the following one. It returns
// io.EOF once the range is exhausted; pulls past that point have no side
// effect. An empty batch is a valid result for a window (a market holiday
// range, for example) and does not terminate iteration.
func (c *Cursor) Next(ctx context.Context) ([]Row, error) {
	if c.planned == nil {
		return nil, io.EOF
	}

	rows, err := c.fetch.FetchWindow(ctx, *c.planned)
	if err != nil {
		return nil, err
	}

	c.planned = c.nextWindow()
	return rows, nil
}
