package yahoo

import (
	"fmt"
	"time"

	"historyfetcher/internal/interval"
)

// Request holds the immutable inputs for one history scan. Construct it with
// NewRequest; a zero Request is not usable.
type Request struct {
	Symbol    string
	FromEpoch int64
	ToEpoch   int64
	Interval  string
}

// InvalidRangeError reports a from/to pair that cannot yield any samples.
type InvalidRangeError struct {
	From int64
	To   int64
}

// Error implements the error interface
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("the end period (%d) must be higher than the start period (%d)", e.To, e.From)
}

// NewRequest validates the scan inputs once, up front. Every later stage can
// assume the symbol is non-empty, the interval is supported and the range is
// non-degenerate.
func NewRequest(symbol string, from, to time.Time, intervalLabel string) (Request, error) {
	if symbol == "" {
		return Request{}, fmt.Errorf("symbol must not be empty")
	}
	if err := interval.Validate(intervalLabel); err != nil {
		return Request{}, err
	}

	fromEpoch := from.Unix()
	toEpoch := to.Unix()
	if toEpoch <= fromEpoch {
		return Request{}, &InvalidRangeError{From: fromEpoch, To: toEpoch}
	}

	return Request{
		Symbol:    symbol,
		FromEpoch: fromEpoch,
		ToEpoch:   toEpoch,
		Interval:  intervalLabel,
	}, nil
}
