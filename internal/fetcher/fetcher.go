package fetcher

import "context"

// Fetcher is the core interface implemented by history scans. Each fetcher
// drives one symbol's paginated scan to completion and reports how many rows
// the provider returned.
type Fetcher interface {
	// Fetch runs the scan to exhaustion and returns the total row count.
	// Returns an error if any window of the scan fails; the scan is not
	// resumed after a failure.
	Fetch(ctx context.Context) (int, error)

	// Key returns a hierarchical key identifying this scan.
	// Format: history:{symbol}:{interval}
	// Examples:
	//   - history:AAPL:1d
	//   - history:MSFT:1wk
	Key() string
}
