package fetcher

// Result represents the outcome of one symbol's scan.
// It's designed to be sent through channels from worker goroutines
// to a coordinator that reports the results.
type Result struct {
	// Key is the hierarchical key for this scan
	Key string

	// Rows is the total number of rows the scan produced
	Rows int

	// Error contains any error that occurred during the scan.
	// If Error is not nil, Rows counts only the batches fetched before the failure.
	Error error
}
