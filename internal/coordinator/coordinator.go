package coordinator

import (
	"context"
	"fmt"
	"sync"

	"historyfetcher/internal/fetcher"
)

// Coordinator manages concurrent scans and aggregates results
type Coordinator struct {
	fetchers []fetcher.Fetcher
}

// New creates a new Coordinator with the given fetchers
func New(fetchers []fetcher.Fetcher) *Coordinator {
	return &Coordinator{
		fetchers: fetchers,
	}
}

// Run executes all scans concurrently and prints results to stdout.
// Each scan runs in its own goroutine and sends its result to a shared
// channel. Results are printed as they arrive in the format:
//   - Success: "KEY: N rows"
//   - Error: "KEY: ERROR - error message"
func (c *Coordinator) Run(ctx context.Context) error {
	if len(c.fetchers) == 0 {
		return fmt.Errorf("no fetchers configured")
	}

	// Create a channel for collecting results
	resultChan := make(chan fetcher.Result, len(c.fetchers))

	// WaitGroup to track all worker goroutines
	var wg sync.WaitGroup

	// Launch a goroutine for each scan
	for _, f := range c.fetchers {
		wg.Add(1)
		go func(ft fetcher.Fetcher) {
			defer wg.Done()

			// Drive the scan to completion
			rows, err := ft.Fetch(ctx)

			// Send result to the channel
			resultChan <- fetcher.Result{
				Key:   ft.Key(),
				Rows:  rows,
				Error: err,
			}
		}(f)
	}

	// Close the result channel when all workers are done
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect and print results as they arrive
	for result := range resultChan {
		if result.Error != nil {
			fmt.Printf("%s: ERROR - %v\n", result.Key, result.Error)
		} else {
			fmt.Printf("%s: %d rows\n", result.Key, result.Rows)
		}
	}

	return nil
}
