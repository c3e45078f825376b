package testutil

import (
	"context"
	"sync"

	"historyfetcher/internal/fetcher"
	"historyfetcher/internal/yahoo"
)

// MockWindowFetcher is a mock implementation of the yahoo.WindowFetcher
// interface for testing. It records every window it is asked for.
type MockWindowFetcher struct {
	FetchWindowFunc func(ctx context.Context, w yahoo.Window) ([]yahoo.Row, error)

	mu      sync.Mutex
	windows []yahoo.Window
}

// FetchWindow implements the yahoo.WindowFetcher interface
func (m *MockWindowFetcher) FetchWindow(ctx context.Context, w yahoo.Window) ([]yahoo.Row, error) {
	m.mu.Lock()
	m.windows = append(m.windows, w)
	m.mu.Unlock()

	if m.FetchWindowFunc != nil {
		return m.FetchWindowFunc(ctx, w)
	}
	return nil, nil
}

// Windows returns the windows fetched so far, in request order.
func (m *MockWindowFetcher) Windows() []yahoo.Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]yahoo.Window(nil), m.windows...)
}

// NewMockWindowFetcher creates a mock that returns the same rows for every
// window.
func NewMockWindowFetcher(rows []yahoo.Row, err error) *MockWindowFetcher {
	return &MockWindowFetcher{
		FetchWindowFunc: func(ctx context.Context, w yahoo.Window) ([]yahoo.Row, error) {
			return rows, err
		},
	}
}

// MockFetcher is a mock implementation of the Fetcher interface for testing
type MockFetcher struct {
	FetchFunc func(ctx context.Context) (int, error)
	KeyFunc   func() string
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context) (int, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return 0, nil
}

// Key implements the Fetcher interface
func (m *MockFetcher) Key() string {
	if m.KeyFunc != nil {
		return m.KeyFunc()
	}
	return "mock:key"
}

// NewMockFetcher creates a simple mock fetcher with predefined values
func NewMockFetcher(key string, rows int, err error) fetcher.Fetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context) (int, error) {
			return rows, err
		},
		KeyFunc: func() string {
			return key
		},
	}
}
