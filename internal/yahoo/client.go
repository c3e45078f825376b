package yahoo

import (
	"context"
	"net/url"
	"strconv"

	"github.com/gocarina/gocsv"
	"resty.dev/v3"

	"historyfetcher/internal/fetcher"
	"historyfetcher/internal/ratelimit"
)

// HistoryClient downloads one window of price history as CSV and decodes it
// into rows. It is the only component that talks to the provider.
type HistoryClient struct {
	client  *resty.Client
	limiter *ratelimit.Limiter
}

// NewHistoryClient creates a history client for the given download endpoint,
// e.g. https://query1.finance.yahoo.com/v7/finance/download
func NewHistoryClient(baseURL string) *HistoryClient {
	return &HistoryClient{
		client:  fetcher.NewHTTPClient(baseURL),
		limiter: ratelimit.GetLimiter(),
	}
}

// FetchWindow implements the WindowFetcher interface. The response carries a
// header row and encodes missing values as the literal string "null"; both
// are handled by the Row field types.
func (c *HistoryClient) FetchWindow(ctx context.Context, w Window) ([]Row, error) {
	if err := c.limiter.Wait(ctx, ratelimit.APIYahoo); err != nil {
		return nil, err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"period1":  strconv.FormatInt(w.From, 10),
			"period2":  strconv.FormatInt(w.To, 10),
			"interval": w.Interval,
			"events":   "history",
		}).
		Get("/" + url.PathEscape(w.Symbol))

	if err != nil {
		return nil, fetcher.NewNetworkError(err)
	}

	if !resp.IsSuccess() {
		return nil, fetcher.ClassifyHTTPError(resp.StatusCode())
	}

	var rows []Row
	if err := gocsv.UnmarshalString(resp.String(), &rows); err != nil {
		return nil, fetcher.NewParseError(err)
	}

	return rows, nil
}
