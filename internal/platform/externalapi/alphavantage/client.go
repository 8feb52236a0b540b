package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"

	"stock_pipeline/internal/feature/prices/domain"
	"stock_pipeline/internal/feature/prices/domain/entity"
	"stock_pipeline/internal/feature/prices/usecase"
	"stock_pipeline/internal/platform/externalapi/alphavantage/dto"
)

const seriesKey = "Time Series (Daily)"

// Client is the MarketRepository implementation backed by the Alpha Vantage
// TIME_SERIES_DAILY endpoint.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements MarketRepository.
var _ usecase.MarketRepository = (*Client)(nil)

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchDailySeries issues a single GET for the daily time series of symbol
// and returns the raw date-to-quote mapping. It never retries or caches.
//
// Alpha Vantage reports logical errors inside a 200-status body, so the
// payload is inspected for an error marker before the series key is trusted;
// the status code alone is not sufficient.
func (c *Client) FetchDailySeries(ctx context.Context, symbol string) (entity.RawTimeSeries, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: alpha vantage API key is empty", domain.ErrConfiguration)
	}

	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	q.Set("apikey", c.cfg.APIKey)

	u := fmt.Sprintf("%s?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: alphavantage http %d", domain.ErrNetwork, res.StatusCode)
	}

	var body dto.TimeSeriesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	if body.ErrorMessage != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrRemoteAPI, body.ErrorMessage)
	}
	if body.Series == nil {
		// Rate-limit notes and other unexpected shapes land here.
		return nil, fmt.Errorf("%w: response missing %q", domain.ErrRemoteAPI, seriesKey)
	}

	series := make(entity.RawTimeSeries, len(body.Series))
	for date, v := range body.Series {
		series[date] = entity.RawQuote{
			Open:   v.Open,
			High:   v.High,
			Low:    v.Low,
			Close:  v.Close,
			Volume: v.Volume,
		}
	}
	return series, nil
}

// isTimeout reports whether err is a deadline-style transport failure, either
// the client timeout firing or the request context expiring.
func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
