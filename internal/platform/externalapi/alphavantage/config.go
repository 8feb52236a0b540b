// Package alphavantage provides a client for the Alpha Vantage stock market API.
package alphavantage

import (
	"fmt"
	"time"

	"stock_pipeline/internal/feature/prices/domain"
	"stock_pipeline/internal/shared/env"
)

const (
	defaultBaseURL = "https://www.alphavantage.co/query"

	// requestTimeout bounds the whole HTTP exchange. The external scheduler
	// enforces the overall task timeout; this only keeps a single hung
	// request from eating the run.
	requestTimeout = 15 * time.Second
)

// Config holds configuration for the Alpha Vantage API client.
type Config struct {
	APIKey  string        // API key for authentication (required)
	BaseURL string        // Base URL for the API, overridable for tests
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Alpha Vantage configuration from environment variables.
// The API key is required; its absence fails the run before any network call.
func LoadConfig() (Config, error) {
	key, err := env.Require("ALPHAVANTAGE_API_KEY")
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	return Config{
		APIKey:  key,
		BaseURL: env.GetDefault("ALPHAVANTAGE_BASE_URL", defaultBaseURL),
		Timeout: requestTimeout,
	}, nil
}
