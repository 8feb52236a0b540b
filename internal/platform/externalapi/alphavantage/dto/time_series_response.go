// Package dto defines data transfer objects for the Alpha Vantage API responses.
package dto

// DailyQuote is one day of string-encoded OHLCV values. Alpha Vantage numbers
// its field names inside the daily time-series object.
type DailyQuote struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// TimeSeriesResponse represents the JSON response of the TIME_SERIES_DAILY
// function. Alpha Vantage reports logical failures as an "Error Message"
// field in a 200-status body, so ErrorMessage must be checked before Series
// is trusted. Series is nil when the expected key is absent (rate limiting
// responses carry only a "Note"/"Information" field).
type TimeSeriesResponse struct {
	ErrorMessage string                `json:"Error Message,omitempty"`
	Series       map[string]DailyQuote `json:"Time Series (Daily)"`
}
