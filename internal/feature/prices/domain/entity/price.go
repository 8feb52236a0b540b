// Package entity defines the domain models for the prices feature.
package entity

import "time"

// DailyPrice represents one day of OHLCV (Open, High, Low, Close, Volume)
// price data for a single stock symbol.
type DailyPrice struct {
	Symbol    string    // Stock ticker symbol (e.g., "MSFT")
	TradeDate time.Time // Calendar date of the trading session
	Open      float64   // Opening price
	High      float64   // Highest price of the session
	Low       float64   // Lowest price of the session
	Close     float64   // Closing price
	Volume    int64     // Trading volume
}

// RawQuote holds one day of string-encoded price fields exactly as the
// market-data API returns them. Coercion into DailyPrice happens in the
// normalizer, which is where malformed values are dealt with.
type RawQuote struct {
	Open   string
	High   string
	Low    string
	Close  string
	Volume string
}

// RawTimeSeries maps a "YYYY-MM-DD" date string to its raw quote.
type RawTimeSeries map[string]RawQuote
