// Package domain defines domain-level errors for the prices feature.
package domain

import "errors"

// Pipeline errors. Each run stage wraps its failure with one of these
// sentinels so the caller can classify with errors.Is while the underlying
// cause stays in the message.
var (
	// ErrConfiguration indicates a required setting is missing.
	// Fatal for the run; no retry will help.
	ErrConfiguration = errors.New("missing required configuration")

	// ErrTimeout indicates the market-data request exceeded its deadline.
	// Transient; the orchestrator may retry.
	ErrTimeout = errors.New("market data request timed out")

	// ErrNetwork indicates a transport-level failure talking to the
	// market-data API, including non-2xx HTTP statuses.
	ErrNetwork = errors.New("market data request failed")

	// ErrRemoteAPI indicates the API reported a logical error inside the
	// response body, or the body lacked the expected time-series key.
	ErrRemoteAPI = errors.New("market data API error")

	// ErrParse indicates the response body was not valid JSON.
	ErrParse = errors.New("malformed market data response")

	// ErrStorage indicates a database connectivity or transaction failure.
	// The transaction is rolled back before this is returned.
	ErrStorage = errors.New("price storage failed")
)
