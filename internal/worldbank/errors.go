package worldbank

import "fmt"

// InvalidRequestError indicates the provider rejected the request as
// malformed (unknown country or indicator code, bad parameters). It is not
// retryable and never triggers the stale-cache fallback.
type InvalidRequestError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *InvalidRequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("world bank rejected request (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("world bank rejected request: %s", e.Message)
}

// UnavailableError indicates the provider was unreachable or kept failing
// after the configured retries. Callers may fall back to a stale cache entry.
type UnavailableError struct {
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *UnavailableError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("world bank unavailable (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("world bank unavailable: %s", e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
