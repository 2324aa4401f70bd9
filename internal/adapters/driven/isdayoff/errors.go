package isdayoff

import (
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

// APIError is returned when the oracle answers with a non-200 status.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("isdayoff: API error %d (URL: %s)", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("isdayoff: API error %d: %s (URL: %s)", e.StatusCode, e.Body, e.URL)
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// Unwrap reports the domain errors this response maps to.
func (e *APIError) Unwrap() []error {
	if e.StatusCode == http.StatusTooManyRequests {
		return []error{domain.ErrOracleRejected, domain.ErrRateLimited}
	}
	return []error{domain.ErrOracleRejected}
}

// BackoffError is returned without contacting the oracle while a
// back-off window announced by a 429 response is still open.
type BackoffError struct {
	RetryAt time.Time
}

func (e *BackoffError) Error() string {
	return fmt.Sprintf("isdayoff: rate limited until %s", e.RetryAt.Format(time.RFC3339))
}

// Unwrap reports the domain errors this refusal maps to.
func (e *BackoffError) Unwrap() []error {
	return []error{domain.ErrOracleRejected, domain.ErrRateLimited}
}
