package echo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBaseURL is returned when the catalog base URL is unusable.
	ErrInvalidBaseURL = errors.New("echo: invalid base URL")
	// ErrNilHTTPClient indicates a nil HTTP client was provided.
	ErrNilHTTPClient = errors.New("echo: http client cannot be nil")
)

// APIError represents a non-success response from the catalog.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Body == "" {
		return fmt.Sprintf("echo: api error status=%d", e.Status)
	}
	return fmt.Sprintf("echo: api error status=%d: %s", e.Status, e.Body)
}

// Temporary reports whether the error may be retried.
func (e *APIError) Temporary() bool {
	if e == nil {
		return false
	}
	return e.Status >= 500 && e.Status < 600
}
