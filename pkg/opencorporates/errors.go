package opencorporates

import (
	"errors"
	"fmt"
)

// ErrTokenNotConfigured is returned on every lookup attempted without a
// server-held API token. The text is part of the outward contract and is
// surfaced to callers verbatim.
var ErrTokenNotConfigured = errors.New("API token not configured. Set OPENCORPORATES_API_TOKEN.")

// APIError is a structured error returned when the registry responds
// with a non-2xx status code. Body holds the upstream response body,
// parsed when possible, raw otherwise, so callers can use errors.As to
// forward both the status and the body.
type APIError struct {
	StatusCode int
	HTTPStatus string
	Body       interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("opencorporates API error (HTTP %d - %s)", e.StatusCode, e.HTTPStatus)
}

// ConnectionError wraps a transport-level failure (DNS, connect, TLS,
// interrupted body read).
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to reach OpenCorporates: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ParseError wraps a malformed JSON body on an otherwise successful
// response.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse OpenCorporates response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
