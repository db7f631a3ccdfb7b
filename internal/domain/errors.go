package domain

import (
	"errors"
	"fmt"
)

// ErrSpecUnavailable signals that the OpenAPI specification document could
// not be loaded at startup. Discovery degrades to a static capability list;
// nothing else is affected.
var ErrSpecUnavailable = errors.New("OpenAPI specification not available")

// InvalidArgumentError reports malformed or out-of-range caller input.
// It is always surfaced to the caller and never retried.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string { return e.Reason }

// NewInvalidArgument builds an InvalidArgumentError from a format string.
func NewInvalidArgument(format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown key (path, method, category, team type,
// tool name) together with the valid alternatives so the caller can correct
// the request. AltLabel names the alternatives field in structured results,
// e.g. "available_endpoints".
type NotFoundError struct {
	Message      string
	AltLabel     string
	Alternatives []string
}

func (e *NotFoundError) Error() string { return e.Message }

// UpstreamError reports a failed call to the LinearB API: either a non-2xx
// response (StatusCode and Body set) or a transport failure (Err set).
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
