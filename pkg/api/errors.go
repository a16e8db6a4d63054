package api

import (
	"errors"
	"fmt"
)

// ErrAuthenticationRequired is returned when an operation is attempted
// without a configured API key. No request is sent in that case.
var ErrAuthenticationRequired = errors.New("no API key configured")

// ValidationError reports a client-side precondition failure detected
// before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// APIError reports a failure explicitly returned by the remote service,
// either via a status:"error" envelope or a non-2xx response carrying a
// message field. The remote message is passed through verbatim when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// RequestError reports a transport-level failure: DNS, connection refused,
// timeout, or an unreadable response. The underlying transport error is
// wrapped and available via errors.Unwrap.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
