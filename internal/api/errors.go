package api

import (
	"errors"
	"fmt"
)

// ErrTransport marks failures where no HTTP response was obtained.
var ErrTransport = errors.New("transport failure")

// Messages substituted when the backend does not explain a failure.
const (
	UnknownErrorMessage = "Unknown error"
)

// Error is the single error value the client returns for any failed call.
// Message is always human-readable and safe to show to a user.
type Error struct {
	// Op is the client operation that failed (login, upload, analysis).
	Op string
	// StatusCode is the HTTP status, or 0 for transport failures.
	StatusCode int
	// Message is the user-facing description.
	Message string
	// Structured is true when Message came verbatim from a backend {"error": ...} body.
	Structured bool
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Transport reports whether the call failed before any HTTP response arrived.
func (e *Error) Transport() bool {
	return e != nil && errors.Is(e.Err, ErrTransport)
}

func transportError(op string, cause error) *Error {
	return &Error{
		Op:      op,
		Message: fmt.Sprintf("%s request failed: %v", op, cause),
		Err:     fmt.Errorf("%w: %w", ErrTransport, cause),
	}
}

func httpStatusMessage(status int) string {
	return fmt.Sprintf("HTTP error! status: %d", status)
}

// StructuredMessage returns the backend-supplied message carried by err, if any.
func StructuredMessage(err error) (string, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Structured && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
