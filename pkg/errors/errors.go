package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Platform-level sentinels shared by every repository.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrTransfer     = errors.New("transfer failed")
)

// HTTPError carries an HTTP status code alongside a message. The fake
// platform handlers return it, and the client maps non-2xx responses
// through FromStatus below.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}

// FromStatus maps a platform response status to a domain error.
// Known statuses become sentinels so callers can use errors.Is; anything
// else is surfaced as an HTTPError with the raw body message.
func FromStatus(code int, message string) error {
	switch code {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	default:
		return NewHTTPError(code, message)
	}
}
