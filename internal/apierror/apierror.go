package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrAuthenticationFailed ErrorCode = "AUTHENTICATION_FAILED"
	ErrRemoteRequestFailed  ErrorCode = "REMOTE_REQUEST_FAILED"
	ErrRateLimited          ErrorCode = "RATE_LIMITED"
)

// APIError classifies a failed remote call by kind so callers can branch on
// the code instead of matching message text. Status and Body carry the raw
// HTTP evidence.
type APIError struct {
	Code   ErrorCode
	Status int
	Body   string
}

func (e APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Code, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Body)
}

func NewAPIError(code ErrorCode, status int, body string) APIError {
	return APIError{
		Code:   code,
		Status: status,
		Body:   body,
	}
}

// FromResponse classifies an HTTP response. Status codes below 400 produce no
// error; 429 maps to the rate-limit kind, everything else in the failure
// range to the generic remote-request kind.
func FromResponse(status int, body string) error {
	if status < http.StatusBadRequest {
		return nil
	}
	if status == http.StatusTooManyRequests {
		return NewAPIError(ErrRateLimited, status, body)
	}
	return NewAPIError(ErrRemoteRequestFailed, status, body)
}

// Is reports whether err is (or wraps) an APIError with the given code.
func Is(err error, code ErrorCode) bool {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}

// IsNotFound reports whether err represents an HTTP 404 response. Lookups use
// this to distinguish "absent" from a genuine failure.
func IsNotFound(err error) bool {
	var apiErr APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsRateLimited reports whether err represents an HTTP 429 response.
func IsRateLimited(err error) bool {
	return Is(err, ErrRateLimited)
}

// IsAuthenticationFailed reports whether err represents a rejected login or
// missing credentials.
func IsAuthenticationFailed(err error) bool {
	return Is(err, ErrAuthenticationFailed)
}
