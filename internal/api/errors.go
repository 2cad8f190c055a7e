package api

import (
	"errors"
	"fmt"
)

// Error is a transport-level failure: the request was rejected outright with a
// non-2xx status. Message carries the envelope's errorMessage when the error
// body was decodable, and is empty otherwise.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// api.Error (network failures, decode failures).
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// ErrorMessage returns the backend-supplied message carried by err, or
// fallback when none is available.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
