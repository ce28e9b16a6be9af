package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a non-2xx response from the server. Message holds the "error"
// field of the JSON body, or the raw body when it is not JSON.
type APIError struct {
	StatusCode int
	Message    string

	kind error
}

func (e *APIError) Error() string {
	if e.kind == nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

// Unwrap exposes the status sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	return e.kind
}
