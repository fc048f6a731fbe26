package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials indicates the backend rejected a login or
	// registration attempt.
	ErrInvalidCredentials = errors.New("apiclient: invalid credentials")

	// ErrUnauthorized indicates the request's token was missing, expired
	// or lacked the required role.
	ErrUnauthorized = errors.New("apiclient: unauthorized")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("apiclient: not found")

	// ErrUnavailable indicates the backend could not be reached or
	// answered with a server error.
	ErrUnavailable = errors.New("apiclient: backend unavailable")

	// ErrInvalidResponse indicates the backend answered 2xx with a body
	// missing required fields (for example a login response without an
	// access token).
	ErrInvalidResponse = errors.New("apiclient: invalid response")
)

// APIError is the error envelope the backend returns for failed requests.
type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Err        string `json:"error,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("apiclient: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("apiclient: request failed with status %d", e.StatusCode)
}
