package playmovies

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCallConsumed is returned when Do is invoked on a call that already ran.
var ErrCallConsumed = errors.New("playmovies: call already executed")

// ErrRepeatedPageToken is returned by Pages when the server answers a page
// request with the token it was given.
var ErrRepeatedPageToken = errors.New("playmovies: server repeated page token")

// FieldClashError is returned when an additional parameter set with Param
// collides with a parameter owned by the call.
type FieldClashError struct {
	Field string
}

func (e *FieldClashError) Error() string {
	return fmt.Sprintf("playmovies: parameter %q clashes with a parameter owned by the call", e.Field)
}

// MissingTokenError is returned when the token provider failed and the
// delegate supplied no replacement.
type MissingTokenError struct {
	Err error
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("playmovies: missing token: %v", e.Err)
}

func (e *MissingTokenError) Unwrap() error {
	return e.Err
}

// HTTPError wraps a transport-level failure that was not retried.
type HTTPError struct {
	Err error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("playmovies: http request failed: %v", e.Err)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// BadRequestError is returned for a non-2xx response whose body carried the
// structured error payload, a JSON object with a non-null "error" member.
// Any other body, including valid JSON such as {}, yields a FailureError.
type BadRequestError struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	APIError   *APIError
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("playmovies: bad request: status %d: %s", e.StatusCode, e.APIError.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *BadRequestError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *BadRequestError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// FailureError is returned for a non-2xx response whose body was not the
// structured error payload.
type FailureError struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("playmovies: request failed: status %d: %s", e.StatusCode, string(e.Body))
}

// IsNotFound checks if the error indicates a not found response
func (e *FailureError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *FailureError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// JSONDecodeError is returned when a 2xx response body could not be decoded.
// Body holds the raw response text.
type JSONDecodeError struct {
	Body string
	Err  error
}

func (e *JSONDecodeError) Error() string {
	return fmt.Sprintf("playmovies: failed to decode response: %v", e.Err)
}

func (e *JSONDecodeError) Unwrap() error {
	return e.Err
}
