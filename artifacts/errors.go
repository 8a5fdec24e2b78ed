package artifacts

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid artifacts client configuration")
	// ErrNoMorePages is returned by Page.NextPage on the last page
	ErrNoMorePages = errors.New("no more pages available")

	errMissingData  = errors.New("response has no data")
	errMissingError = errors.New("response has no error field")
)

// ErrorCode is the numeric code carried in an error envelope
type ErrorCode int

// Server error codes with a stable meaning
const (
	CodeNotFound             ErrorCode = 404
	CodeInvalidPayload       ErrorCode = 422
	CodeInvalidToken         ErrorCode = 452
	CodeMissingItem          ErrorCode = 478
	CodeActionInProgress     ErrorCode = 486
	CodeAlreadyAtDestination ErrorCode = 490
	CodeInsufficientGold     ErrorCode = 492
	CodeInventoryFull        ErrorCode = 497
	CodeCharacterNotFound    ErrorCode = 498
	CodeCooldown             ErrorCode = 499
	CodeContentNotOnMap      ErrorCode = 598
)

// APIError is an application error reported by the server in an error envelope
type APIError struct {
	StatusCode int
	Code       ErrorCode
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("artifacts API error: code %d: %s", e.Code, e.Message)
}

// Is matches another *APIError carrying the same server code, so callers can
// write errors.Is(err, &APIError{Code: CodeCooldown})
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code != 0 && t.Code == e.Code
}

// IsNotFound checks if the error indicates a missing resource
func (e *APIError) IsNotFound() bool {
	return e.Code == CodeNotFound || e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.Code == CodeInvalidToken || e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsCooldown checks if the character is still in cooldown
func (e *APIError) IsCooldown() bool {
	return e.Code == CodeCooldown
}

// DecodeError indicates the server answered with an unexpected response shape
type DecodeError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed artifacts response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError indicates the HTTP exchange itself failed, including a
// request body that could not be encoded
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("artifacts request %s %s failed: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
