package foliosdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Stable error kinds surfaced by the API. Clients should match on these,
// not on messages.
const (
	ErrorKindValidation      = "validation_error"
	ErrorKindConflict        = "conflict"
	ErrorKindAuth            = "auth_error"
	ErrorKindUnauthenticated = "unauthenticated"
	ErrorKindMFARequired     = "mfa_required"
	ErrorKindNotFound        = "not_found"
	ErrorKindRateLimited     = "rate_limit_exceeded"
	ErrorKindServer          = "server_error"
)

// APIError is the structured error envelope every failing response carries.
// It implements the error interface and is used both by the server (to
// write HTTP responses) and by the client (to represent parsed failures).
type APIError struct {
	// StatusCode is the HTTP status for this error.
	StatusCode int `json:"-"`

	// Kind is the stable error kind (e.g. "validation_error").
	Kind string `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// Predefined errors for failures that carry no per-request detail.
var (
	// ErrInvalidCredentials is the single response for any failed login,
	// deliberately identical for unknown emails and wrong passwords.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Kind:       ErrorKindAuth,
		Message:    "invalid credentials",
	}

	// ErrMFARequired is returned when an MFA-enabled user logs in without
	// a TOTP code.
	ErrMFARequired = &APIError{
		StatusCode: http.StatusUnauthorized,
		Kind:       ErrorKindMFARequired,
		Message:    "a TOTP code is required to complete login",
	}

	// ErrUnauthenticated is returned for missing or invalid sessions.
	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Kind:       ErrorKindUnauthenticated,
		Message:    "not authenticated",
	}

	// ErrNotFound covers both genuinely missing resources and resources
	// owned by another user, so record ids cannot be enumerated.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Kind:       ErrorKindNotFound,
		Message:    "resource not found",
	}

	// ErrServerError is the catch-all for storage or unexpected failures.
	// Details are logged server-side, never returned.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Kind:       ErrorKindServer,
		Message:    "internal server error",
	}
)

// NewValidationError builds a 400 validation error with a specific message.
func NewValidationError(msg string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Kind:       ErrorKindValidation,
		Message:    msg,
	}
}

// NewConflictError builds a 409 conflict error with a specific message.
func NewConflictError(msg string) *APIError {
	return &APIError{
		StatusCode: http.StatusConflict,
		Kind:       ErrorKindConflict,
		Message:    msg,
	}
}

// parseError turns a non-2xx response body into an *APIError. Responses
// that don't carry the envelope still come back as APIError with the
// server kind so callers have one error type to handle.
func parseError(statusCode int, body []byte) *APIError {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Kind == "" {
		return &APIError{
			StatusCode: statusCode,
			Kind:       ErrorKindServer,
			Message:    fmt.Sprintf("unexpected response (status %d)", statusCode),
		}
	}
	apiErr.StatusCode = statusCode
	return &apiErr
}
