package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested resource does not exist upstream.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated indicates no session token was presented.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidRequest indicates a request that is malformed before any
	// upstream call is attempted, such as a payment redirect missing its
	// order ID or provider discriminator.
	ErrInvalidRequest = errors.New("invalid request")
)

// ValidationError reports input rejected client-side. When a
// ValidationError is returned, no request has been sent to the commerce
// backend.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// ProviderDeclinedError reports a payment provider answering a
// verification call with an unsuccessful result. The provider's message is
// carried through when it supplies one.
type ProviderDeclinedError struct {
	Provider string
	Message  string
}

// NewProviderDeclined creates a declined-payment error.
func NewProviderDeclined(provider, message string) *ProviderDeclinedError {
	if message == "" {
		message = "payment was not confirmed"
	}
	return &ProviderDeclinedError{Provider: provider, Message: message}
}

func (e *ProviderDeclinedError) Error() string {
	return fmt.Sprintf("%s declined payment: %s", e.Provider, e.Message)
}
