package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying why an external provider call failed.
var (
	// ErrTransport indicates the provider could not be reached
	// (DNS, connection refused, timeout, canceled context).
	ErrTransport = errors.New("provider unreachable")

	// ErrMalformedResponse indicates the provider payload lacked the expected structure.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrProviderStatus indicates the provider answered with a non-success status.
	ErrProviderStatus = errors.New("provider returned non-success status")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ProviderError is returned by every provider adapter on failure.
// Kind is one of ErrTransport, ErrMalformedResponse or ErrProviderStatus.
type ProviderError struct {
	Provider string
	Kind     error
	Err      error
}

// NewProviderError wraps err as a failure of the named provider.
func NewProviderError(provider string, kind, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: kind, Err: err}
}

// Error returns "<provider>: <kind>: <cause>".
func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Provider, e.Kind, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause to errors.Is/As.
func (e *ProviderError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ValidationError represents a validation error with detailed field information.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap ties every ValidationError to ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
