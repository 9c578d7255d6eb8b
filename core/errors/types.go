// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ErrCacheMiss is returned by ResultCache.Get when no live entry exists
// for a key. A miss is a normal condition, not a failure.
var ErrCacheMiss = errors.New("cache: key not found")

// SourceTimeoutError indicates a source did not answer within its deadline.
type SourceTimeoutError struct {
	Store string
}

// Error implements the error interface
func (e *SourceTimeoutError) Error() string {
	return fmt.Sprintf("%s: timeout", e.Store)
}

// SourceError represents any non-timeout failure inside a source.
type SourceError struct {
	Store string
	Err   error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Store, e.Err)
}

// Unwrap exposes the underlying failure for errors.Is/As chains.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsSourceTimeout checks if an error is a SourceTimeoutError
func IsSourceTimeout(err error) bool {
	var timeoutErr *SourceTimeoutError
	return errors.As(err, &timeoutErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
