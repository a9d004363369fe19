// Package errors defines custom error types for better error handling and debugging.
// StreamError provides context-aware error reporting with type classification.
package errors

import (
	stderrors "errors"
	"fmt"
)

// StreamError represents errors that occur while answering a stream request
type StreamError struct {
	Type    string
	Message string
	Cause   error
}

func (e *StreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *StreamError) Unwrap() error {
	return e.Cause
}

// Is matches another StreamError of the same Type, so sentinel values work with errors.Is.
func (e *StreamError) Is(target error) bool {
	t, ok := target.(*StreamError)
	if !ok {
		return false
	}
	return t.Type == e.Type && (t.Message == "" || t.Message == e.Message)
}

// Error type constants
const (
	ErrorTypeConfigurationInvalid = "CONFIGURATION_INVALID"
	ErrorTypeMetadataNotFound     = "METADATA_NOT_FOUND"
	ErrorTypeMetadataFailure      = "METADATA_FAILURE"
	ErrorTypeIndexerFailure       = "INDEXER_FAILURE"
	ErrorTypeTimeout              = "TIMEOUT"
	ErrorTypeInvalidID            = "INVALID_ID"
)

// ErrNotFound matches any METADATA_NOT_FOUND error via errors.Is.
var ErrNotFound = &StreamError{Type: ErrorTypeMetadataNotFound}

// NewStreamError creates a new StreamError
func NewStreamError(errorType, message string, cause error) *StreamError {
	return &StreamError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigurationError creates a configuration-related error
func NewConfigurationError(message string, cause error) *StreamError {
	return NewStreamError(ErrorTypeConfigurationInvalid, message, cause)
}

// NewNotFoundError reports that the catalog has no movie or series for id
func NewNotFoundError(id string) *StreamError {
	return NewStreamError(ErrorTypeMetadataNotFound, fmt.Sprintf("no results found for %s", id), nil)
}

// NewMetadataError creates a catalog lookup error
func NewMetadataError(message string, cause error) *StreamError {
	return NewStreamError(ErrorTypeMetadataFailure, message, cause)
}

// NewIndexerError creates an indexer search error
func NewIndexerError(message string, cause error) *StreamError {
	return NewStreamError(ErrorTypeIndexerFailure, message, cause)
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(operation string, cause error) *StreamError {
	return NewStreamError(ErrorTypeTimeout, fmt.Sprintf("operation timeout: %s", operation), cause)
}

// NewInvalidIDError creates an invalid ID error
func NewInvalidIDError(id string) *StreamError {
	return NewStreamError(ErrorTypeInvalidID, fmt.Sprintf("invalid ID format: %s", id), nil)
}

// IsType reports whether err wraps a StreamError of the given type.
func IsType(err error, errorType string) bool {
	var se *StreamError
	if stderrors.As(err, &se) {
		return se.Type == errorType
	}
	return false
}
