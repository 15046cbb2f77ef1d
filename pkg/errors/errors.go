package errors

import (
	"fmt"
	"net/http"
)

// ParseError represents a configuration file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FetchError represents a failed request against the upstream API.
// StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Message    string
	Err        error
}

// NewFetchError constructs a FetchError for a transport or decode failure.
func NewFetchError(url string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &FetchError{URL: url, Message: message, Err: err}
}

// NewStatusError constructs a FetchError for a non-2xx response.
func NewStatusError(url string, status int) error {
	return &FetchError{URL: url, StatusCode: status, Message: http.StatusText(status)}
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error: %s: status %d %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch error: %s: %s", e.URL, e.Message)
}

// Unwrap exposes the underlying error.
func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Retryable reports whether repeating the request may succeed.
func (e *FetchError) Retryable() bool {
	if e == nil {
		return false
	}
	if e.StatusCode == 0 {
		return true
	}
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// NotFound reports whether the upstream answered 404.
func (e *FetchError) NotFound() bool {
	return e != nil && e.StatusCode == http.StatusNotFound
}
