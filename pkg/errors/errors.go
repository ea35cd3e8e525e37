package errors

import (
	"fmt"
)

// ParseError represents a theme file parsing failure with optional line metadata.
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

// ValidationError captures theme file validation issues.
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

// WatchError represents a failure while watching a theme file for changes.
type WatchError struct {
	Path    string
	Message string
	Err     error
}

// NewWatchError constructs a WatchError for the given path.
func NewWatchError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &WatchError{Path: path, Message: message, Err: err}
}

func (e *WatchError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("watch error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("watch error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *WatchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
