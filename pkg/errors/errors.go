package errors

import (
	"fmt"
)

// ParseError represents a deck file decoding failure with optional line metadata.
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

// ValidationError captures card contract violations detected at construction time.
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

// AssetError reports an asset handle the resolver could not map to artwork.
// Callers render a placeholder in its place; it is never fatal.
type AssetError struct {
	Handle string
	Err    error
}

// NewAssetError constructs an AssetError for the given handle.
func NewAssetError(handle string, err error) error {
	return &AssetError{Handle: handle, Err: err}
}

func (e *AssetError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("asset error [%s]: %v", e.Handle, e.Err)
	}
	return fmt.Sprintf("asset error [%s]: unresolved", e.Handle)
}

// Unwrap exposes the underlying error.
func (e *AssetError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
