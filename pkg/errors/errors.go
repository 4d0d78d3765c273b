package errors

import (
	"fmt"
)

// SyntaxError reports a malformed or misordered sigil prefix.
type SyntaxError struct {
	Pos     int
	Message string
}

// NewSyntaxError constructs a SyntaxError at the given byte offset.
func NewSyntaxError(pos int, message string) error {
	return &SyntaxError{Pos: pos, Message: message}
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Message)
}

// UnsupportedModeError reports a request for an output mode that is not
// available, such as const-format without a registered formatter.
type UnsupportedModeError struct {
	Mode string
}

// NewUnsupportedModeError constructs an UnsupportedModeError.
func NewUnsupportedModeError(mode string) error {
	return &UnsupportedModeError{Mode: mode}
}

func (e *UnsupportedModeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unsupported output mode: %s", e.Mode)
}

// RangeError reports a color parameter outside its allowed range.
type RangeError struct {
	Param string
	Value int
	Max   int
}

// NewRangeError constructs a RangeError for the named parameter.
func NewRangeError(param string, value, max int) error {
	return &RangeError{Param: param, Value: value, Max: max}
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("range error: %s is %d, must be 0-%d", e.Param, e.Value, e.Max)
}

// ContentTypeError reports content that does not fit the requested output
// mode, such as substitution arguments supplied to a literal invocation.
type ContentTypeError struct {
	Message string
}

// NewContentTypeError constructs a ContentTypeError.
func NewContentTypeError(message string) error {
	return &ContentTypeError{Message: message}
}

func (e *ContentTypeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("content type error: %s", e.Message)
}

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures theme validation issues.
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
