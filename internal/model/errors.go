package model

import "fmt"

// MissingFieldError reports a required party field that has no value and no
// usable fallback. The formatter fails with it instead of emitting malformed
// XML.
type MissingFieldError struct {
	Field   string
	Message string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s: %s", e.Field, e.Message)
}

// NewMissingFieldError creates a new missing field error
func NewMissingFieldError(field, message string) *MissingFieldError {
	return &MissingFieldError{
		Field:   field,
		Message: message,
	}
}

// FormatError wraps a failure while building a schema fragment
type FormatError struct {
	Element string
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s (%v)", e.Element, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Element, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

// NewFormatError creates a new format error
func NewFormatError(element, message string, cause error) *FormatError {
	return &FormatError{
		Element: element,
		Message: message,
		Cause:   cause,
	}
}
