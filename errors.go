package tessera

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for the type layer.
var (
	// ErrUnsupportedType is returned when a dialect has no entry for the
	// requested abstract column type.
	ErrUnsupportedType = errors.New("tessera: unsupported column type")
)

// ValidationError represents an invalid column-type construction,
// such as an enum declared without values.
type ValidationError struct {
	Type string // Abstract type key (e.g. "ENUM")
	Err  error  // Underlying validation error
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("tessera: invalid %s type: %s", e.Type, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a new ValidationError for the given type key.
func NewValidationError(typ string, err error) *ValidationError {
	return &ValidationError{Type: typ, Err: err}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

// ParseError represents a failure converting a raw driver value into its
// native representation (e.g. malformed JSON text in a JSON column).
type ParseError struct {
	Type string // Abstract type key (e.g. "JSON")
	Err  error  // Underlying parse error
}

// Error returns the error string.
func (e *ParseError) Error() string {
	return fmt.Sprintf("tessera: parsing %s value: %s", e.Type, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError returns a new ParseError for the given type key.
func NewParseError(typ string, err error) *ParseError {
	return &ParseError{Type: typ, Err: err}
}

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	var e *ParseError
	return errors.As(err, &e)
}

// UnsupportedTypeError represents a request for an abstract type the
// dialect cannot represent at all.
type UnsupportedTypeError struct {
	Type string // Abstract type key
}

// Error returns the error string.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("tessera: unsupported column type %q", e.Type)
}

// Is reports whether the target error matches UnsupportedTypeError.
// This allows errors.Is(err, ErrUnsupportedType) to return true.
func (e *UnsupportedTypeError) Is(err error) bool {
	return err == ErrUnsupportedType
}

// NewUnsupportedTypeError returns a new UnsupportedTypeError for the given type key.
func NewUnsupportedTypeError(typ string) *UnsupportedTypeError {
	return &UnsupportedTypeError{Type: typ}
}

// IsUnsupportedType returns true if the error is an UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedTypeError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedType)
}
