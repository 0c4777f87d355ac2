package dsv

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-dsv/internal/codec"
)

// Decoding errors. Match them with errors.Is; they arrive wrapped in a
// *ParseError.
var (
	// ErrDanglingEscapedValue indicates a closing escape character that is not
	// immediately followed by the separator or the end of the line.
	ErrDanglingEscapedValue = codec.ErrDanglingEscapedValue

	// ErrUnterminatedEscape indicates a backslash at the end of a line.
	ErrUnterminatedEscape = codec.ErrUnterminatedEscape

	// ErrInvalidEscapeSequence indicates a backslash followed by a character
	// that has no mapping.
	ErrInvalidEscapeSequence = codec.ErrInvalidEscapeSequence

	// ErrUnclosedEscapedValue indicates a line ending inside an escaped value.
	// Escaped values cannot span lines.
	ErrUnclosedEscapedValue = codec.ErrUnclosedEscapedValue
)

// Conversion errors returned by the typed accessors of Value, wrapped in a
// *ConversionError.
var (
	ErrNotAnInteger = errors.New("not an integer")
	ErrNotANumber   = errors.New("not a number")
	ErrNotABoolean  = errors.New("not a boolean")
)

// ParseError represents a decoding error with position information.
type ParseError struct {
	// Line is the 1-based line of the document, counting skipped lines.
	// It is 0 when a single row was decoded with DecodeRow.
	Line int
	// Column is the 1-based byte column within the line.
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse error at column %d: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError attaches a line number to an error from the row scanner.
func newParseError(line int, err error) *ParseError {
	var se *codec.SyntaxError
	if errors.As(err, &se) {
		return &ParseError{Line: line, Column: se.Column, Err: se.Err}
	}
	return &ParseError{Line: line, Err: err}
}

// ConversionError is returned when a Value's text does not match the grammar
// of the requested type. The Value itself is unaffected.
type ConversionError struct {
	// Value is the text that failed to convert.
	Value string
	// Type names the requested type, e.g. "int64".
	Type string
	// Err is one of ErrNotAnInteger, ErrNotANumber or ErrNotABoolean.
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("dsv: cannot convert %q to %s: %v", e.Value, e.Type, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConversionError) Unwrap() error {
	return e.Err
}
