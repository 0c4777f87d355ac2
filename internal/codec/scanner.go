package codec

import (
	"errors"
	"fmt"
)

// Decoding errors. They are wrapped in a *SyntaxError carrying the column.
var (
	// ErrDanglingEscapedValue indicates a closing escape character that is
	// followed by something other than the separator or the end of the line.
	ErrDanglingEscapedValue = errors.New("no separator or end of line after escaped value")

	// ErrUnterminatedEscape indicates a backslash at the very end of the line.
	ErrUnterminatedEscape = errors.New("escape sequence not finished")

	// ErrInvalidEscapeSequence indicates a backslash followed by a character
	// without a mapping.
	ErrInvalidEscapeSequence = errors.New("invalid escape sequence")

	// ErrUnclosedEscapedValue indicates a line that ends inside an escaped value.
	ErrUnclosedEscapedValue = errors.New("escaped value not closed before end of line")
)

// SyntaxError reports where in a line decoding failed.
type SyntaxError struct {
	// Column is the 1-based byte column of the offending character.
	Column int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("column %d: %v", e.Column, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

type scanState uint8

const (
	stateBeginField scanState = iota
	statePlainField
	stateEscapedField
	stateEndField
)

// Scanner splits single lines into fields. The zero value is not usable; use
// NewScanner. A Scanner reuses its accumulator between lines and must not be
// shared between goroutines.
type Scanner struct {
	sep       byte
	esc       byte
	fieldHint int

	buf     []byte
	columns []int
}

// NewScanner returns a Scanner for the given separator and escape character.
// fieldHint is the initial capacity of the slice returned by Decode.
func NewScanner(sep, esc byte, fieldHint int) *Scanner {
	if fieldHint < 0 {
		fieldHint = 0
	}
	return &Scanner{
		sep:       sep,
		esc:       esc,
		fieldHint: fieldHint,
		buf:       make([]byte, 0, 64),
	}
}

// Decode splits line into fields. The line must not contain the trailing
// newline. An empty line yields a single empty field.
//
// On error no fields are returned.
func (s *Scanner) Decode(line string) ([]string, error) {
	fields := make([]string, 0, s.fieldHint)
	err := s.Scan(line, func(field string) {
		fields = append(fields, field)
	})
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// Scan is Decode without the intermediate slice: emit receives each field in
// order. On error the fields already emitted must be discarded.
func (s *Scanner) Scan(line string, emit func(field string)) error {
	s.columns = s.columns[:0]
	s.buf = s.buf[:0]

	state := stateBeginField
	i := 0
	start := 0

	for {
		switch state {
		case stateBeginField:
			start = i
			s.columns = append(s.columns, i+1)
			if i < len(line) && line[i] == s.esc {
				i++
				state = stateEscapedField
			} else {
				state = statePlainField
			}

		case statePlainField:
			j := i
			for j < len(line) && line[j] != s.sep {
				j++
			}
			s.buf = append(s.buf, line[i:j]...)
			i = j
			state = stateEndField

		case stateEscapedField:
			if i >= len(line) {
				return &SyntaxError{Column: start + 1, Err: ErrUnclosedEscapedValue}
			}

			c := line[i]
			switch {
			case c == s.esc:
				if i+1 < len(line) && line[i+1] != s.sep {
					return &SyntaxError{Column: i + 2, Err: ErrDanglingEscapedValue}
				}
				i++
				state = stateEndField

			case c == Backslash:
				if i+1 == len(line) {
					return &SyntaxError{Column: i + 1, Err: ErrUnterminatedEscape}
				}
				b, ok := Unescape(line[i+1], s.esc)
				if !ok {
					return &SyntaxError{
						Column: i + 1,
						Err:    fmt.Errorf("%w \\%c", ErrInvalidEscapeSequence, line[i+1]),
					}
				}
				s.buf = append(s.buf, b)
				i += 2

			default:
				s.buf = append(s.buf, c)
				i++
			}

		case stateEndField:
			emit(string(s.buf))
			s.buf = s.buf[:0]
			if i >= len(line) {
				return nil
			}
			// line[i] is the separator
			i++
			state = stateBeginField
		}
	}
}

// Columns returns the 1-based byte column at which each field of the most
// recently decoded line started. The slice is reused by the next Decode.
func (s *Scanner) Columns() []int {
	return s.columns
}
