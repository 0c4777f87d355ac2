// Package codec implements the byte-level row scanner and field encoder for
// delimiter-separated text.
//
// The public API lives in pkg/dsv; this package knows nothing about values or
// tables and works on plain strings so both the decoder and encoder can be
// tested in isolation.
package codec

// Backslash introduces a two-character escape sequence inside an escaped field.
const Backslash = '\\'

// Unescape maps the character following a backslash to the byte it stands for.
// The escape character maps to itself. ok is false when c has no mapping.
func Unescape(c, esc byte) (b byte, ok bool) {
	if c == esc {
		return esc, true
	}

	switch c {
	case 'v':
		return '\v', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case 'n':
		return '\n', true
	case 'f':
		return '\f', true
	case '\\':
		return '\\', true
	default:
		return 0, false
	}
}

// EscapeLetter is the inverse of Unescape: it returns the letter written after
// a backslash to represent c. ok is false when c is written verbatim.
func EscapeLetter(c, esc byte) (letter byte, ok bool) {
	if c == esc {
		return esc, true
	}

	switch c {
	case '\v':
		return 'v', true
	case '\t':
		return 't', true
	case '\r':
		return 'r', true
	case '\n':
		return 'n', true
	case '\f':
		return 'f', true
	case '\\':
		return '\\', true
	default:
		return 0, false
	}
}
