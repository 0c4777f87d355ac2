package dsv

import "strings"

// Default format characters.
const (
	DefaultSeparator   = ','
	DefaultComment     = '#'
	DefaultEscape      = '"'
	DefaultRowCapacity = 16
)

// Config holds the format characters for decoding and encoding.
// A zero field takes its default, so Config{Separator: ';'} is a complete
// semicolon-separated configuration.
type Config struct {
	// Separator divides fields within a line.
	// Default: ','
	Separator byte

	// Comment, at the start of a line, causes the line to be skipped when a
	// document is decoded.
	// Default: '#'
	Comment byte

	// Escape wraps a field so it may contain separators and control characters.
	// Default: '"'
	Escape byte

	// RowCapacity is the number of fields each decoded row reserves up front.
	// It has no effect on the result.
	// Default: 16
	RowCapacity int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Separator:   DefaultSeparator,
		Comment:     DefaultComment,
		Escape:      DefaultEscape,
		RowCapacity: DefaultRowCapacity,
	}
}

// withDefaults fills zero fields with their defaults.
func (c Config) withDefaults() Config {
	if c.Separator == 0 {
		c.Separator = DefaultSeparator
	}
	if c.Comment == 0 {
		c.Comment = DefaultComment
	}
	if c.Escape == 0 {
		c.Escape = DefaultEscape
	}
	if c.RowCapacity <= 0 {
		c.RowCapacity = DefaultRowCapacity
	}
	return c
}

// escapeLetters follow a backslash to name a control character, so an escape
// character among them could not be told apart from that sequence.
const escapeLetters = "vtrnf"

// reservedChar reports whether b can never serve as a format character.
func reservedChar(b byte) bool {
	return b == '\n' || b == '\\'
}

// Validate checks that the format characters can be told apart.
// Zero fields are validated as their defaults.
func (c Config) Validate() error {
	c = c.withDefaults()

	if reservedChar(c.Separator) {
		return &OptionsError{Field: "Separator", Message: "line feed and backslash are reserved"}
	}
	if reservedChar(c.Escape) {
		return &OptionsError{Field: "Escape", Message: "line feed and backslash are reserved"}
	}
	if strings.IndexByte(escapeLetters, c.Escape) >= 0 {
		return &OptionsError{Field: "Escape", Message: "escape character is a backslash sequence letter"}
	}
	if c.Escape == c.Separator {
		return &OptionsError{Field: "Escape", Message: "escape character same as separator"}
	}
	if c.Comment == '\n' {
		return &OptionsError{Field: "Comment", Message: "line feed is reserved"}
	}
	if c.Comment == c.Separator {
		return &OptionsError{Field: "Comment", Message: "comment character same as separator"}
	}
	if c.Comment == c.Escape {
		return &OptionsError{Field: "Comment", Message: "comment character same as escape character"}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "dsv: invalid " + e.Field + ": " + e.Message
}
