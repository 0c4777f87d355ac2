package codec

// Encoder renders fields as one escaped line. It carries only the format
// characters and is safe to copy.
type Encoder struct {
	Sep     byte
	Esc     byte
	Comment byte
}

// NeedsEscape reports whether field must be wrapped in the escape character.
// first marks the first field of a row, which is also quoted when it starts
// with the comment character so the line is not dropped on decode.
func (e Encoder) NeedsEscape(field string, first bool) bool {
	if first && len(field) > 0 && field[0] == e.Comment {
		return true
	}
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c == e.Sep {
			return true
		}
		if _, ok := EscapeLetter(c, e.Esc); ok {
			return true
		}
	}
	return false
}

// AppendField appends the encoded form of field to dst.
func (e Encoder) AppendField(dst []byte, field string, first bool) []byte {
	if !e.NeedsEscape(field, first) {
		return append(dst, field...)
	}

	dst = append(dst, e.Esc)
	for i := 0; i < len(field); i++ {
		c := field[i]
		if letter, ok := EscapeLetter(c, e.Esc); ok {
			dst = append(dst, Backslash, letter)
			continue
		}
		dst = append(dst, c)
	}
	return append(dst, e.Esc)
}

// AppendRow appends fields joined by the separator and terminated by a line
// feed. field(i) returns the text of the i-th of n fields.
//
// A row made of one empty field is written as an empty escaped value, since a
// bare empty line would be skipped on decode.
func (e Encoder) AppendRow(dst []byte, n int, field func(i int) string) []byte {
	if n == 1 {
		if f := field(0); f == "" {
			return append(dst, e.Esc, e.Esc, '\n')
		}
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			dst = append(dst, e.Sep)
		}
		dst = e.AppendField(dst, field(i), i == 0)
	}
	return append(dst, '\n')
}
