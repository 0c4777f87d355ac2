// Package dsv decodes and encodes delimiter-separated text with a configurable
// separator, comment marker and escape character.
//
// # Format
//
// A document is a sequence of lines separated by line feeds. Empty lines and
// lines starting with the comment character ('#' by default) are skipped.
// Every other line is one row; fields are divided by the separator (',' by
// default). A field that starts with the escape character ('"' by default) is
// escaped: it runs to the next escape character, which must be followed by a
// separator or the end of the line. Inside an escaped field a backslash starts
// a two-character sequence:
//
//	\v \t \r \n \f   control characters
//	\\               backslash
//	\"               the escape character
//
// Escaped fields cannot span lines. Characters are single bytes; multi-byte
// UTF-8 sequences pass through untouched.
//
// # Values
//
// Every field is a Value holding text. Typed views are parsed on demand:
//
//	table, _ := dsv.Decode("foo,true,1.0\nbar,false,200", dsv.DefaultConfig())
//	row, _ := table.Row(1)
//	ok, _ := row[1].Bool()  // false
//	n, _ := row[2].Int()    // 200
//
// Integers are tried in base 10, then 8, then 16, so "10" is ten and "0x1A"
// is 26.
//
// # Round trip
//
// Encoding escapes exactly what decoding needs, so for any document without
// comment lines Decode(Encode(Decode(t))) equals Decode(t), and fields without
// special characters are written back byte for byte.
//
// # Thread Safety
//
// Package-level functions share no mutable state and are safe for concurrent
// use. A Table is not; serialize access to a shared Table.
package dsv

// Format returns the format identifier for this codec.
func Format() string {
	return "DSV"
}
