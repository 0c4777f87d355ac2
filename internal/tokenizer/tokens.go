// Package tokenizer splits delimiter-separated text into lines using Shape's
// tokenizer framework.
package tokenizer

// Token type constants for line splitting.
//
// Field structure is not visible at this level: a line is handed to the row
// scanner as a whole, so quoting and separators are not tokenized here.
const (
	TokenNewline = "Newline" // \n (line terminator)
	TokenLine    = "Line"    // line content (any run of characters except \n)
)
