package tokenizer

import (
	"errors"
	"io"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer that emits alternating line content and
// newline tokens. An empty line produces a newline token only.
//
// Only line feed terminates a line; a carriage return is line content.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),
		LineContentMatcher(),
	)
}

// NewTokenizerWithStream creates a line tokenizer over a pre-configured stream.
// This is used to support reading from io.Reader.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// LineContentMatcher matches a run of characters up to, not including, the
// next line feed.
//
// Performance: Uses ByteStream for fast scanning when available.
func LineContentMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return lineContentMatcherByte(byteStream)
		}
		return lineContentMatcherRune(stream)
	}
}

// lineContentMatcherByte uses ByteStream for optimal performance.
func lineContentMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || b == '\n' {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenLine, []rune(string(value)))
}

// lineContentMatcherRune is the fallback rune-based implementation.
func lineContentMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || r == '\n' {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenLine, value)
}

// ErrIncomplete is returned when the tokenizer stops before the end of input.
var ErrIncomplete = errors.New("tokenizer stopped before end of input")

// LineScanner reads lines from a stream in the manner of bufio.Scanner:
// call Scan until it returns false, then check Err.
type LineScanner struct {
	stream tokenizer.Stream
	tok    tokenizer.Tokenizer
	line   string
	err    error
	done   bool
}

// NewLineScanner returns a LineScanner reading from r.
func NewLineScanner(r io.Reader) *LineScanner {
	return NewLineScannerFromStream(tokenizer.NewStreamFromReader(r))
}

// NewLineScannerFromString returns a LineScanner over an in-memory string.
func NewLineScannerFromString(s string) *LineScanner {
	return NewLineScannerFromStream(tokenizer.NewStream(s))
}

// NewLineScannerFromStream returns a LineScanner over stream.
func NewLineScannerFromStream(stream tokenizer.Stream) *LineScanner {
	return &LineScanner{
		stream: stream,
		tok:    NewTokenizerWithStream(stream),
	}
}

// Scan advances to the next line. A final line without a terminating line
// feed is returned; a trailing line feed does not produce an extra empty line.
func (s *LineScanner) Scan() bool {
	if s.done {
		return false
	}

	token, ok := s.tok.NextToken()
	if !ok {
		s.finish()
		return false
	}

	switch token.Kind() {
	case TokenNewline:
		s.line = ""
		return true
	case TokenLine:
		s.line = token.ValueString()
		// the terminator, if any, belongs to this line
		if next, ok := s.tok.NextToken(); ok && next.Kind() != TokenNewline {
			s.err = ErrIncomplete
			s.done = true
			return false
		}
		return true
	default:
		s.err = ErrIncomplete
		s.done = true
		return false
	}
}

func (s *LineScanner) finish() {
	s.done = true
	if !s.stream.IsEos() {
		s.err = ErrIncomplete
	}
}

// Text returns the most recent line produced by Scan, without its line feed.
func (s *LineScanner) Text() string {
	return s.line
}

// Err returns the first error encountered by the scanner.
func (s *LineScanner) Err() error {
	return s.err
}
