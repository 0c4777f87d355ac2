package tokenizer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzLineScanner checks that scanning never panics and that the lines it
// returns rebuild the input.
// Run with: go test -fuzz=FuzzLineScanner -fuzztime=30s ./internal/tokenizer
func FuzzLineScanner(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"\n",
		"a\nb",
		"a\n\nb\n",
		"\r\n",
		"\"x\ny\"",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			return
		}

		s := NewLineScannerFromString(input)
		var lines []string
		for s.Scan() {
			lines = append(lines, s.Text())
		}
		if err := s.Err(); err != nil {
			t.Fatalf("scanning %q: %v", input, err)
		}

		want := strings.TrimSuffix(input, "\n")
		if got := strings.Join(lines, "\n"); len(lines) > 0 && got != want {
			t.Fatalf("lines %q do not rebuild %q", lines, input)
		}
	})
}
