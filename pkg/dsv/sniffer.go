package dsv

import (
	"strings"
)

// sniffCandidates are the separators a Sniffer considers, in tie-break order.
var sniffCandidates = []byte{',', '\t', ';', '|'}

// Sniffer detects the separator of a sample document.
type Sniffer struct {
	sample    string
	comment   byte
	escape    byte
	separator byte
	analyzed  bool
}

// NewSniffer creates a Sniffer for a sample of the document.
// For best results, provide at least 2-3 lines of data.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{
		sample:  sample,
		comment: DefaultComment,
		escape:  DefaultEscape,
	}
}

// WithCharacters sets the comment and escape characters used while sniffing.
// Zero leaves the current value unchanged.
func (s *Sniffer) WithCharacters(comment, escape byte) *Sniffer {
	if comment != 0 {
		s.comment = comment
	}
	if escape != 0 {
		s.escape = escape
	}
	s.analyzed = false
	return s
}

// DetectSeparator returns the detected separator: one of , \t ; | with comma
// as the fallback.
func (s *Sniffer) DetectSeparator() byte {
	if !s.analyzed {
		s.separator = s.detectSeparator()
		s.analyzed = true
	}
	return s.separator
}

// Config returns a configuration using the detected separator.
func (s *Sniffer) Config() Config {
	cfg := DefaultConfig()
	cfg.Separator = s.DetectSeparator()
	cfg.Comment = s.comment
	cfg.Escape = s.escape
	return cfg
}

// detectSeparator scores each candidate by how consistently it splits the
// sample's data lines.
func (s *Sniffer) detectSeparator() byte {
	var lines []string
	for _, line := range strings.Split(s.sample, "\n") {
		if line == "" || line[0] == s.comment {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return DefaultSeparator
	}

	best := byte(DefaultSeparator)
	bestScore := 0
	for _, sep := range sniffCandidates {
		first := s.countSeparator(lines[0], sep)
		if first == 0 {
			continue
		}

		score := first * 10 // Bonus for consistency
		for _, line := range lines[1:] {
			if s.countSeparator(line, sep) != first {
				score = first
				break
			}
		}

		if score > bestScore {
			best = sep
			bestScore = score
		}
	}
	return best
}

// countSeparator counts occurrences of sep outside escaped sections.
// The escape character opens a section only at the start of a field; inside
// one, a backslash skips the next character.
func (s *Sniffer) countSeparator(line string, sep byte) int {
	count := 0
	inEscape := false
	fieldStart := true

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inEscape && c == '\\':
			i++
		case inEscape && c == s.escape:
			inEscape = false
		case inEscape:
		case fieldStart && c == s.escape:
			inEscape = true
		case c == sep:
			count++
			fieldStart = true
			continue
		}
		fieldStart = false
	}
	return count
}
