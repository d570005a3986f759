// Package text holds the line grammar shared by the skin's text
// configuration files (viscolor.txt, pledit.txt, region.txt).
//
// Files are read line by line. Blank lines and comments are ignored,
// "[Section]" lines switch the current section, and "key=value" lines
// belong to the current section. Any other line is a grammar error in every
// dialect; the dialect packages decide what to make of the rest.
package text

import (
	"bufio"
	"strings"

	"github.com/brian-armstrong/wsz/skinerr"
)

// Kind classifies a line.
type Kind int

const (
	Blank Kind = iota
	Comment
	Section
	KeyValue
	Other
)

// Line is one classified line of input.
type Line struct {
	// Num is 1-based.
	Num  int
	Kind Kind
	// Text is the trimmed line with any trailing comment removed.
	Text string

	// Name is set for Section lines.
	Name string
	// Key and Value are set for KeyValue lines, both trimmed.
	Key, Value string
}

// Dialect configures comment handling.
type Dialect struct {
	// CommentPrefixes start a whole-line comment.
	CommentPrefixes []string
	// TrailingComment, if set, removes everything after it on any line.
	TrailingComment string
}

// Scanner walks through the lines of a configuration file.
type Scanner struct {
	d    Dialect
	s    *bufio.Scanner
	line Line
	num  int
}

// NewScanner returns a scanner over content.
func NewScanner(content string, d Dialect) *Scanner {
	s := bufio.NewScanner(strings.NewReader(content))
	s.Buffer(nil, len(content)+1)
	return &Scanner{d: d, s: s}
}

// Scan advances to the next line, returning false at the end of input.
func (s *Scanner) Scan() bool {
	if !s.s.Scan() {
		return false
	}
	s.num++
	s.line = s.d.classify(s.num, s.s.Text())
	return true
}

// Line returns the current line.
func (s *Scanner) Line() Line {
	return s.line
}

func (d Dialect) classify(num int, raw string) Line {
	l := Line{Num: num}
	t := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
	if t == "" {
		l.Kind = Blank
		return l
	}
	for _, p := range d.CommentPrefixes {
		if strings.HasPrefix(t, p) {
			l.Kind = Comment
			l.Text = t
			return l
		}
	}
	if d.TrailingComment != "" {
		if i := strings.Index(t, d.TrailingComment); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		if t == "" {
			l.Kind = Comment
			return l
		}
	}
	l.Text = t

	switch {
	case strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]"):
		l.Kind = Section
		l.Name = strings.TrimSpace(t[1 : len(t)-1])
	case strings.Contains(t, "="):
		i := strings.Index(t, "=")
		l.Kind = KeyValue
		l.Key = strings.TrimSpace(t[:i])
		l.Value = strings.TrimSpace(t[i+1:])
	default:
		l.Kind = Other
	}
	return l
}

// Errorf returns a format error tagged with the line's number.
func (l Line) Errorf(format string, args ...interface{}) error {
	return skinerr.Formatf(l.Num, format, args...)
}

// InvalidLine is the error for a line that is neither a section header nor
// a key=value pair.
func (l Line) InvalidLine() error {
	return l.Errorf("invalid line format: '%s'", l.Text)
}
