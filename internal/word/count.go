package word

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/slices/internal/utils"
)

// Stats summarizes a piece of text.
type Stats struct {
	Lines     int
	Words     int
	Bytes     int
	Runes     int
	Graphemes int
	Width     int // terminal columns of the widest line
}

// Count computes Stats for text. Words are runs of non-whitespace.
func Count(text []byte) Stats {
	s := Stats{
		Words:     len(bytes.Fields(text)),
		Bytes:     len(text),
		Runes:     utf8.RuneCount(text),
		Graphemes: utils.GraphemeCount(text),
	}
	if len(text) == 0 {
		return s
	}
	for _, line := range bytes.Split(text, []byte("\n")) {
		s.Lines++
		if w := utils.DisplayWidth(line); w > s.Width {
			s.Width = w
		}
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("Lines: %d, Words: %d, Bytes: %d", s.Lines, s.Words, s.Bytes)
}
