package word

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/slices/internal/buffer"
	"github.com/bethropolis/slices/internal/logger"
)

const delimiter = ' '

// Boundary returns the offset of the first space in text, or len(text).
func Boundary(text []byte) int {
	for i, item := range text {
		if item == delimiter {
			return i
		}
	}
	return len(text)
}

// FirstWordIndex returns the ending index of the first word in buf.
func FirstWordIndex(buf buffer.Buffer) int {
	return Boundary(buf.Bytes())
}

// FirstWord returns the first word of buf as a view instead of an index.
func FirstWord(buf buffer.Buffer) buffer.View {
	end := Boundary(buf.Bytes())
	v, err := buf.Slice(0, end)
	if err != nil {
		// A space byte is always a char boundary; fall back to the whole buffer.
		logger.Warnf("FirstWord: slice [0, %d) rejected: %v", end, err)
		return buf.Whole()
	}
	return v
}

// GraphemeBoundary returns the byte offset of the first grapheme cluster made
// entirely of Unicode whitespace, or len(text).
func GraphemeBoundary(text []byte) int {
	state := -1
	offset := 0
	rest := text
	for len(rest) > 0 {
		var cluster []byte
		cluster, rest, _, state = uniseg.Step(rest, state)
		if isSpaceCluster(cluster) {
			return offset
		}
		offset += len(cluster)
	}
	return len(text)
}

// isSpaceCluster reports whether all runes in cluster are Unicode whitespace.
func isSpaceCluster(cluster []byte) bool {
	if len(cluster) == 0 {
		return false
	}
	for len(cluster) > 0 {
		r, size := utf8.DecodeRune(cluster)
		if !unicode.IsSpace(r) {
			return false
		}
		cluster = cluster[size:]
	}
	return true
}

// FirstWordGraphemes is FirstWord with Unicode whitespace as the delimiter.
// It never splits a grapheme cluster.
func FirstWordGraphemes(buf buffer.Buffer) buffer.View {
	end := GraphemeBoundary(buf.Bytes())
	v, err := buf.Slice(0, end)
	if err != nil {
		logger.Warnf("FirstWordGraphemes: slice [0, %d) rejected: %v", end, err)
		return buf.Whole()
	}
	return v
}
