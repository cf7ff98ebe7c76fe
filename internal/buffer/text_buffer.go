// internal/buffer/text_buffer.go
package buffer

import (
	"unicode/utf8"

	"github.com/bethropolis/slices/internal/logger"
	"github.com/bethropolis/slices/internal/types"
)

// TextBuffer is an owned, mutable UTF-8 byte buffer with a generation counter.
//
// Views taken from the buffer capture the version current at creation time
// and refuse to read once any mutation has bumped it.
type TextBuffer struct {
	data     []byte
	version  uint64
	modified bool
}

// New creates a buffer holding a copy of text.
func New(text string) *TextBuffer {
	return &TextBuffer{data: []byte(text)}
}

// Bytes returns the backing storage. Callers must not modify it.
func (tb *TextBuffer) Bytes() []byte {
	return tb.data[:len(tb.data):len(tb.data)]
}

func (tb *TextBuffer) String() string {
	return string(tb.data)
}

func (tb *TextBuffer) Len() int {
	return len(tb.data)
}

// Version returns the number of content mutations applied so far.
func (tb *TextBuffer) Version() uint64 {
	return tb.version
}

// IsModified reports whether the buffer changed since it was created.
func (tb *TextBuffer) IsModified() bool {
	return tb.modified
}

func (tb *TextBuffer) bump(op string) {
	tb.version++
	tb.modified = true
	logger.DebugTagf("buffer", "%s: len=%d version=%d", op, len(tb.data), tb.version)
}

// isCharBoundary reports whether offset starts a UTF-8 sequence. 0 and len are always boundaries.
func (tb *TextBuffer) isCharBoundary(offset int) bool {
	if offset == 0 || offset == len(tb.data) {
		return true
	}
	if offset < 0 || offset > len(tb.data) {
		return false
	}
	return utf8.RuneStart(tb.data[offset])
}

func (tb *TextBuffer) checkSpan(start, end int) error {
	if !(types.Span{Start: start, End: end}).Within(len(tb.data)) {
		return outOfRange(start, end, len(tb.data))
	}
	if !tb.isCharBoundary(start) {
		return charBoundary(start)
	}
	if !tb.isCharBoundary(end) {
		return charBoundary(end)
	}
	return nil
}

// --- Buffer Modification Methods ---

// Clear empties the buffer. Clearing an empty buffer is a no-op.
func (tb *TextBuffer) Clear() {
	if len(tb.data) == 0 {
		return
	}
	// Fresh storage: stale views must never alias newly written bytes.
	tb.data = nil
	tb.bump("clear")
}

// Truncate keeps the first n bytes.
func (tb *TextBuffer) Truncate(n int) error {
	if err := tb.checkSpan(0, n); err != nil {
		return err
	}
	if n == len(tb.data) {
		return nil
	}
	tb.data = append([]byte(nil), tb.data[:n]...)
	tb.bump("truncate")
	return nil
}

// Append adds text to the end of the buffer.
func (tb *TextBuffer) Append(text string) {
	if text == "" {
		return
	}
	next := make([]byte, 0, len(tb.data)+len(text))
	next = append(next, tb.data...)
	tb.data = append(next, text...)
	tb.bump("append")
}

// Insert places text at offset, which must lie on a char boundary.
func (tb *TextBuffer) Insert(offset int, text string) error {
	if err := tb.checkSpan(offset, offset); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	next := make([]byte, 0, len(tb.data)+len(text))
	next = append(next, tb.data[:offset]...)
	next = append(next, text...)
	tb.data = append(next, tb.data[offset:]...)
	tb.bump("insert")
	return nil
}

// Delete removes the bytes in span (start inclusive, end exclusive).
func (tb *TextBuffer) Delete(span types.Span) error {
	if err := tb.checkSpan(span.Start, span.End); err != nil {
		return err
	}
	if span.IsEmpty() {
		return nil
	}
	next := make([]byte, 0, len(tb.data)-span.Len())
	next = append(next, tb.data[:span.Start]...)
	tb.data = append(next, tb.data[span.End:]...)
	tb.bump("delete")
	return nil
}

// --- Views ---

// Slice returns a borrowed view over [start, end).
func (tb *TextBuffer) Slice(start, end int) (View, error) {
	if err := tb.checkSpan(start, end); err != nil {
		return View{}, err
	}
	return View{buf: tb, span: types.Span{Start: start, End: end}, gen: tb.version}, nil
}

// Whole returns a view over the entire buffer.
func (tb *TextBuffer) Whole() View {
	return View{buf: tb, span: types.Span{Start: 0, End: len(tb.data)}, gen: tb.version}
}
