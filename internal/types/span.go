// internal/types/span.go
package types

import "fmt"

// Span is a half-open byte range [Start, End) within a text buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Within reports whether the span fits inside a sequence of length n.
func (s Span) Within(n int) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= n
}

// Shift returns the span moved forward by offset bytes.
func (s Span) Shift(offset int) Span {
	return Span{Start: s.Start + offset, End: s.End + offset}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}
