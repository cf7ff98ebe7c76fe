// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/slices/internal/types"

// Buffer is the read-only surface of a text buffer.
type Buffer interface {
	Bytes() []byte
	Len() int
	Version() uint64
	Slice(start, end int) (View, error)
	Whole() View
}

// Mutable is a Buffer that can be edited. Every content change bumps Version.
type Mutable interface {
	Buffer
	Clear()
	Truncate(n int) error
	Append(text string)
	Insert(offset int, text string) error
	Delete(span types.Span) error
	IsModified() bool
}

// Ensure TextBuffer satisfies the Mutable interface
var _ Mutable = (*TextBuffer)(nil)
