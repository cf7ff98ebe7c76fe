package buffer

import "github.com/bethropolis/slices/internal/types"

// View is a non-owning reference to a contiguous range of a TextBuffer.
//
// A view is valid only while its buffer stays at the version captured when
// the view was taken. Reads validate that first and fail with
// ErrInvalidatedView instead of returning stale bytes.
type View struct {
	buf  *TextBuffer
	span types.Span
	gen  uint64
}

// Span returns the byte range the view covers in its buffer.
func (v View) Span() types.Span { return v.span }

func (v View) Len() int { return v.span.Len() }

// Version returns the buffer version captured when the view was taken.
func (v View) Version() uint64 { return v.gen }

// Valid reports whether the view may still be read.
func (v View) Valid() bool {
	return v.check() == nil
}

func (v View) check() error {
	if v.buf == nil {
		return ErrDetachedView
	}
	if v.gen != v.buf.version {
		return invalidated(v.gen, v.buf.version)
	}
	return nil
}

// Bytes returns the viewed bytes. The result aliases the buffer and must not be modified.
func (v View) Bytes() ([]byte, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	return v.buf.data[v.span.Start:v.span.End:v.span.End], nil
}

// Text returns the viewed bytes as a string.
func (v View) Text() (string, error) {
	b, err := v.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MustText is like Text but panics if the view is no longer valid.
func (v View) MustText() string {
	s, err := v.Text()
	if err != nil {
		panic("buffer: " + err.Error())
	}
	return s
}

// Slice returns a sub-view over [start, end) relative to the start of v.
func (v View) Slice(start, end int) (View, error) {
	if err := v.check(); err != nil {
		return View{}, err
	}
	if !(types.Span{Start: start, End: end}).Within(v.span.Len()) {
		return View{}, outOfRange(start, end, v.span.Len())
	}
	abs := types.Span{Start: start, End: end}.Shift(v.span.Start)
	return v.buf.Slice(abs.Start, abs.End)
}
