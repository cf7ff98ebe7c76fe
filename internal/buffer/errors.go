package buffer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidatedView = errors.New("invalidated view")
	ErrDetachedView    = errors.New("detached view")
	ErrOutOfRange      = errors.New("range out of bounds")
	ErrCharBoundary    = errors.New("not a char boundary")
)

// ViewError wraps slicing and view validation failures.
type ViewError struct {
	Kind error
	Msg  string
}

func (e *ViewError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *ViewError) Unwrap() error { return e.Kind }

func invalidated(captured, current uint64) error {
	return &ViewError{
		Kind: ErrInvalidatedView,
		Msg:  fmt.Sprintf("captured at version %d, buffer is at version %d", captured, current),
	}
}

func outOfRange(start, end, length int) error {
	return &ViewError{
		Kind: ErrOutOfRange,
		Msg:  fmt.Sprintf("[%d, %d) in buffer of length %d", start, end, length),
	}
}

func charBoundary(offset int) error {
	return &ViewError{
		Kind: ErrCharBoundary,
		Msg:  fmt.Sprintf("byte index %d is inside a multi-byte character", offset),
	}
}
