// Package demo prints the slicing walkthrough: first-word extraction by
// index and by view, and what happens to each after the buffer is cleared.
package demo

import (
	"fmt"
	"io"

	"github.com/bethropolis/slices/internal/buffer"
	"github.com/bethropolis/slices/internal/logger"
	"github.com/bethropolis/slices/internal/utils"
	"github.com/bethropolis/slices/internal/word"
)

// Options configures Run.
type Options struct {
	Text      string
	Graphemes bool
	Clipboard Copier // nil disables copying
}

type walkthrough struct {
	w    io.Writer
	opts Options
	err  error
}

func (wt *walkthrough) println(args ...interface{}) {
	if wt.err != nil {
		return
	}
	_, wt.err = fmt.Fprintln(wt.w, args...)
}

func (wt *walkthrough) firstWord(buf buffer.Buffer) buffer.View {
	if wt.opts.Graphemes {
		return word.FirstWordGraphemes(buf)
	}
	return word.FirstWord(buf)
}

// show prints the view's text, or the error that stopped it from being read.
func (wt *walkthrough) show(v buffer.View) {
	s, err := v.Text()
	if err != nil {
		logger.DebugTagf("demo", "view %v rejected: %v", v.Span(), err)
		wt.println("error:", err)
		return
	}
	wt.println(s)
}

// Run writes the walkthrough to w.
func Run(w io.Writer, opts Options) error {
	wt := &walkthrough{w: w, opts: opts}
	text := opts.Text

	wt.println(text)

	// An index into the buffer carries no link to it.
	s := buffer.New(text)
	idx := word.FirstWordIndex(s)
	logger.DebugTagf("demo", "first word ends at byte %d (rune %d)", idx, utils.ByteOffsetToRuneIndex(s.Bytes(), idx))
	wt.println(idx)
	s.Clear()
	wt.println(idx)

	// Views into a buffer.
	s = buffer.New(text)
	hello, herr := s.Slice(0, 5)
	world, werr := s.Slice(7, 12)
	switch {
	case herr != nil:
		wt.println("error:", herr)
	case werr != nil:
		wt.println("error:", werr)
	default:
		wt.println(hello.MustText(), world.MustText())
	}

	first := wt.firstWord(s)
	wt.show(first)
	if err := wt.copy(first); err != nil {
		return err
	}

	// A view taken before a mutation refuses to read after it.
	s = buffer.New(text)
	first = wt.firstWord(s)
	wt.show(first)
	s.Clear()
	wt.show(first)

	// String literals are immutable; slicing them never goes stale.
	literal := text
	wt.println(literal)

	a := [...]int{1, 2, 3, 4, 5}
	sliceOfA := a[1:3]
	wt.println(fmt.Sprint(sliceOfA))

	return wt.err
}

func (wt *walkthrough) copy(v buffer.View) error {
	if wt.opts.Clipboard == nil {
		return nil
	}
	s, err := v.Text()
	if err != nil {
		return fmt.Errorf("copy first word: %w", err)
	}
	if err := wt.opts.Clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("copy first word to clipboard: %w", err)
	}
	stats := word.Count([]byte(s))
	logger.InfoTagf("demo", "copied first word %q (%d graphemes, %d columns)", s, stats.Graphemes, stats.Width)
	return nil
}
