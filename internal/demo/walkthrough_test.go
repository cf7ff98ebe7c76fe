package demo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeClipboard struct {
	got []string
	err error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.got = append(f.got, text)
	return f.err
}

func runLines(t *testing.T, opts Options) []string {
	t.Helper()
	var out bytes.Buffer
	if err := Run(&out, opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestRun_DefaultOutput(t *testing.T) {
	want := []string{
		"Hello, World!",
		"6",
		"6",
		"Hello World",
		"Hello,",
		"Hello,",
		"error: invalidated view: captured at version 0, buffer is at version 1",
		"Hello, World!",
		"[2 3]",
	}
	if diff := cmp.Diff(want, runLines(t, Options{Text: "Hello, World!"})); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ShortTextReportsSliceError(t *testing.T) {
	got := runLines(t, Options{Text: "NoSpaces"})
	want := []string{
		"NoSpaces",
		"8",
		"8",
		"error: range out of bounds: [7, 12) in buffer of length 8",
		"NoSpaces",
		"NoSpaces",
		"error: invalidated view: captured at version 0, buffer is at version 1",
		"NoSpaces",
		"[2 3]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_EmptyTextViewStaysValid(t *testing.T) {
	// Clearing an empty buffer changes nothing, so the view remains readable.
	got := runLines(t, Options{Text: ""})
	want := []string{
		"",
		"0",
		"0",
		"error: range out of bounds: [0, 5) in buffer of length 0",
		"",
		"",
		"",
		"",
		"[2 3]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Graphemes(t *testing.T) {
	got := runLines(t, Options{Text: "Hello,\u3000World!", Graphemes: true})
	if got[4] != "Hello," || got[5] != "Hello," {
		t.Fatalf("grapheme first word: got %q / %q, want %q", got[4], got[5], "Hello,")
	}
	// The byte finder sees no ASCII space in the same text.
	got = runLines(t, Options{Text: "Hello,\u3000World!"})
	if got[4] != "Hello,\u3000World!" {
		t.Fatalf("byte first word: got %q", got[4])
	}
}

func TestRun_CopiesFirstWord(t *testing.T) {
	clip := &fakeClipboard{}
	runLines(t, Options{Text: "Hello, World!", Clipboard: clip})
	if diff := cmp.Diff([]string{"Hello,"}, clip.got); diff != "" {
		t.Fatalf("clipboard mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ClipboardError(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	err := Run(&bytes.Buffer{}, Options{Text: "Hello, World!", Clipboard: clip})
	if err == nil || !strings.Contains(err.Error(), "no display") {
		t.Fatalf("expected clipboard error, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRun_WriteError(t *testing.T) {
	if err := Run(failingWriter{}, Options{Text: "Hello, World!"}); err == nil {
		t.Fatalf("expected write error")
	}
}
