package demo

import "github.com/atotto/clipboard"

// Copier receives the first word when copying is enabled.
type Copier interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
