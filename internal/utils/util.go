package utils

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneIndexToByteOffset converts a rune index to a byte offset in a byte slice.
// Returns -1 if runeIndex is out of bounds.
func RuneIndexToByteOffset(text []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	currentRune := 0
	for byteOffset < len(text) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRune(text[byteOffset:])
		byteOffset += size
		currentRune++
	}
	if currentRune == runeIndex {
		return len(text)
	}
	return -1
}

// ByteOffsetToRuneIndex converts a byte offset to a rune index in a byte slice.
func ByteOffsetToRuneIndex(text []byte, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(text) {
		byteOffset = len(text)
	}
	runeIndex := 0
	currentOffset := 0
	for currentOffset < byteOffset {
		_, size := utf8.DecodeRune(text[currentOffset:])
		if currentOffset+size > byteOffset {
			break // offset falls inside this rune
		}
		currentOffset += size
		runeIndex++
	}
	return runeIndex
}

// GraphemeCount returns the number of user-perceived characters in text.
func GraphemeCount(text []byte) int {
	return uniseg.GraphemeClusterCount(string(text))
}

// DisplayWidth returns the terminal column width of text.
func DisplayWidth(text []byte) int {
	return runewidth.StringWidth(string(text))
}
