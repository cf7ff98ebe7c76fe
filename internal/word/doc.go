// Package word finds the first space-delimited word of a text buffer.
//
// FirstWordIndex and FirstWord share one byte-level scan for the ASCII space
// (0x20). The scan does not decode UTF-8; a boundary found this way is always
// a char boundary since 0x20 never occurs inside a multi-byte sequence.
// FirstWordGraphemes is the Unicode-aware variant.
package word
