package util

import (
	"io"

	"golang.org/x/text/encoding/unicode"
)

// NewValidUTF8Reader replaces any invalid UTF-8 sequences from the underlying reader with U+FFFD
func NewValidUTF8Reader(reader io.Reader) io.Reader {
	return unicode.UTF8.NewDecoder().Reader(reader)
}
