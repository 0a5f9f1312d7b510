package buffer

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// TabWidth is the number of spaces a tab expands to.
const TabWidth = 4

var tabSpaces = []byte(strings.Repeat(" ", TabWidth))

// Buffer holds the document text.
// The zero value is an empty buffer ready for use.
type Buffer struct {
	data []byte
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferFromString creates a buffer initialized with text.
func NewBufferFromString(text string) *Buffer {
	return &Buffer{data: []byte(text)}
}

// NewBufferFromBytes creates a buffer initialized with a copy of data.
// The bytes are kept as-is; no line ending or encoding conversion happens.
func NewBufferFromBytes(data []byte) *Buffer {
	return &Buffer{data: bytes.Clone(data)}
}

// AppendChar appends a single character.
func (b *Buffer) AppendChar(r rune) {
	b.data = utf8.AppendRune(b.data, r)
}

// AppendNewline appends a newline marker.
func (b *Buffer) AppendNewline() {
	b.data = append(b.data, '\n')
}

// AppendTab appends TabWidth spaces. No literal tab is stored.
func (b *Buffer) AppendTab() {
	b.data = append(b.data, tabSpaces...)
}

// RemoveLast removes the last character of the text and reports whether
// anything was removed. Removing a trailing newline joins the last two
// lines. A stray byte that is not valid UTF-8 counts as one character.
func (b *Buffer) RemoveLast() bool {
	if len(b.data) == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(b.data)
	b.data = b.data[:len(b.data)-size]
	return true
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	return string(b.data)
}

// Bytes returns a copy of the buffer content.
func (b *Buffer) Bytes() []byte {
	return bytes.Clone(b.data)
}

// Len returns the length of the content in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// LineCount returns the number of lines: one more than the number of
// newline markers, so an empty buffer has one (empty) line.
func (b *Buffer) LineCount() int {
	return bytes.Count(b.data, []byte{'\n'}) + 1
}

// LastLine returns the text after the final newline marker.
func (b *Buffer) LastLine() string {
	i := bytes.LastIndexByte(b.data, '\n')
	return string(b.data[i+1:])
}

// Lines splits the content on newline markers. The result always has
// LineCount elements.
func (b *Buffer) Lines() []string {
	return strings.Split(string(b.data), "\n")
}
