// Package buffer provides the append-only text buffer that holds the
// document being edited.
//
// Text only ever grows at its end: characters, newlines and tab
// expansions are appended, and the only removal is of the single trailing
// character. There is no positional insert because the editor has no
// movable cursor; the insertion point is always the end of the text.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello")
//	buf.AppendChar('!')  // "Hello!"
//	buf.AppendNewline()  // "Hello!\n"
//	buf.RemoveLast()     // "Hello!"
//
// "Character" means one rune. A "\r\n" pair loaded from disk, or a letter
// followed by a combining mark, takes two RemoveLast calls.
package buffer
