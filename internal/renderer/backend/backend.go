// Package backend connects the renderer to a display: the tcell terminal in
// production and NullBackend in tests.
package backend

import (
	"github.com/dshills/scribe/internal/input/key"
	"github.com/dshills/scribe/internal/renderer/core"
)

// CursorStyle is the shape of the visible cursor.
type CursorStyle uint8

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorHidden
)

// EventType tells which Event fields are set.
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event is one input event from the display.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// KeyEvent wraps a key press.
func KeyEvent(k key.Key, r rune, mods key.Modifier) Event {
	return Event{Type: EventKey, Key: key.Event{Key: k, Rune: r, Modifiers: mods}}
}

// RuneEvent wraps an unmodified character key.
func RuneEvent(r rune) Event {
	return KeyEvent(key.KeyRune, r, key.ModNone)
}

// Backend is a display the renderer draws on.
type Backend interface {
	// Init takes over the display. The terminal is in raw mode until
	// Shutdown.
	Init() error

	// Shutdown restores the display. It may be called more than once.
	Shutdown()

	Size() (width, height int)

	// SetCell draws one cell. Positions off screen are ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear blanks the screen.
	Clear()

	// Show flushes everything drawn since the last Show.
	Show()

	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next event.
	PollEvent() Event
}
