package backend

import (
	"strings"

	"github.com/dshills/scribe/internal/renderer/core"
)

var blank = core.Cell{Rune: ' ', Width: 1}

// NullBackend is an in-memory Backend for tests. PollEvent returns posted
// events in order and blocks when none are queued.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	events        chan Event

	cursorX, cursorY int
	cursorVisible    bool
	cursorStyle      CursorStyle

	// InitErr, when set, is returned by Init.
	InitErr error

	initialized bool
	shutdowns   int
	shows       int
}

// NewNullBackend returns a width x height backend.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 256),
	}
}

func (b *NullBackend) Init() error {
	if b.InitErr != nil {
		return b.InitErr
	}
	b.allocate()
	b.initialized = true
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]core.Cell, b.width)
	}
	b.Clear()
}

func (b *NullBackend) Shutdown() {
	b.shutdowns++
	b.initialized = false
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if y >= 0 && y < len(b.cells) && x >= 0 && x < len(b.cells[y]) {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) Clear() {
	for _, row := range b.cells {
		for x := range row {
			row[x] = blank
		}
	}
}

func (b *NullBackend) Show() {
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX, b.cursorY = x, y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

// PostEvent queues ev for PollEvent. It drops ev when the queue is full.
func (b *NullBackend) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
	}
}

// PostKeys queues a character key for every rune of s.
func (b *NullBackend) PostKeys(s string) {
	for _, r := range s {
		b.PostEvent(RuneEvent(r))
	}
}

// Resize changes the screen size, blanks it and queues a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.width, b.height = width, height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// Cell returns the cell at (x, y), or a blank cell off screen.
func (b *NullBackend) Cell(x, y int) core.Cell {
	if y >= 0 && y < len(b.cells) && x >= 0 && x < len(b.cells[y]) {
		return b.cells[y][x]
	}
	return blank
}

// Row returns the text of row y, combining marks included, with trailing
// spaces removed.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= len(b.cells) {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
		for _, m := range c.Comb {
			sb.WriteRune(m)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

func (b *NullBackend) CursorStyleValue() CursorStyle { return b.cursorStyle }

// Initialized reports whether Init succeeded with no Shutdown since.
func (b *NullBackend) Initialized() bool { return b.initialized }

func (b *NullBackend) ShutdownCount() int { return b.shutdowns }

// ShowCount is the number of flushed frames.
func (b *NullBackend) ShowCount() int { return b.shows }
