package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/scribe/internal/input/key"
	"github.com/dshills/scribe/internal/renderer/core"
)

// Terminal is the tcell Backend.
type Terminal struct {
	mu           sync.Mutex
	screen       tcell.Screen
	shutdownOnce sync.Once
}

// NewTerminal prepares a screen on the controlling terminal. Nothing is
// changed until Init.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.Clear()
	return nil
}

// Shutdown leaves raw mode and the alternate screen. Only the first call
// does anything.
func (t *Terminal) Shutdown() {
	t.shutdownOnce.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.screen.Fini()
	})
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.SetContent(x, y, cell.Rune, cell.Comb, tcellStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch style {
	case CursorBar:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	case CursorHidden:
		t.screen.HideCursor()
	default:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

// PollEvent blocks on tcell's queue. After Fini tcell returns nil, which
// comes back as EventNone.
func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

func tcellStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault.Bold(s.Bold)
	if fg := s.Foreground; !fg.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
	}
	return style
}

func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k := convertKey(e.Key())
		var r rune
		if k == key.KeyRune {
			r = e.Rune()
		}
		return KeyEvent(k, r, convertMod(e.Modifiers()))
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	}
	return Event{Type: EventNone}
}

// convertKey keeps the keys the mode machine has bindings for.
// tcell reports Ctrl+M as Enter, Ctrl+I as Tab and Ctrl+H as Backspace, so
// those chords act as the keys they alias.
func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyRune:
		return key.KeyRune
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	}
	return key.KeyNone
}

var modMap = []struct {
	from tcell.ModMask
	to   key.Modifier
}{
	{tcell.ModShift, key.ModShift},
	{tcell.ModCtrl, key.ModCtrl},
	{tcell.ModAlt, key.ModAlt},
	{tcell.ModMeta, key.ModMeta},
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	for _, mm := range modMap {
		if m&mm.from != 0 {
			mods |= mm.to
		}
	}
	return mods
}
