package key

import "strconv"

// Key identifies a key the editor reacts to. Keys it has no binding for
// arrive as KeyNone.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // a character; see Event.Rune
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// Modifier is the set of modifier keys held during a press.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone Modifier = 0
)

// Has reports whether every modifier in mod is held.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}
