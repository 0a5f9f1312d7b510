package key

import (
	"strings"
	"unicode"
)

// Event is one key press.
type Event struct {
	Key       Key
	Rune      rune // set when Key is KeyRune
	Modifiers Modifier
}

// IsPrintable reports whether e types r into the text: a printable rune
// with no Ctrl, Alt or Meta held. Shift is allowed since it only picks
// the character.
func (e Event) IsPrintable() bool {
	return e.Key == KeyRune && e.Modifiers&(ModCtrl|ModAlt|ModMeta) == 0 &&
		unicode.IsPrint(e.Rune)
}

// Is reports whether e types the character r.
func (e Event) Is(r rune) bool {
	return e.IsPrintable() && e.Rune == r
}

// String formats e for logs, for example "a", "C-x" or "S-Tab".
func (e Event) String() string {
	var sb strings.Builder
	for _, p := range []struct {
		mod    Modifier
		prefix string
	}{{ModCtrl, "C-"}, {ModAlt, "A-"}, {ModMeta, "M-"}, {ModShift, "S-"}} {
		if e.Modifiers.Has(p.mod) && !(p.mod == ModShift && e.Key == KeyRune) {
			sb.WriteString(p.prefix)
		}
	}

	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		sb.WriteString("Space")
	case e.Key == KeyRune:
		sb.WriteRune(e.Rune)
	default:
		sb.WriteString(e.Key.String())
	}
	return sb.String()
}
