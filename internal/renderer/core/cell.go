package core

import "github.com/mattn/go-runewidth"

// Style is how a cell is painted.
type Style struct {
	Foreground Color
	Bold       bool
}

// Cell is one terminal cell. The second column of a wide character holds
// a cell with Rune 0.
type Cell struct {
	Rune rune

	// Comb holds combining marks drawn on top of Rune.
	Comb []rune

	Width int
	Style Style
}

// StringWidth returns the number of terminal columns s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
