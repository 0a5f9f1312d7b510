package renderer

import "github.com/dshills/scribe/internal/renderer/core"

// Theme holds the styles used to paint a frame.
type Theme struct {
	// Border styles the box drawn around each region.
	Border core.Style

	// Text styles body text.
	Text core.Style

	// Status styles the command region text.
	Status core.Style
}

// NewTheme builds a theme from foreground colors. A default color leaves
// the terminal's own foreground in place.
func NewTheme(border, text, status core.Color) Theme {
	return Theme{
		Border: core.Style{Foreground: border},
		Text:   core.Style{Foreground: text},
		Status: core.Style{Foreground: status, Bold: true},
	}
}
