package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit color. The zero value leaves the terminal's own
// default color in place.
type Color struct {
	R, G, B uint8
	set     bool
}

// ColorDefault is the terminal's default color.
var ColorDefault Color

// RGB returns the color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// ParseHex reads "#rrggbb" or "#rgb". The '#' may be omitted.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return ColorDefault, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB(c.RGB255()), nil
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return !c.set
}

func (c Color) String() string {
	if !c.set {
		return "default"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
