package renderer

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/scribe/internal/input/mode"
	"github.com/dshills/scribe/internal/renderer/backend"
	"github.com/dshills/scribe/internal/renderer/core"
	"github.com/dshills/scribe/internal/renderer/layout"
)

// Box drawing characters.
const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
)

// Renderer paints frames onto a backend.
type Renderer struct {
	backend backend.Backend
	theme   Theme
}

// New creates a renderer drawing to b.
func New(b backend.Backend, theme Theme) *Renderer {
	return &Renderer{
		backend: b,
		theme:   theme,
	}
}

// Render redraws the whole screen from f and flushes it.
func (r *Renderer) Render(f layout.Frame) {
	r.backend.Clear()

	r.drawBox(f.Body)
	r.drawBox(f.Command)

	body := f.Body.Inset(1)
	for i, line := range f.BodyLines {
		if i >= body.Height() {
			break
		}
		r.drawText(body, body.Top+i, line, r.theme.Text)
	}

	command := f.Command.Inset(1)
	if !command.IsEmpty() {
		r.drawText(command, command.Top, f.CommandText, r.theme.Status)
	}

	r.placeCursor(f.Cursor)
	r.backend.Show()
}

// drawBox outlines rect. Rectangles too small for a border are skipped.
func (r *Renderer) drawBox(rect core.Rect) {
	if rect.Width() < 2 || rect.Height() < 2 {
		return
	}

	put := func(x, y int, ch rune) {
		r.backend.SetCell(x, y, core.Cell{Rune: ch, Width: 1, Style: r.theme.Border})
	}
	top, bottom := rect.Top, rect.Bottom-1
	left, right := rect.Left, rect.Right-1

	for x := left + 1; x < right; x++ {
		put(x, top, boxHorizontal)
		put(x, bottom, boxHorizontal)
	}
	for y := top + 1; y < bottom; y++ {
		put(left, y, boxVertical)
		put(right, y, boxVertical)
	}
	put(left, top, boxTopLeft)
	put(right, top, boxTopRight)
	put(left, bottom, boxBottomLeft)
	put(right, bottom, boxBottomRight)
}

// drawText writes s on row y, starting at the left edge of clip and
// stopping at its right edge. Each grapheme cluster takes one cell, two for
// wide characters, with its combining marks riding on the base rune.
// Clusters with no width, control characters among them, are skipped. A
// wide cluster that would straddle the edge is not drawn.
func (r *Renderer) drawText(clip core.Rect, y int, s string, style core.Style) {
	x := clip.Left
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := core.StringWidth(g.Str())
		if w == 0 {
			continue
		}
		if x+w > clip.Right {
			return
		}
		rs := g.Runes()
		cell := core.Cell{Rune: rs[0], Width: w, Style: style}
		if len(rs) > 1 {
			cell.Comb = rs[1:]
		}
		r.backend.SetCell(x, y, cell)
		// Continuation cells of wide characters hold rune 0.
		for i := 1; i < w; i++ {
			r.backend.SetCell(x+i, y, core.Cell{Style: style})
		}
		x += w
	}
}

func (r *Renderer) placeCursor(c layout.Cursor) {
	if !c.Visible {
		r.backend.HideCursor()
		return
	}
	r.backend.SetCursorStyle(convertCursorStyle(c.Style))
	r.backend.ShowCursor(c.Pos.Col, c.Pos.Row)
}

func convertCursorStyle(s mode.CursorStyle) backend.CursorStyle {
	switch s {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorHidden:
		return backend.CursorHidden
	default:
		return backend.CursorBlock
	}
}
