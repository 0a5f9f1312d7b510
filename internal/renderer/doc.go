// Package renderer draws editor frames onto a backend.
//
// Rendering is split in two steps. The layout package derives a Frame
// from the editor state: region rectangles, visible body lines, the
// command region text and the cursor placement. The Renderer then paints
// that Frame:
//
//	┌──────────────────────────────┐
//	│ body text                    │  body region
//	│                              │
//	└──────────────────────────────┘
//	┌──────────────────────────────┐
//	│Mode: EDIT                    │  command region
//	└──────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.NewTheme(border, text, status))
//	w, h := term.Size()
//	r.Render(layout.Plan(state, w, h))
package renderer
