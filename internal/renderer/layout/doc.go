// Package layout computes what the screen should show for a given editor
// state. Plan is a pure function: it reads the state and the terminal size
// and returns a Frame describing the two screen regions, their text and
// where the cursor goes. Drawing the Frame is the renderer's job.
//
// The screen is split vertically:
//
//	┌──────────────────────┐
//	│ body text            │  body region, at least 4 rows, takes the rest
//	│                      │
//	└──────────────────────┘
//	┌──────────────────────┐
//	│ :command / status    │  command region, 3 rows
//	└──────────────────────┘
//
// Both regions are drawn with a one-cell border, so region-relative cursor
// coordinates start at 1.
package layout
