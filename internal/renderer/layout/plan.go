package layout

import (
	"fmt"
	"strings"

	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/input/mode"
	"github.com/dshills/scribe/internal/renderer/core"
)

const (
	// MinBodyHeight is the smallest body region, border included.
	MinBodyHeight = 4

	// CommandHeight is the command region height: border plus one text line.
	CommandHeight = 3
)

// Loaded files may still hold literal tabs.
var tabExpander = strings.NewReplacer("\t", strings.Repeat(" ", buffer.TabWidth))

// State is the part of the editor state the planner reads.
type State struct {
	Mode mode.Mode

	// Body is the document text.
	Body string

	// CommandLine is the in-progress command; only used in Command mode.
	CommandLine string

	// Message is command feedback, shown in Command mode while the
	// command line is empty.
	Message string
}

// Cursor is a planned cursor placement.
type Cursor struct {
	// Visible is false when no insertion point is shown.
	Visible bool

	// Row and Col are relative to the origin of the region holding the
	// cursor (body in Edit mode, command region in Command mode).
	Row, Col int

	// Pos is the absolute screen position.
	Pos core.Pos

	Style mode.CursorStyle
}

// Frame is everything the renderer needs for one draw.
type Frame struct {
	Width, Height int

	Mode mode.Mode

	// Body and Command are the two regions, borders included.
	Body    core.Rect
	Command core.Rect

	// BodyLines are the body lines that fit in the body region, starting
	// at line BodyScroll of the document.
	BodyLines  []string
	BodyScroll int

	// Status is the mode label; empty in Command mode.
	Status string

	// CommandText is what the command region shows.
	CommandText string

	Cursor Cursor
}

// Split divides the screen into the body and command regions.
// The command region keeps its 3 rows unless that would leave the body
// with fewer than MinBodyHeight rows.
func Split(width, height int) (body, command core.Rect) {
	width = max(width, 0)
	height = max(height, 0)

	bodyHeight := max(height-CommandHeight, min(height, MinBodyHeight))
	body = core.NewRect(0, 0, bodyHeight, width)
	command = core.NewRect(bodyHeight, 0, height-bodyHeight, width)
	return body, command
}

// Plan derives the frame for state on a width x height screen.
func Plan(state State, width, height int) Frame {
	body, command := Split(width, height)
	f := Frame{
		Width:   width,
		Height:  height,
		Mode:    state.Mode,
		Body:    body,
		Command: command,
	}

	lines := strings.Split(tabExpander.Replace(state.Body), "\n")
	inner := body.Inset(1).Height()
	if len(lines) > inner {
		f.BodyScroll = len(lines) - inner
	}
	f.BodyLines = lines[f.BodyScroll:]

	switch state.Mode {
	case mode.Edit:
		f.Status = statusLabel(state.Mode)
		f.CommandText = f.Status
		last := lines[len(lines)-1]
		f.Cursor = placeCursor(body, len(lines)-f.BodyScroll, core.StringWidth(last)+1, state.Mode)
	case mode.Command:
		f.CommandText = state.CommandLine
		if f.CommandText == "" {
			f.CommandText = state.Message
		}
		f.Cursor = placeCursor(command, 1, core.StringWidth(state.CommandLine)+1, state.Mode)
	case mode.View:
		f.Status = statusLabel(state.Mode)
		f.CommandText = f.Status
		f.Cursor = Cursor{Style: mode.CursorHidden}
	default:
		panic(fmt.Sprintf("layout: unhandled mode %v", state.Mode))
	}

	return f
}

// statusLabel is the "Mode: EDIT" style label for m.
func statusLabel(m mode.Mode) string {
	return "Mode: " + m.DisplayName()
}

func placeCursor(region core.Rect, row, col int, m mode.Mode) Cursor {
	return Cursor{
		Visible: true,
		Row:     row,
		Col:     col,
		Pos:     core.Pos{Row: region.Top + row, Col: region.Left + col},
		Style:   m.CursorStyle(),
	}
}
