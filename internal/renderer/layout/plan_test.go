package layout

import (
	"strings"
	"testing"

	"github.com/dshills/scribe/internal/input/mode"
	"github.com/dshills/scribe/internal/renderer/core"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		height      int
		bodyHeight  int
		commandRows int
	}{
		{24, 21, 3},
		{7, 4, 3},
		{6, 4, 2},
		{4, 4, 0},
		{2, 2, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		body, command := Split(80, tt.height)
		if body.Height() != tt.bodyHeight {
			t.Errorf("height %d: body height = %d, want %d", tt.height, body.Height(), tt.bodyHeight)
		}
		if command.Height() != tt.commandRows {
			t.Errorf("height %d: command height = %d, want %d", tt.height, command.Height(), tt.commandRows)
		}
		if command.Top != body.Bottom {
			t.Errorf("height %d: command region should start where body ends", tt.height)
		}
		if body.Width() != 80 || (command.Height() > 0 && command.Width() != 80) {
			t.Errorf("height %d: regions should span the full width", tt.height)
		}
	}
}

func TestPlanEditCursor(t *testing.T) {
	tests := []struct {
		name string
		body string
		row  int
		col  int
	}{
		{"empty", "", 1, 1},
		{"one line", "hello", 1, 6},
		{"trailing newline", "hello\n", 2, 1},
		{"two lines", "ab\ncde", 2, 4},
		{"tab expanded", "    x", 1, 6},
		{"wide chars", "日本", 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Plan(State{Mode: mode.Edit, Body: tt.body}, 80, 24)

			if !f.Cursor.Visible {
				t.Fatal("cursor should be visible in edit mode")
			}
			if f.Cursor.Row != tt.row || f.Cursor.Col != tt.col {
				t.Errorf("cursor = (row %d, col %d), want (row %d, col %d)", f.Cursor.Row, f.Cursor.Col, tt.row, tt.col)
			}
			want := core.Pos{Row: f.Body.Top + tt.row, Col: f.Body.Left + tt.col}
			if f.Cursor.Pos != want {
				t.Errorf("absolute cursor = %+v, want %+v", f.Cursor.Pos, want)
			}
			if f.Cursor.Style != mode.CursorBar {
				t.Errorf("cursor style = %v, want bar", f.Cursor.Style)
			}
		})
	}
}

func TestPlanEnterMovesCursorDown(t *testing.T) {
	before := Plan(State{Mode: mode.Edit, Body: "abc"}, 80, 24)
	after := Plan(State{Mode: mode.Edit, Body: "abc\n"}, 80, 24)

	if after.Cursor.Row != before.Cursor.Row+1 {
		t.Errorf("row after Enter = %d, want %d", after.Cursor.Row, before.Cursor.Row+1)
	}
	if after.Cursor.Col != 1 {
		t.Errorf("col after Enter = %d, want 1", after.Cursor.Col)
	}
}

func TestPlanEditStatus(t *testing.T) {
	f := Plan(State{Mode: mode.Edit, Body: "x", CommandLine: ":stale", Message: "old"}, 80, 24)

	if f.Status != "Mode: EDIT" {
		t.Errorf("status = %q, want %q", f.Status, "Mode: EDIT")
	}
	if f.CommandText != "Mode: EDIT" {
		t.Errorf("command text = %q, want %q", f.CommandText, "Mode: EDIT")
	}
}

func TestPlanViewMode(t *testing.T) {
	f := Plan(State{Mode: mode.View, Body: "text"}, 80, 24)

	if f.Status != "Mode: VIEW" {
		t.Errorf("status = %q, want %q", f.Status, "Mode: VIEW")
	}
	if f.CommandText != "Mode: VIEW" {
		t.Errorf("command text = %q, want %q", f.CommandText, "Mode: VIEW")
	}
	if f.Cursor.Visible {
		t.Error("cursor should be hidden in view mode")
	}
	if len(f.BodyLines) != 1 || f.BodyLines[0] != "text" {
		t.Errorf("body lines = %q", f.BodyLines)
	}
}

func TestPlanCommandMode(t *testing.T) {
	f := Plan(State{Mode: mode.Command, Body: "a\nb\nc", CommandLine: ":w out.txt"}, 80, 24)

	if f.Status != "" {
		t.Errorf("status = %q, want empty in command mode", f.Status)
	}
	if f.CommandText != ":w out.txt" {
		t.Errorf("command text = %q", f.CommandText)
	}
	if f.Cursor.Row != 1 || f.Cursor.Col != len(":w out.txt")+1 {
		t.Errorf("cursor = (row %d, col %d), want (row 1, col %d)", f.Cursor.Row, f.Cursor.Col, len(":w out.txt")+1)
	}
	want := core.Pos{Row: f.Command.Top + 1, Col: f.Command.Left + len(":w out.txt") + 1}
	if f.Cursor.Pos != want {
		t.Errorf("absolute cursor = %+v, want %+v", f.Cursor.Pos, want)
	}
}

func TestPlanCommandMessage(t *testing.T) {
	f := Plan(State{Mode: mode.Command, Message: `"out.txt" 2B written`}, 80, 24)

	if f.CommandText != `"out.txt" 2B written` {
		t.Errorf("command text = %q", f.CommandText)
	}
	if f.Cursor.Col != 1 {
		t.Errorf("cursor col = %d, want 1", f.Cursor.Col)
	}

	f = Plan(State{Mode: mode.Command, CommandLine: ":q", Message: "ignored"}, 80, 24)
	if f.CommandText != ":q" {
		t.Errorf("command line should win over message, got %q", f.CommandText)
	}
}

func TestPlanScrollsToLastLine(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = strings.Repeat("x", i)
	}
	body := strings.Join(lines, "\n")

	// 24 rows: body region 21 rows, 19 inside the border.
	f := Plan(State{Mode: mode.Edit, Body: body}, 80, 24)

	if f.BodyScroll != 11 {
		t.Errorf("scroll = %d, want 11", f.BodyScroll)
	}
	if len(f.BodyLines) != 19 {
		t.Errorf("visible lines = %d, want 19", len(f.BodyLines))
	}
	if f.BodyLines[len(f.BodyLines)-1] != lines[29] {
		t.Error("last document line should be visible")
	}
	if f.Cursor.Row != 19 || f.Cursor.Col != 30 {
		t.Errorf("cursor = (row %d, col %d), want (row 19, col 30)", f.Cursor.Row, f.Cursor.Col)
	}
}

func TestPlanIsPure(t *testing.T) {
	s := State{Mode: mode.Edit, Body: "a\nb"}
	a := Plan(s, 40, 10)
	b := Plan(s, 40, 10)

	if a.Cursor != b.Cursor || a.Body != b.Body || a.Command != b.Command || a.CommandText != b.CommandText {
		t.Error("Plan should be deterministic")
	}
	if s.Body != "a\nb" {
		t.Error("Plan should not modify its input")
	}
}

func TestPlanUnknownModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown mode")
		}
	}()
	Plan(State{Mode: mode.Mode(9)}, 80, 24)
}

func TestPlanExpandsLiteralTabs(t *testing.T) {
	f := Plan(State{Mode: mode.Edit, Body: "\tx"}, 80, 24)

	if f.BodyLines[0] != "    x" {
		t.Errorf("line = %q, want tab expanded", f.BodyLines[0])
	}
	if f.Cursor.Col != 6 {
		t.Errorf("cursor col = %d, want 6", f.Cursor.Col)
	}
}
