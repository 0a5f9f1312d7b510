package mode

import "fmt"

// Mode is the editor's current input mode.
type Mode uint8

const (
	// View ignores everything except mode switches.
	View Mode = iota

	// Edit appends typed text to the buffer.
	Edit

	// Command collects a command line.
	Command
)

// String returns the mode identifier ("view", "edit", "command").
func (m Mode) String() string {
	switch m {
	case View:
		return "view"
	case Edit:
		return "edit"
	case Command:
		return "command"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// DisplayName returns the upper-case name shown in the status line.
func (m Mode) DisplayName() string {
	switch m {
	case View:
		return "VIEW"
	case Edit:
		return "EDIT"
	case Command:
		return "COMMAND"
	}
	panic(unhandled(m))
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBar is a thin vertical bar cursor.
	CursorBar CursorStyle = iota

	// CursorHidden hides the cursor.
	CursorHidden
)

// CursorStyle returns the cursor style for the mode. View has no
// insertion point, so its cursor is hidden.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case View:
		return CursorHidden
	case Edit:
		return CursorBar
	case Command:
		return CursorBar
	}
	panic(unhandled(m))
}

func unhandled(m Mode) string {
	return fmt.Sprintf("mode: unhandled mode %d", uint8(m))
}
