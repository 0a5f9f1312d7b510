// Package mode implements the editor's modal input state machine.
//
// There are exactly three modes:
//
//   - View: read-only; ':' opens the command line, 'i' returns to Edit
//   - Edit: typed characters are appended to the text buffer (initial mode)
//   - Command: a ':'-prefixed line is collected and submitted on Enter
//
// The Machine owns the current mode and the in-progress command line and
// mutates the text buffer it was created with. It never executes commands
// itself: a completed command line is handed back to the caller in the
// Result of HandleKey.
//
// Mode is a closed enumeration. Every switch over it names all three
// values; an out-of-range Mode reaching the machine is a programming error
// and panics rather than being silently ignored.
package mode
