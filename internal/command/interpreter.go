package command

import (
	"fmt"

	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/fileio"
)

// Outcome reports the effect of an executed command.
type Outcome struct {
	// Command is the parsed command.
	Command Command

	// Quit asks the event loop to stop.
	Quit bool

	// Message is feedback for the command region; empty for none.
	Message string

	// Written is the number of bytes saved by a write.
	Written int
}

// WriteError is returned when saving the buffer fails.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Interpreter executes command lines against a buffer.
type Interpreter struct {
	fs fileio.FileSystem
}

// NewInterpreter creates an interpreter that saves through fsys.
// A nil fsys uses the OS file system.
func NewInterpreter(fsys fileio.FileSystem) *Interpreter {
	if fsys == nil {
		fsys = fileio.DefaultFS()
	}
	return &Interpreter{fs: fsys}
}

// Execute runs one command line.
// Malformed input never fails: it yields an Outcome with a Message.
// The only error is a *WriteError from a failed save.
func (i *Interpreter) Execute(line string, body *buffer.Buffer) (Outcome, error) {
	cmd, err := Parse(line)
	if err != nil {
		return Outcome{Message: fmt.Sprintf("not a command: %q", line)}, nil
	}

	out := Outcome{Command: cmd}
	switch cmd.Kind {
	case KindNone, KindUnknown:
		return out, nil
	case KindQuit:
		out.Quit = true
		return out, nil
	case KindWrite:
		return i.write(out, body)
	}
	panic(fmt.Sprintf("command: unhandled kind %v", cmd.Kind))
}

func (i *Interpreter) write(out Outcome, body *buffer.Buffer) (Outcome, error) {
	path := out.Command.Target()
	n, err := i.fs.WriteFile(path, body.Bytes())
	if err != nil {
		return out, &WriteError{Path: path, Err: err}
	}
	out.Written = n
	out.Message = fmt.Sprintf("%q %dB written", path, n)
	return out, nil
}
