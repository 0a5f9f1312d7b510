package app

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit is returned by Run after a quit command.
	ErrQuit = errors.New("quit")

	// ErrAlreadyRunning is returned when Run or SetBackend is called while
	// the editor owns the terminal.
	ErrAlreadyRunning = errors.New("editor already running")

	// ErrNoBackend is returned by Run when no backend was set.
	ErrNoBackend = errors.New("no terminal backend")
)

// OperationError is a failed file operation on the document.
type OperationError struct {
	Op   string // "open" or "write"
	Path string
	Err  error
}

func (e *OperationError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error { return e.Err }

// InitError names the component that failed during startup.
type InitError struct {
	Component string // "config", "logger", "document" or "backend"
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error { return e.Err }

// PanicError is a panic recovered by Run after the terminal was restored.
// Stack goes to the log, not into Error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
