package app

import (
	"errors"
	"io/fs"
	"testing"
)

func TestOperationError(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"op only", &OperationError{Op: "write"}, "write"},
		{"op and path", &OperationError{Op: "open", Path: "notes.txt"}, "open notes.txt"},
		{"with cause", &OperationError{Op: "write", Path: "out.txt", Err: errors.New("disk full")}, "write out.txt: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationErrorUnwrap(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "out.txt", Err: fs.ErrPermission}
	err := error(&OperationError{Op: "write", Path: "out.txt", Err: cause})

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is should reach the underlying cause")
	}
	var pe *fs.PathError
	if !errors.As(err, &pe) || pe.Path != "out.txt" {
		t.Error("errors.As should find the *fs.PathError")
	}
}

func TestInitError(t *testing.T) {
	cause := errors.New("no tty")
	err := &InitError{Component: "backend", Err: cause}

	if err.Error() != "init backend: no tty" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestPanicErrorOmitsStack(t *testing.T) {
	err := &PanicError{Value: "boom", Stack: []byte("goroutine 1 [running]")}
	if got := err.Error(); got != "panic: boom" {
		t.Errorf("Error() = %q, want %q", got, "panic: boom")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrQuit, ErrAlreadyRunning, ErrNoBackend}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
