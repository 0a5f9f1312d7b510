// Package fileio is the thin file-system layer used for the initial load
// of the edited file and for explicit saves. Every operation opens and
// closes its own handle.
package fileio

import (
	"io"
	"io/fs"
	"os"
	"sync"
)

// FileMode is the permission used for files the editor creates.
const FileMode fs.FileMode = 0644

// FileSystem abstracts the two file operations the editor performs.
// This allows for easy testing with an in-memory file system.
type FileSystem interface {
	// LoadOrCreate returns the contents of path, creating an empty file
	// first if it does not exist.
	LoadOrCreate(path string) ([]byte, error)

	// WriteFile creates or truncates path and writes data verbatim.
	// It returns the number of bytes written.
	WriteFile(path string, data []byte) (int, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}

// LoadOrCreate implements FileSystem.
func (OSFS) LoadOrCreate(path string) ([]byte, error) {
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, FileMode)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// WriteFile implements FileSystem.
func (OSFS) WriteFile(path string, data []byte) (n int, err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return f.Write(data)
}

// MemFS is an in-memory FileSystem.
// It is safe for concurrent use.
type MemFS struct {
	mu    sync.Mutex
	files map[string][]byte

	// WriteErr, when set, is returned by every WriteFile call.
	WriteErr error
}

// NewMemFS creates an empty in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

// LoadOrCreate implements FileSystem.
func (m *MemFS) LoadOrCreate(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[path]
	if !ok {
		m.files[path] = []byte{}
		return []byte{}, nil
	}
	return append([]byte(nil), data...), nil
}

// WriteFile implements FileSystem.
func (m *MemFS) WriteFile(path string, data []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return 0, &fs.PathError{Op: "open", Path: path, Err: m.WriteErr}
	}
	m.files[path] = append([]byte(nil), data...)
	return len(data), nil
}

// File returns the contents of path and whether it exists.
func (m *MemFS) File(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[path]
	return data, ok
}

// SetFile stores data at path.
func (m *MemFS) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = append([]byte(nil), data...)
}
