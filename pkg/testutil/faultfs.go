package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/arthur-debert/futils/pkg/filesystem"
	"github.com/stretchr/testify/require"
)

// FaultFS implements filesystem.FS on top of another FS, with error injection
type FaultFS struct {
	filesystem.FS

	mu sync.Mutex

	// Error injection
	openErrors   map[string]error
	readErrors   map[string]error
	renameErrors map[string]error

	// Statistics
	opens  map[string]int
	closes map[string]int
}

// NewFaultFS wraps base. With a nil base an in-memory filesystem is used.
func NewFaultFS(base filesystem.FS) *FaultFS {
	if base == nil {
		base = filesystem.NewMemoryFS()
	}
	return &FaultFS{
		FS:           base,
		openErrors:   make(map[string]error),
		readErrors:   make(map[string]error),
		renameErrors: make(map[string]error),
		opens:        make(map[string]int),
		closes:       make(map[string]int),
	}
}

// FailOpen makes every Open of path fail with err.
func (f *FaultFS) FailOpen(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.openErrors[filepath.Clean(path)] = err
}

// FailRead makes every Read on a handle for path fail with err.
func (f *FaultFS) FailRead(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readErrors[filepath.Clean(path)] = err
}

// FailRename makes every Rename of path fail with err. A *os.LinkError
// passes through unchanged, anything else is wrapped in one.
func (f *FaultFS) FailRename(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.renameErrors[filepath.Clean(path)] = err
}

// Opens returns how many times path was successfully opened.
func (f *FaultFS) Opens(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens[filepath.Clean(path)]
}

// OpenHandles returns the number of handles opened but not yet closed.
func (f *FaultFS) OpenHandles() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for path, count := range f.opens {
		n += count - f.closes[path]
	}
	return n
}

func (f *FaultFS) Open(name string) (filesystem.File, error) {
	return f.OpenFile(name, os.O_RDONLY, 0)
}

func (f *FaultFS) OpenFile(name string, flag int, perm fs.FileMode) (filesystem.File, error) {
	key := filepath.Clean(name)

	f.mu.Lock()
	openErr := f.openErrors[key]
	f.mu.Unlock()
	if openErr != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: openErr}
	}

	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.opens[key]++
	readErr := f.readErrors[key]
	f.mu.Unlock()

	return &faultFile{File: file, owner: f, path: key, readErr: readErr}, nil
}

func (f *FaultFS) Rename(oldpath, newpath string) error {
	f.mu.Lock()
	renameErr := f.renameErrors[filepath.Clean(oldpath)]
	f.mu.Unlock()
	if renameErr != nil {
		if linkErr, ok := renameErr.(*os.LinkError); ok {
			return linkErr
		}
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: renameErr}
	}
	return f.FS.Rename(oldpath, newpath)
}

type faultFile struct {
	filesystem.File
	owner   *FaultFS
	path    string
	readErr error
}

func (ff *faultFile) Read(p []byte) (int, error) {
	if ff.readErr != nil {
		return 0, &fs.PathError{Op: "read", Path: ff.path, Err: ff.readErr}
	}
	return ff.File.Read(p)
}

func (ff *faultFile) Close() error {
	ff.owner.mu.Lock()
	ff.owner.closes[ff.path]++
	ff.owner.mu.Unlock()
	return ff.File.Close()
}

// WriteFile creates path (and its parents) in fsys with the given content.
func WriteFile(t *testing.T, fsys filesystem.FS, path string, data []byte) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	file, err := fsys.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	require.NoError(t, err)
	_, err = file.Write(data)
	require.NoError(t, err)
	require.NoError(t, file.Close())
}
