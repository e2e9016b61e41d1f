package fileutil

import (
	"errors"
	"io"

	"github.com/arthur-debert/futils/pkg/filesystem"
)

// CanRead reports whether the file at path can actually be read.
//
// Permission flags are not consulted: the file is opened and one byte is
// read. An empty file counts as readable. Any open or read failure yields
// false. path is expected to name a regular file.
func CanRead(fsys filesystem.FS, path string) bool {
	f, err := fsys.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 1)
	if _, err := f.Read(buf); err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	return true
}
