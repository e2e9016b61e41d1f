package fileutil

import (
	"io/fs"

	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/arthur-debert/futils/pkg/filesystem"
)

// Same reports whether the regular files a and b have identical content.
//
// Files of different size are reported different without being opened.
// Otherwise the digests decide, so a hash collision would be reported as
// equal content.
func (h *Hasher) Same(a, b string) (bool, error) {
	infoA, err := h.fs.Stat(a)
	if err != nil {
		return false, err
	}
	infoB, err := h.fs.Stat(b)
	if err != nil {
		return false, err
	}
	if err := requireRegular(a, infoA); err != nil {
		return false, err
	}
	if err := requireRegular(b, infoB); err != nil {
		return false, err
	}

	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	digestA, err := h.Hash(a)
	if err != nil {
		return false, err
	}
	digestB, err := h.Hash(b)
	if err != nil {
		return false, err
	}
	return digestA == digestB, nil
}

// SameFile compares two files on the OS filesystem with default settings.
func SameFile(a, b string) (bool, error) {
	return NewHasher(filesystem.NewOS()).Same(a, b)
}

func requireRegular(path string, info fs.FileInfo) error {
	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrInvalidInput, "not a regular file: %s", path).
			WithDetail("path", path)
	}
	return nil
}
