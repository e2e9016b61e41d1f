package fileutil

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/arthur-debert/futils/pkg/filesystem"
)

// CopyLink creates a symbolic link at dst pointing at the literal target
// stored in the link src. The target is never resolved.
//
// It fails with ErrNotSymlink if src is not a symbolic link and with
// ErrDestinationExists if anything already exists at dst. Nothing is
// created on failure.
func CopyLink(fsys filesystem.FS, src, dst string) error {
	info, err := fsys.Lstat(src)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return errors.Wrapf(notSymlinkCause(err), errors.ErrNotSymlink, "Not a symbolic link: %s", src).
			WithDetail("path", src)
	}

	if _, err := fsys.Lstat(dst); err == nil {
		return errors.Newf(errors.ErrDestinationExists, "Destination already exists: %s", dst).
			WithDetail("path", dst)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot check destination %s", dst)
	}

	target, err := fsys.Readlink(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", src)
	}

	if err := fsys.Symlink(target, dst); err != nil {
		if os.IsExist(err) {
			return errors.Wrapf(err, errors.ErrDestinationExists, "Destination already exists: %s", dst).
				WithDetail("path", dst)
		}
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot create link %s", dst)
	}
	return nil
}

// notSymlinkCause keeps a stat failure as the wrapped cause; a successful
// stat of a non-link gets fs.ErrInvalid.
func notSymlinkCause(err error) error {
	if err != nil {
		return err
	}
	return fs.ErrInvalid
}
