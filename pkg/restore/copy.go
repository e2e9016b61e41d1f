package restore

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/arthur-debert/futils/pkg/fileutil"
)

// move renames src to dst, falling back to copy-then-delete when the two
// paths are on different devices.
func (r *Restorer) move(src, dst string) error {
	err := r.fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !stderrors.Is(err, syscall.EXDEV) {
		return errors.Wrapf(err, errors.ErrRestore, "cannot move %s to %s", src, dst)
	}

	r.logger.Debug().Str("source", src).Str("destination", dst).Msg("Cross-device move, copying instead")
	info, err := r.fs.Lstat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", src)
	}
	switch {
	case info.IsDir():
		err = r.copyTree(src, dst)
	case info.Mode()&fs.ModeSymlink != 0:
		err = fileutil.CopyLink(r.fs, src, dst)
	default:
		err = r.copyFile(src, dst)
	}
	if err != nil {
		return err
	}
	if err := r.fs.RemoveAll(src); err != nil {
		return errors.Wrapf(err, errors.ErrRestore, "cannot remove %s after copy", src)
	}
	return nil
}

// copyFile copies a regular file, keeping its permission bits and
// modification time. dst must not exist.
func (r *Restorer) copyFile(src, dst string) (err error) {
	info, err := r.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", src)
	}

	in, err := r.fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := r.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot create %s", dst)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, errors.ErrFileCreate, "cannot write %s", dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot copy %s to %s", src, dst)
	}
	return r.copyMetadata(dst, info)
}

// copyTree recursively copies the folder src to dst. Links are recreated
// as links.
func (r *Restorer) copyTree(src, dst string) error {
	info, err := r.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", src)
	}
	if err := r.fs.Mkdir(dst, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dst)
	}

	entries, err := r.fs.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", src)
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		entryInfo, err := r.fs.Lstat(srcPath)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", srcPath)
		}
		switch mode := entryInfo.Mode(); {
		case mode.IsDir():
			err = r.copyTree(srcPath, dstPath)
		case mode&fs.ModeSymlink != 0:
			err = fileutil.CopyLink(r.fs, srcPath, dstPath)
		case mode.IsRegular():
			err = r.copyFile(srcPath, dstPath)
		default:
			err = errors.Newf(errors.ErrRestore, "Unsupported file type: %s", srcPath).
				WithDetail("mode", mode.String())
		}
		if err != nil {
			return err
		}
	}

	// Folder times last, since filling it updates them
	return r.copyMetadata(dst, info)
}

func (r *Restorer) copyMetadata(dst string, info fs.FileInfo) error {
	if err := r.fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot set mode on %s", dst)
	}
	if err := r.fs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot set times on %s", dst)
	}
	return nil
}
