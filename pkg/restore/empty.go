package restore

import (
	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/arthur-debert/futils/pkg/filesystem"
)

// IsEmptyDir reports whether the folder at path has no entries.
func IsEmptyDir(fsys filesystem.FS, path string) (bool, error) {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", path)
	}
	return len(entries) == 0, nil
}
