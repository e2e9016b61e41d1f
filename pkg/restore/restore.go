package restore

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/arthur-debert/futils/pkg/filesystem"
	"github.com/arthur-debert/futils/pkg/fileutil"
	"github.com/arthur-debert/futils/pkg/logging"
	"github.com/rs/zerolog"
)

// Options contains configuration for the restorer
type Options struct {
	// Filesystem operations interface for testing
	FS     filesystem.FS
	Hasher *fileutil.Hasher
	Logger *zerolog.Logger
}

// Params describes one restoration.
type Params struct {
	// Source is the folder holding the backed up files.
	Source string
	// Destination is the folder the files are restored into.
	Destination string
	// Move removes restored and identical files from Source instead of
	// copying them.
	Move bool
	// Archive, used with Move, receives identical files instead of them
	// being deleted.
	Archive string
}

// Result lists what a restoration did. All paths are absolute.
type Result struct {
	// Restored holds destination paths of files, links and folders created.
	Restored []string
	// Skipped holds source paths whose destination was already identical.
	Skipped []string
	// Archived holds archive paths of identical files moved out of Source.
	Archived []string
	// Deleted holds source paths of identical files removed from Source.
	Deleted []string
	// Conflicts holds source paths left alone because the destination
	// differs.
	Conflicts []string
}

// Restorer copies or moves a backup tree back into its original folder.
type Restorer struct {
	fs     filesystem.FS
	hasher *fileutil.Hasher
	logger zerolog.Logger
}

// New creates a new restorer instance
func New(opts Options) *Restorer {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	hasher := opts.Hasher
	if hasher == nil {
		hasher = fileutil.NewHasher(fsys)
	}

	logger := logging.GetLogger("restore")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Restorer{fs: fsys, hasher: hasher, logger: logger}
}

// Run restores params.Source into params.Destination.
//
// Missing files, links and folders are restored, identical files are
// skipped and differing ones are reported in Result.Conflicts. Conflicts are
// not an error.
func (r *Restorer) Run(params Params) (*Result, error) {
	done := logging.LogOperationStart(r.logger, "restore")
	defer done()

	if err := r.validate(&params); err != nil {
		return nil, err
	}
	r.logger.Debug().
		Str("source", params.Source).
		Str("destination", params.Destination).
		Bool("move", params.Move).
		Str("archive", params.Archive).
		Msg("Restoring")

	result := &Result{}
	if err := r.restoreDir(params, ".", result); err != nil {
		return result, err
	}

	if len(result.Conflicts) > 0 {
		r.logger.Info().
			Strs("conflicts", result.Conflicts).
			Msgf("The following files are in conflict and thus were not restored:\n  %s",
				strings.Join(result.Conflicts, "\n  "))
	}
	return result, nil
}

func (r *Restorer) validate(params *Params) error {
	if params.Source == "" || params.Destination == "" {
		return errors.New(errors.ErrInvalidInput, "source and destination folders are required")
	}
	if params.Archive != "" && !params.Move {
		return errors.New(errors.ErrInvalidInput, "an archive folder can only be used when moving files")
	}

	var err error
	if params.Source, err = r.existingDir("Source", params.Source); err != nil {
		return err
	}
	if params.Destination, err = r.existingDir("Destination", params.Destination); err != nil {
		return err
	}
	if params.Archive != "" {
		if params.Archive, err = r.existingDir("Archive", params.Archive); err != nil {
			return err
		}
	}
	return nil
}

// existingDir returns the absolute form of path, which must be a folder.
func (r *Restorer) existingDir(name, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid %s path %s", strings.ToLower(name), path)
	}
	info, err := r.fs.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", errors.Newf(errors.ErrInvalidInput, "%s argument is not an existing folder: %s", name, abs).
			WithDetail("path", abs)
	}
	return abs, nil
}

// restoreDir handles the source folder at rel, relative to params.Source.
func (r *Restorer) restoreDir(params Params, rel string, result *Result) error {
	srcDir := filepath.Join(params.Source, rel)
	destDir := filepath.Join(params.Destination, rel)
	r.logger.Debug().Str("source", srcDir).Str("destination", destDir).Msg("Subfolder")

	info, err := r.fs.Stat(destDir)
	switch {
	case err == nil && !info.IsDir():
		return errors.Newf(errors.ErrRestore, "Destination folder exists but is not a folder: %s", destDir).
			WithDetail("path", destDir)
	case err != nil && !isNotExist(err):
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", destDir)
	case err != nil:
		r.logger.Debug().Str("path", destDir).Msg("Creating folder")
		srcInfo, statErr := r.fs.Stat(srcDir)
		if statErr != nil {
			return errors.Wrapf(statErr, errors.ErrFileAccess, "cannot stat %s", srcDir)
		}
		if err := r.fs.Mkdir(destDir, srcInfo.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", destDir)
		}
	}

	entries, err := r.fs.ReadDir(srcDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", srcDir)
	}

	// Files and links first, then folders, as a top-down walk would
	var dirs []string
	for _, entry := range entries {
		name := entry.Name()
		srcPath := filepath.Join(srcDir, name)
		entryInfo, err := r.fs.Lstat(srcPath)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", srcPath)
		}

		switch mode := entryInfo.Mode(); {
		case mode.IsDir():
			dirs = append(dirs, name)
		case mode&fs.ModeSymlink != 0:
			if err := r.restoreLink(params, filepath.Join(rel, name), result); err != nil {
				return err
			}
		case mode.IsRegular():
			if err := r.restoreFile(params, filepath.Join(rel, name), result); err != nil {
				return err
			}
		default:
			return errors.Newf(errors.ErrRestore, "Unsupported file type: %s", srcPath).
				WithDetail("mode", mode.String())
		}
	}

	for _, name := range dirs {
		childRel := filepath.Join(rel, name)
		srcPath := filepath.Join(params.Source, childRel)
		destPath := filepath.Join(params.Destination, childRel)

		if _, err := r.fs.Lstat(destPath); err == nil {
			r.logger.Debug().Str("path", destPath).Msg("Folder already exists, will recurse into it")
			if err := r.restoreDir(params, childRel, result); err != nil {
				return err
			}
			continue
		} else if !isNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", destPath)
		}

		r.logger.Debug().Str("source", srcPath).Str("destination", destPath).Msg("Restoring folder")
		if params.Move {
			err = r.move(srcPath, destPath)
		} else {
			err = r.copyTree(srcPath, destPath)
		}
		if err != nil {
			return err
		}
		result.Restored = append(result.Restored, destPath)
	}
	return nil
}

func (r *Restorer) restoreFile(params Params, rel string, result *Result) error {
	srcPath := filepath.Join(params.Source, rel)
	destPath := filepath.Join(params.Destination, rel)

	destInfo, err := r.fs.Lstat(destPath)
	if err != nil {
		if !isNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", destPath)
		}
		r.logger.Debug().Str("source", srcPath).Str("destination", destPath).Msg("Restoring")
		if params.Move {
			err = r.move(srcPath, destPath)
		} else {
			err = r.copyFile(srcPath, destPath)
		}
		if err != nil {
			return err
		}
		result.Restored = append(result.Restored, destPath)
		return nil
	}

	// A link to a regular file is compared through the link
	if destInfo.Mode()&fs.ModeSymlink != 0 {
		destInfo, err = r.fs.Stat(destPath)
		if err != nil && !isNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", destPath)
		}
	}
	if err != nil || !destInfo.Mode().IsRegular() {
		r.logger.Debug().Str("source", srcPath).Str("destination", destPath).Msg("Conflict detected: destination is not a regular file")
		result.Conflicts = append(result.Conflicts, srcPath)
		return nil
	}

	same, err := r.hasher.Same(srcPath, destPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRestore, "cannot compare %s with %s", srcPath, destPath)
	}
	if !same {
		r.logger.Debug().Str("source", srcPath).Str("destination", destPath).Msg("Conflict detected")
		result.Conflicts = append(result.Conflicts, srcPath)
		return nil
	}

	r.logger.Debug().Str("source", srcPath).Str("destination", destPath).Msg("Skipping existing identical file")
	result.Skipped = append(result.Skipped, srcPath)
	return r.discard(params, rel, result)
}

func (r *Restorer) restoreLink(params Params, rel string, result *Result) error {
	srcPath := filepath.Join(params.Source, rel)
	destPath := filepath.Join(params.Destination, rel)

	destInfo, err := r.fs.Lstat(destPath)
	if err != nil {
		if !isNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", destPath)
		}
		r.logger.Debug().Str("source", srcPath).Str("destination", destPath).Msg("Restoring link")
		if params.Move {
			err = r.move(srcPath, destPath)
		} else {
			err = fileutil.CopyLink(r.fs, srcPath, destPath)
		}
		if err != nil {
			return err
		}
		result.Restored = append(result.Restored, destPath)
		return nil
	}

	if destInfo.Mode()&fs.ModeSymlink != 0 {
		srcTarget, err := r.fs.Readlink(srcPath)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", srcPath)
		}
		destTarget, err := r.fs.Readlink(destPath)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", destPath)
		}
		if srcTarget == destTarget {
			r.logger.Debug().Str("source", srcPath).Str("target", srcTarget).Msg("Skipping existing identical link")
			result.Skipped = append(result.Skipped, srcPath)
			return r.discard(params, rel, result)
		}
	}

	r.logger.Debug().Str("source", srcPath).Str("destination", destPath).Msg("Conflict detected")
	result.Conflicts = append(result.Conflicts, srcPath)
	return nil
}

// discard removes an already-restored source entry when moving: into the
// archive if there is one, otherwise for good.
func (r *Restorer) discard(params Params, rel string, result *Result) error {
	if !params.Move {
		return nil
	}
	srcPath := filepath.Join(params.Source, rel)

	if params.Archive == "" {
		r.logger.Debug().Str("path", srcPath).Msg("Deleting file")
		if err := r.fs.Remove(srcPath); err != nil {
			return errors.Wrapf(err, errors.ErrRestore, "cannot delete %s", srcPath)
		}
		result.Deleted = append(result.Deleted, srcPath)
		return nil
	}

	archPath := filepath.Join(params.Archive, rel)
	r.logger.Debug().Str("source", srcPath).Str("archive", archPath).Msg("Moving to archive")
	if err := r.fs.MkdirAll(filepath.Dir(archPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(archPath))
	}
	if err := r.move(srcPath, archPath); err != nil {
		return err
	}
	result.Archived = append(result.Archived, archPath)
	return nil
}

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}
