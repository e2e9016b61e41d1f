package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/futils/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for futils
	EnvConfigDir = "FUTILS_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for futils
	EnvStateDir = "FUTILS_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for futils-specific files
	AppDirName = "futils"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "futils.log"
)

// Paths provides the locations futils reads and writes outside of the
// files it operates on.
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	LogFilePath() string
}

type paths struct {
	configDir string
	stateDir  string
}

// New resolves the futils directories from the environment.
func New() (Paths, error) {
	// The xdg package caches the environment at init time
	xdg.Reload()

	p := &paths{}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	for _, dir := range []*string{&p.configDir, &p.stateDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) StateDir() string {
	return p.stateDir
}

// ConfigFilePath returns the default user config file location
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// LogFilePath returns the path to the futils log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands ~ to the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv(EnvHome)
	}
	if home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
