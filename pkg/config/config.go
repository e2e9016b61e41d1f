package config

import (
	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/arthur-debert/futils/pkg/fileutil"
	"github.com/arthur-debert/futils/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the effective futils configuration
type Config struct {
	Hash    Hash    `koanf:"hash" toml:"hash"`
	Logging Logging `koanf:"logging" toml:"logging"`
	Restore Restore `koanf:"restore" toml:"restore"`
}

// Hash configures the content hasher
type Hash struct {
	Algorithm string `koanf:"algorithm" toml:"algorithm"`
	ChunkSize int    `koanf:"chunk_size" toml:"chunk_size"`
}

// Logging configures the global logger
type Logging struct {
	Verbosity int  `koanf:"verbosity" toml:"verbosity"`
	LogToFile bool `koanf:"log_to_file" toml:"log_to_file"`
}

// Restore configures the backup restorer
type Restore struct {
	Confirm bool `koanf:"confirm" toml:"confirm"`
}

// Validate checks the values the rest of futils relies on
func (c *Config) Validate() error {
	if c.Hash.ChunkSize <= 0 {
		return errors.Newf(errors.ErrConfigValid, "hash.chunk_size must be positive, got %d", c.Hash.ChunkSize).
			WithDetail("chunk_size", c.Hash.ChunkSize)
	}
	if _, err := fileutil.GetAlgorithm(c.Hash.Algorithm); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid hash.algorithm")
	}
	if _, err := logging.VerbosityToLevel(c.Logging.Verbosity); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid logging.verbosity")
	}
	return nil
}

// HasherOptions returns the fileutil options matching the hash settings
func (c *Config) HasherOptions() ([]fileutil.Option, error) {
	algorithm, err := fileutil.GetAlgorithm(c.Hash.Algorithm)
	if err != nil {
		return nil, err
	}
	return []fileutil.Option{
		fileutil.WithAlgorithm(algorithm),
		fileutil.WithChunkSize(c.Hash.ChunkSize),
	}, nil
}

// TOML renders the configuration as a TOML document
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}
