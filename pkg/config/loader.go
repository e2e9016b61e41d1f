package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "FUTILS_"

// Load builds the effective configuration.
//
// configPath names a user config file; when it is empty, defaultPath is used
// if it exists. An explicit configPath that does not exist is an error.
func Load(configPath, defaultPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path, err := resolveConfigPath(configPath, defaultPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment variables: FUTILS_HASH_CHUNK_SIZE -> hash.chunk_size
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	return unmarshal(k)
}

// Defaults returns the configuration made of the embedded defaults only
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

// WithOverrides returns a copy of cfg with the given dotted keys replaced,
// e.g. {"hash.chunk_size": 4096}. Command-line flags go through here so they
// get the same validation as file and env values.
func WithOverrides(cfg *Config, overrides map[string]interface{}) (*Config, error) {
	if len(overrides) == 0 {
		return cfg, nil
	}
	k := koanf.New(".")
	base := map[string]interface{}{
		"hash.algorithm":      cfg.Hash.Algorithm,
		"hash.chunk_size":     cfg.Hash.ChunkSize,
		"logging.verbosity":   cfg.Logging.Verbosity,
		"logging.log_to_file": cfg.Logging.LogToFile,
		"restore.confirm":     cfg.Restore.Confirm,
	}
	if err := k.Load(confmap.Provider(base, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load base config")
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveConfigPath(configPath, defaultPath string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", configPath).
				WithDetail("path", configPath)
		}
		return configPath, nil
	}
	if defaultPath != "" {
		if _, err := os.Stat(defaultPath); err == nil {
			return defaultPath, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
