// Package config handles configuration management for futils.
// It layers the embedded defaults, an optional TOML or YAML user file and
// FUTILS_* environment variables, in that order, using koanf.
package config
