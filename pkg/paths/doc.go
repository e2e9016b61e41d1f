// Package paths provides centralized path handling for futils.
// It follows the XDG Base Directory specification for the config file and
// the log file, with environment overrides for both directories.
package paths
