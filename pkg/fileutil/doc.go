// Package fileutil provides file-integrity helpers:
//
//   - CanRead probes whether a file's bytes can actually be read.
//   - CopyLink duplicates a symbolic link without touching its target.
//   - Hasher.Hash computes a streaming digest of a file's content.
//   - Hasher.Same compares two files by size, then by digest.
//
// All operations are synchronous, keep no state between calls, and run
// against a filesystem.FS. The package-level MD5 and SameFile helpers use the
// OS filesystem with default settings.
package fileutil
