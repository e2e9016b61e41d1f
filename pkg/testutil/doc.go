// Package testutil provides utilities for testing futils components.
//
// FaultFS wraps any filesystem.FS (usually the in-memory afero one) with
// error injection and open/close accounting, so tests can simulate
// unreadable files and check that every handle gets released.
package testutil
