// Package filesystem provides filesystem implementations for futils.
//
// Every futils operation works against the FS interface so it can run on the
// real OS filesystem or on an afero filesystem (in-memory for tests, or any
// other afero backend).
package filesystem
