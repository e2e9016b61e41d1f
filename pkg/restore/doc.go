// Package restore puts backed up files back into their original folder.
//
// The backup tree is walked top-down. Files, links and folders missing from
// the destination are restored. Files with identical content (as decided
// by fileutil.Hasher.Same) and links with the same target are skipped.
// Anything else is a conflict: it is reported and left alone for a manual
// merge.
//
// With Params.Move, restored entries are moved rather than copied and
// skipped files are deleted from the backup, or moved into Params.Archive.
package restore
