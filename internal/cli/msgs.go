package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "File integrity utilities"
	MsgRootLong        = "futils probes, hashes and compares files, copies symbolic links and restores backups."
	MsgProbeShort      = "Check that files can be read"
	MsgHashShort       = "Print content digests"
	MsgSameShort       = "Compare the contents of two files"
	MsgSameLong        = "Prints 'same' or 'different'. Files of different sizes are never read. Exits with status 1 when the files differ."
	MsgCopyLinkShort   = "Copy a symbolic link without following it"
	MsgRestoreShort    = "Restore a backup folder into its original location"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgReadable        = "readable"
	MsgUnreadable      = "unreadable"
	MsgSame            = "same"
	MsgDifferent       = "different"
	MsgDigestLine      = "%s  %s\n"
	MsgProbeLine       = "%s\t%s\n"
	MsgLinkCopied      = "Copied link %s -> %s\n"
	MsgVersionLine     = "futils version %s\n"
	MsgCommitLine      = "  commit: %s\n"
	MsgBuiltLine       = "  built:  %s\n"
	MsgRestoreSummary  = "Restored %d, skipped %d, archived %d, deleted %d"
	MsgConflictsHeader = "The following files are in conflict and thus were not restored:"
	MsgConflictItem    = "  %s\n"

	// Confirmations
	MsgConfirmMove        = "Using --move will delete files from the backup folder"
	MsgConfirmMoveDesc    = "Restored and identical files are removed from %s"
	MsgConfirmArchive     = "Archive folder (%s) is not empty"
	MsgConfirmArchiveDesc = "Identical files will be added to it"

	// Errors
	MsgErrNotInteractive = "confirmation required but stdin is not a terminal, use --yes to proceed"
	MsgErrAborted        = "aborted"
	MsgErrUnreadable     = "%d of %d file(s) cannot be read"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG)"
	MsgFlagConfig      = "Config file (default is $XDG_CONFIG_HOME/futils/config.toml)"
	MsgFlagAlgorithm   = "Hash algorithm (md5, sha1, sha256, sha512)"
	MsgFlagChunkSize   = "Bytes read per chunk"
	MsgFlagOutput      = "Output format: auto, term, text, json or yaml"
	MsgFlagSource      = "Backup folder to restore from"
	MsgFlagDestination = "Folder to restore into"
	MsgFlagMove        = "Move files out of the backup instead of copying them"
	MsgFlagArchive     = "With --move, put identical files here instead of deleting them"
	MsgFlagYes         = "Do not ask for confirmation"
	MsgFlagGenerate    = "Print a commented config file template instead"
)

// MsgCompletionLong is the completion command help
const MsgCompletionLong = `To load completions:

Bash:
  $ source <(futils completion bash)

Zsh:
  $ futils completion zsh > "${fpath[1]}/_futils"

Fish:
  $ futils completion fish | source

PowerShell:
  PS> futils completion powershell | Out-String | Invoke-Expression
`

// MsgRestoreLong is the restore command help
const MsgRestoreLong = `Restore walks the backup folder and brings back every file, link and folder
missing from the destination.

Files already present with identical content are skipped. Files present with
different content are reported as conflicts and left alone.

With --move, restored files leave the backup and identical ones are deleted
from it, or moved into --archive when given.`
