package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Delete a fixed list of files after confirmation"
	MsgRootLong     = `scrub prints the files it was built to delete, asks you to type DELETE,
and then removes each file in order. Missing files are skipped and a file
that cannot be removed is reported without stopping the rest.

The list is compiled into the binary. Edit pkg/targets/embedded/targets.toml
and rebuild to change it.`
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgListShort    = "Print the files scrub would delete"
	MsgListLong     = "List prints the compiled-in target paths, in order, without prompting or deleting anything."

	// Version output
	MsgVersionFormat = "scrub version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Confirm and report what would be deleted without deleting"
	MsgFlagFormat  = "Output format: auto, term or text"

	// Error messages
	MsgErrLoadTargets = "failed to load target list: %w"
	MsgErrFormat      = "invalid --format: %w"
)
