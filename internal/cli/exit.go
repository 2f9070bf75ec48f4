package cli

import (
	"github.com/arthur-debert/scrub/pkg/errors"
)

// ExitCode maps the error returned by the root command to a process status.
// Per-file failures never reach here; only an unconfirmed run or a setup
// error makes the process exit non-zero.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// ShouldReport reports whether main needs to print err. An abort has
// already been explained on stdout.
func ShouldReport(err error) bool {
	return err != nil && !errors.IsErrorCode(err, errors.ErrAborted)
}
