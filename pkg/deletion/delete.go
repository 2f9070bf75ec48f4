package deletion

import (
	stderrors "errors"
	"io/fs"
	"syscall"

	"github.com/arthur-debert/scrub/pkg/errors"
	"github.com/arthur-debert/scrub/pkg/logging"
	"github.com/arthur-debert/scrub/pkg/types"
)

// Delete removes a single path and classifies the outcome.
//
// A path that cannot be stat'ed is skipped as not found, whatever the
// reason: missing, a dangling symlink, a component that is a regular file,
// an unsearchable parent or an invalid name. Directories are never removed,
// empty or not. Any error from removal is a failure carrying the
// underlying reason.
func Delete(fsys types.FS, path string, dryRun bool) types.Result {
	log := logging.GetLogger("deletion").With().Str("path", path).Logger()

	if _, err := fsys.Stat(path); err != nil {
		log.Debug().Err(err).Bool("notExist", stderrors.Is(err, fs.ErrNotExist)).Msg("Target not found, skipping")
		return types.Result{Path: path, Outcome: types.OutcomeSkipped}
	}

	info, err := fsys.Lstat(path)
	if err != nil {
		return failed(path, errors.Wrap(err, errors.ErrFileAccess, "cannot check target"))
	}
	if info.IsDir() {
		isDir := &fs.PathError{Op: "remove", Path: path, Err: syscall.EISDIR}
		return failed(path, errors.Wrap(isDir, errors.ErrIsDirectory, "refusing to remove directory").
			WithDetail("path", path))
	}

	if dryRun {
		log.Debug().Msg("Dry run, not removing")
		return types.Result{Path: path, Outcome: types.OutcomeWouldDelete}
	}

	if err := fsys.Remove(path); err != nil {
		return failed(path, errors.Wrap(err, errors.ErrFileRemove, "remove failed"))
	}

	log.Debug().Msg("Target removed")
	return types.Result{Path: path, Outcome: types.OutcomeDeleted}
}

func failed(path string, err *errors.ScrubError) types.Result {
	log := logging.GetLogger("deletion")
	log.Info().
		Str("path", path).
		Str("code", string(errors.GetErrorCode(err))).
		Err(errors.Cause(err)).
		Msg("Failed to delete target")
	return types.Result{Path: path, Outcome: types.OutcomeFailed, Err: err}
}
