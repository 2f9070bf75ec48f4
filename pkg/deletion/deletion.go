// Package deletion implements scrub's list, confirm and delete sequence.
//
// Run prints the target list, asks for the confirmation token and, only if
// it matches, visits every target in order. Each target yields exactly one
// outcome (deleted, skipped or failed); a failure is reported and the loop
// moves on. Nothing is retried and nothing is rolled back.
package deletion

import (
	"io"

	"github.com/arthur-debert/scrub/pkg/errors"
	"github.com/arthur-debert/scrub/pkg/logging"
	"github.com/arthur-debert/scrub/pkg/types"
	"github.com/arthur-debert/scrub/pkg/ui"
	"github.com/arthur-debert/scrub/pkg/ui/confirmations"
)

// RunOptions defines the options for Run.
type RunOptions struct {
	// Targets are visited in order; duplicates are visited again.
	Targets []string
	// FS is the filesystem paths are checked and removed on.
	FS types.FS
	// In supplies the confirmation line.
	In io.Reader
	// Renderer receives the header, prompt and per-path lines.
	Renderer *ui.Renderer
	// Out is where the prompt is written. It should be the renderer's stream.
	Out io.Writer
	// Token overrides confirmations.DefaultToken when set.
	Token string
	// DryRun reports what would be removed without removing anything.
	DryRun bool
}

// Run prints the targets, asks for confirmation and deletes. A mismatched
// confirmation returns an ErrAborted error and touches nothing. Once
// confirmed, Run always returns a report and a nil error, whatever the
// individual outcomes were.
func Run(opts RunOptions) (*types.Report, error) {
	log := logging.GetLogger("deletion")
	log.Debug().Int("targets", len(opts.Targets)).Bool("dryRun", opts.DryRun).Msg("Executing command")

	opts.Renderer.Header(opts.Targets)

	token := opts.Token
	if token == "" {
		token = confirmations.DefaultToken
	}

	confirmed, err := confirmations.NewTokenPrompt(token).Confirm(opts.In, opts.Out)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		log.Info().Msg("Confirmation did not match, aborting")
		opts.Renderer.Aborted()
		return nil, errors.New(errors.ErrAborted, "deletion not confirmed")
	}

	report := DeleteAll(opts.FS, opts.Targets, opts.DryRun, opts.Renderer)

	log.Info().
		Int("deleted", report.Count(types.OutcomeDeleted)).
		Int("skipped", report.Count(types.OutcomeSkipped)).
		Int("failed", report.Count(types.OutcomeFailed)).
		Int("wouldDelete", report.Count(types.OutcomeWouldDelete)).
		Msg("Command finished")
	return report, nil
}

// List prints the header and targets without prompting or deleting.
func List(targets []string, renderer *ui.Renderer) {
	renderer.Header(targets)
}

// DeleteAll visits every target in order and renders one line per target.
// It never stops early.
func DeleteAll(fsys types.FS, targets []string, dryRun bool, renderer *ui.Renderer) *types.Report {
	done := logging.LogOperationStart(logging.GetLogger("deletion"), "delete-targets")
	defer done()

	report := &types.Report{
		Results: make([]types.Result, 0, len(targets)),
		DryRun:  dryRun,
	}

	for _, path := range targets {
		result := Delete(fsys, path, dryRun)
		report.Add(result)
		render(renderer, result)
	}

	return report
}

func render(renderer *ui.Renderer, result types.Result) {
	switch result.Outcome {
	case types.OutcomeDeleted:
		renderer.Deleted(result.Path)
	case types.OutcomeWouldDelete:
		renderer.WouldDelete(result.Path)
	case types.OutcomeSkipped:
		renderer.Skipped(result.Path)
	case types.OutcomeFailed:
		renderer.Failed(result.Path, errors.Cause(result.Err))
	}
}
