package cli

import (
	"fmt"

	"github.com/arthur-debert/scrub/internal/version"
	"github.com/arthur-debert/scrub/pkg/deletion"
	"github.com/arthur-debert/scrub/pkg/filesystem"
	"github.com/arthur-debert/scrub/pkg/logging"
	"github.com/arthur-debert/scrub/pkg/targets"
	"github.com/arthur-debert/scrub/pkg/types"
	"github.com/arthur-debert/scrub/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// TargetLoader returns the ordered list of paths to delete
type TargetLoader func() ([]string, error)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.NewOS(), targets.Load)
}

func newRootCmd(fsys types.FS, loadTargets TargetLoader) *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		format    string
	)

	rootCmd := &cobra.Command{
		Use:     "scrub",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLoggerWithOutput(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, paths, err := prepare(cmd, format, loadTargets)
			if err != nil {
				return err
			}

			_, err = deletion.Run(deletion.RunOptions{
				Targets:  paths,
				FS:       fsys,
				In:       cmd.InOrStdin(),
				Renderer: renderer,
				Out:      cmd.OutOrStdout(),
				DryRun:   dryRun,
			})
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd(&format, loadTargets))

	return rootCmd
}

func prepare(cmd *cobra.Command, format string, loadTargets TargetLoader) (*ui.Renderer, []string, error) {
	f, err := ui.ParseFormat(format)
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrFormat, err)
	}

	renderer, err := ui.NewRenderer(f, cmd.OutOrStdout())
	if err != nil {
		return nil, nil, err
	}

	paths, err := loadTargets()
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrLoadTargets, err)
	}

	return renderer, paths, nil
}

func newListCmd(format *string, loadTargets TargetLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, paths, err := prepare(cmd, *format, loadTargets)
			if err != nil {
				return err
			}
			deletion.List(paths, renderer)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}
