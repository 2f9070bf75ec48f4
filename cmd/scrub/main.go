package main

import (
	"os"

	"github.com/arthur-debert/scrub/internal/cli"
	"github.com/arthur-debert/scrub/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	err := rootCmd.Execute()
	if cli.ShouldReport(err) {
		if renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr); rerr == nil {
			renderer.Error(err)
		}
	}
	os.Exit(cli.ExitCode(err))
}
