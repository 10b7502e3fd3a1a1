package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pegflow/daxport/pkg/buildinfo"
)

// newRootCmd builds the daxport root command with all subcommands attached.
// Logging level is configured from the --verbose flag in PersistentPreRun
// and the resulting logger is attached to the command context.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "daxport",
		Short:        "daxport renders workflow graphs as abstract DAG XML",
		Long:         `daxport converts workflow dependency graphs into the abstract DAG XML format consumed by scientific workflow planners, with DOT, SVG, and PNG previews for quick structural checks.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newExportCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the daxport CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The passed context is propagated to all commands, so cancelling it (for
// example on SIGINT) aborts long-running renders and shuts the server down.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
