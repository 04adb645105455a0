package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/buildinfo"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/config"
)

// Execute runs the mathboard CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// The root command wires up all subcommands (inspect, validate,
// roundtrip, autosave) and configures logging based on the --verbose
// flag. The logger is attached to the context and accessible to all
// commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "mathboard",
		Short:        "Mathboard inspects and validates geometry board snapshots",
		Long:         `Mathboard is a CLI tool for working with geometry board snapshot files: inspecting their contents, validating constraint consistency after a restore, and managing the autosave store.`,
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
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default "+config.DefaultFileName+")")

	root.AddCommand(newInspectCmd())
	root.AddCommand(newValidateCmd(&configPath))
	root.AddCommand(newRoundtripCmd())
	root.AddCommand(newAutosaveCmd(&configPath))

	return root.ExecuteContext(ctx)
}
