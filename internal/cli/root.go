// Package cli implements the gridkit command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/gridkit/internal/config"
	"github.com/rshade/gridkit/internal/logging"
)

// annotationInteractive marks commands that may take over the terminal.
// Their logs go to a file so they never draw over the grid.
const annotationInteractive = "gridkit/interactive"

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the gridkit CLI.
// It loads configuration, wires up logging and tracing, and registers the
// view, demo, layout, window and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "gridkit",
		Short:         "Virtualized data grid for the terminal",
		Long:          "gridkit: browse large JSON datasets in a virtualized, keyboard-driven terminal grid",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.gridkit/config.yaml)")
	cmd.PersistentFlags().String("log-file", "", "write logs to this file")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .gridkit/config.yaml")

	cmd.AddCommand(NewViewCmd(), NewDemoCmd(), NewLayoutCmd(), NewWindowCmd(), newConfigCmd())
	return cmd
}

const rootCmdExample = `  # Browse a JSON array or NDJSON file
  gridkit view resources.json

  # Browse with an explicit column schema
  gridkit view resources.ndjson --columns columns.yaml

  # Read rows from stdin
  cat resources.ndjson | gridkit view -

  # Try the grid with 100k generated rows
  gridkit demo --rows 100000

  # Show how columns resolve at a given width
  gridkit layout --columns columns.yaml --width 100

  # Show which rows a viewport mounts
  gridkit window --rows 10000 --height 600 --offset 3200

  # Create a project config
  gridkit --project-dir . config init

  # Show the effective configuration
  gridkit config show`

// loadConfig resolves the project directory and loads the layered
// configuration for the running command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	ctx := cmd.Context()
	flagDir, _ := cmd.Flags().GetString("project-dir")
	path, _ := cmd.Flags().GetString("config")

	startDir, err := os.Getwd()
	if err != nil {
		startDir = ""
	}
	projectDir := config.ResolveProjectDir(ctx, flagDir, startDir)
	config.SetResolvedProjectDir(projectDir)

	cfg, err := config.Load(ctx, config.LoadOptions{Path: path, ProjectDir: projectDir})
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
