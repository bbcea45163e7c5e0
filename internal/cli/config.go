package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/gridkit/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after defaults, the global file, the project
overlay and environment overrides have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := config.GetGlobalConfig().YAML()
			if err != nil {
				return err
			}
			cmd.Print(string(out))
			return nil
		},
	}
}

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		Long: `Validates the layered configuration. Loading already rejects invalid files,
so reaching this command means the files parsed; validate re-checks the merged
result and reports where it came from.`,
		Example: `  # Validate the current configuration
  gridkit config validate

  # Validate a specific file
  gridkit --config ./gridkit.toml config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			cmd.Println("Configuration is valid")
			if verbose {
				printVerboseDetails(cmd, cfg)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")
	return cmd
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = "(global config directory)"
	}
	project := config.GetResolvedProjectDir()
	if project == "" {
		project = "(none)"
	}

	cmd.Printf("  version:      %s\n", cfg.Version)
	cmd.Printf("  config:       %s\n", path)
	cmd.Printf("  project dir:  %s\n", project)
	cmd.Printf("  overscan:     %d\n", cfg.Grid.Overscan)
	cmd.Printf("  row height:   %g\n", cfg.Grid.EstimatedRowHeight)
	cmd.Printf("  frame (ms):   %d\n", cfg.Grid.FrameIntervalMS)
	cmd.Printf("  log level:    %s\n", cfg.Logging.Level)
}
