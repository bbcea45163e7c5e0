package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/gridkit/internal/config"
	"github.com/rshade/gridkit/internal/dataset"
)

const defaultDemoRows = 10000

// NewDemoCmd creates the demo command, which browses generated rows.
func NewDemoCmd() *cobra.Command {
	var (
		rows int
		seed int64
		opts browseOptions
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse generated rows",
		Long: `Generates deterministic sample rows and shows them in the grid. Every third
row has no metadata and cannot be expanded; the actions column offers copy and
open buttons.`,
		Example: `  # 100k rows
  gridkit demo --rows 100000

  # Print the first 10 generated rows
  gridkit demo --plain --page-size 10`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rows < 0 {
				return fmt.Errorf("rows must be >= 0, got %d", rows)
			}
			ds := &dataset.Dataset{
				Rows:   dataset.Synthetic(rows, seed),
				Schema: dataset.DemoSchema(),
			}
			return browse(cmd.Context(), cmd.OutOrStdout(), ds, config.GetGlobalConfig(), opts)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", defaultDemoRows, "number of rows to generate")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	addBrowseFlags(cmd, &opts)
	return cmd
}
