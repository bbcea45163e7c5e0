package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/gridkit/internal/cli/pagination"
	"github.com/rshade/gridkit/internal/config"
	"github.com/rshade/gridkit/internal/dataset"
)

// NewViewCmd creates the view command for browsing a JSON dataset.
func NewViewCmd() *cobra.Command {
	var (
		schemaPath string
		idField    string
		opts       browseOptions
	)

	cmd := &cobra.Command{
		Use:   "view <rows.json|rows.ndjson|->",
		Short: "Browse a JSON dataset in the grid",
		Long: `Loads rows from a JSON array or newline-delimited JSON objects and shows
them in the virtualized grid. Without --columns the columns are derived from
the fields present in the rows. Rows without an id get a positional one.

When stdout is not a terminal the rows are printed as a table instead, one
page at a time with --page and --page-size.`,
		Example: `  # Browse a file
  gridkit view resources.json

  # Use a column schema and a custom id field
  gridkit view resources.ndjson --columns columns.yaml --id-field urn

  # Print the second page of 20 rows, most expensive first
  gridkit view resources.json --plain --sort cost:desc --page 2 --page-size 20`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], schemaPath, idField, opts)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "columns", "", "column schema file (YAML or TOML)")
	cmd.Flags().StringVar(&idField, "id-field", "", "record field holding the row id (default \"id\")")
	addBrowseFlags(cmd, &opts)
	return cmd
}

func addBrowseFlags(cmd *cobra.Command, opts *browseOptions) {
	opts.page = *pagination.NewParams()
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print a static table instead of the interactive grid")
	cmd.Flags().StringVar(&opts.page.Sort, "sort", "", "sort rows by field, 'field' or 'field:desc'")
	cmd.Flags().IntVar(&opts.page.Page, "page", pagination.DefaultPage, "page to print in static mode")
	cmd.Flags().IntVar(&opts.page.PageSize, "page-size", 0, "rows per page in static mode (0 = all)")
}

func runView(cmd *cobra.Command, rowsPath, schemaPath, idField string, opts browseOptions) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	ds, err := dataset.Load(ctx, dataset.LoadOptions{
		RowsPath:    rowsPath,
		SchemaPath:  schemaPath,
		IDField:     idField,
		ColumnWidth: cfg.Grid.ColumnWidth,
	})
	if err != nil {
		return err
	}
	return browse(ctx, cmd.OutOrStdout(), ds, cfg, opts)
}
