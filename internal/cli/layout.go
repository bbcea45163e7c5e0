package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/gridkit/internal/dataset"
	"github.com/rshade/gridkit/internal/grid/layout"
	"github.com/rshade/gridkit/internal/logging"
	"github.com/rshade/gridkit/internal/tui"
)

// NewLayoutCmd creates the layout command, which prints resolved column
// geometry for a schema and container width.
func NewLayoutCmd() *cobra.Command {
	var (
		schemaPath string
		width      float64
		scrollX    float64
		integral   bool
		plain      bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the resolved column layout",
		Long: `Resolves the column schema at the given container width and prints each
column's width, content position, on-screen position at --scroll-x, stickiness
and stacking order. Without --columns the demo schema is used.`,
		Example: `  # Resolve a schema at 100 cells
  gridkit layout --columns columns.yaml --width 100

  # Watch pinned columns stick while scrolled
  gridkit layout --width 40 --scroll-x 25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema := dataset.DemoSchema()
			if schemaPath != "" {
				var err error
				if schema, err = dataset.LoadSchema(schemaPath); err != nil {
					return err
				}
			}
			if width <= 0 {
				width = float64(tui.TerminalWidth())
			}

			opts := []layout.Option{layout.WithLogger(*logging.FromContext(cmd.Context()))}
			if integral {
				opts = append(opts, layout.WithIntegralWidths())
			}
			cols := schema.GridColumns()
			lcols := make([]layout.Column, len(cols))
			for i, c := range cols {
				lcols[i] = c.Column
			}
			l := layout.Resolve(lcols, width, opts...)

			mode := tui.DetectOutputMode(false, false, plain)
			if mode == tui.OutputModeInteractive {
				mode = tui.OutputModeStyled
			}
			return printLayout(cmd.OutOrStdout(), mode, l, scrollX)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "columns", "", "column schema file (YAML or TOML)")
	cmd.Flags().Float64Var(&width, "width", 0, "container width (default terminal width)")
	cmd.Flags().Float64Var(&scrollX, "scroll-x", 0, "horizontal scroll offset")
	cmd.Flags().BoolVar(&integral, "integral", true, "round flexible widths to whole cells")
	cmd.Flags().BoolVar(&plain, "plain", false, "print tab-separated output")
	return cmd
}

func printLayout(w io.Writer, mode tui.OutputMode, l layout.Layout, scrollX float64) error {
	headers := []string{"column", "pin", "width", "x", "screen x", "sticky", "z", "header z"}
	rows := make([][]string, 0, l.Len())
	for _, p := range l.Placements {
		rows = append(rows, []string{
			p.ColumnID,
			p.Pin.String(),
			formatUnits(p.Width),
			formatUnits(p.X),
			formatUnits(l.ScreenX(p, scrollX)),
			strconv.FormatBool(p.Sticky),
			strconv.Itoa(p.ZIndex),
			strconv.Itoa(p.HeaderZIndex),
		})
	}

	if _, err := io.WriteString(w, tui.RenderTable(mode, headers, rows)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "container %s, content %s, overflow %t, scroll-x %s of %s\n",
		formatUnits(l.ContainerWidth), formatUnits(l.ContentWidth), l.Overflow,
		formatUnits(l.ClampScrollX(scrollX)), formatUnits(l.MaxScrollX()))
	return err
}

func formatUnits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
