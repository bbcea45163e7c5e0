package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/gridkit/internal/config"
	"github.com/rshade/gridkit/internal/grid/window"
	"github.com/rshade/gridkit/internal/tui"
)

// defaultWindowRowHeight matches the estimate of a pixel-based renderer.
const defaultWindowRowHeight = 32

// ErrInvalidMeasurement is returned for a malformed --measure value.
var ErrInvalidMeasurement = errors.New("measurement must be index=height")

// NewWindowCmd creates the window command, which prints the rows a viewport
// mounts.
func NewWindowCmd() *cobra.Command {
	var (
		rows      int
		height    float64
		offset    float64
		rowHeight float64
		overscan  int
		measured  []string
		plain     bool
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the mounted row window for a viewport",
		Long: `Computes which rows a viewport of --height units scrolled to --offset would
mount, using --row-height for unmeasured rows and --measure for measured ones.
Overscan defaults to the configured value.`,
		Example: `  # 10k rows of 32 units, 600 unit viewport at offset 3200
  gridkit window --rows 10000 --height 600 --offset 3200

  # Row 10 measured at 132 units
  gridkit window --rows 100 --height 400 --measure 10=132`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("overscan") {
				overscan = config.GetGlobalConfig().Grid.Overscan
			}
			heights, err := parseMeasurements(measured)
			if err != nil {
				return err
			}

			w := window.New(window.ResolveOverscan(overscan))
			w.Reset(rows, func(int) float64 { return rowHeight })
			for i, h := range heights {
				w.SetHeight(i, h)
			}
			r := w.Compute(offset, height)

			mode := tui.DetectOutputMode(false, false, plain)
			if mode == tui.OutputModeInteractive {
				mode = tui.OutputModeStyled
			}
			return printWindow(cmd.OutOrStdout(), mode, w, r)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "number of rows")
	cmd.Flags().Float64Var(&height, "height", 0, "viewport height")
	cmd.Flags().Float64Var(&offset, "offset", 0, "scroll offset")
	cmd.Flags().Float64Var(&rowHeight, "row-height", defaultWindowRowHeight, "estimated row height")
	cmd.Flags().IntVar(&overscan, "overscan", window.DefaultOverscan, "rows mounted beyond each viewport edge (0 default, <0 none)")
	cmd.Flags().StringSliceVar(&measured, "measure", nil, "measured row heights as index=height")
	cmd.Flags().BoolVar(&plain, "plain", false, "print tab-separated output")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func parseMeasurements(values []string) (map[int]float64, error) {
	out := make(map[int]float64, len(values))
	for _, v := range values {
		idx, h, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMeasurement, v)
		}
		i, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMeasurement, v)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMeasurement, v)
		}
		out[i] = f
	}
	return out, nil
}

func printWindow(out io.Writer, mode tui.OutputMode, w *window.Windower, r window.Range) error {
	headers := []string{"index", "top", "height", "visible"}
	rows := make([][]string, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		top, _ := r.Offset(i)
		visible := i >= r.VisibleStart && i < r.VisibleEnd
		rows = append(rows, []string{
			strconv.Itoa(i),
			formatUnits(top),
			formatUnits(w.Height(i)),
			strconv.FormatBool(visible),
		})
	}

	if _, err := io.WriteString(out, tui.RenderTable(mode, headers, rows)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "mounted [%d,%d) visible [%d,%d) of %d rows, scroll %s of %s\n",
		r.Start, r.End, r.VisibleStart, r.VisibleEnd, w.RowCount(),
		formatUnits(r.ScrollOffset), formatUnits(r.TotalHeight))
	return err
}
