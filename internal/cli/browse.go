package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/gridkit/internal/cli/pagination"
	"github.com/rshade/gridkit/internal/config"
	"github.com/rshade/gridkit/internal/dataset"
	"github.com/rshade/gridkit/internal/grid"
	"github.com/rshade/gridkit/internal/logging"
	"github.com/rshade/gridkit/internal/tui"
	"github.com/rshade/gridkit/internal/tui/gridview"
)

// browseOptions are the presentation flags shared by view and demo.
type browseOptions struct {
	plain bool
	page  pagination.Params
}

// browse shows ds interactively when the terminal allows it, otherwise as a
// static table of one page of rows.
func browse(ctx context.Context, w io.Writer, ds *dataset.Dataset, cfg *config.Config, opts browseOptions) error {
	if err := opts.page.Validate(); err != nil {
		return err
	}
	field, order, _ := pagination.ParseSort(opts.page.Sort)
	ds.Rows = pagination.NewRecordSorter().Sort(ds.Rows, field, order)

	mode := tui.DetectOutputMode(false, cfg.Theme.NoColor, opts.plain)
	log := logging.FromContext(ctx)
	log.Debug().
		Str("mode", mode.String()).
		Int("rows", len(ds.Rows)).
		Str("sort", opts.page.Sort).
		Msg("presenting dataset")

	if mode == tui.OutputModeInteractive {
		return runInteractive(ctx, ds, cfg)
	}
	_, err := io.WriteString(w, renderStatic(ctx, ds, mode, tui.TerminalWidth(), opts.page))
	return err
}

// gridviewConfig maps a dataset and the loaded configuration onto the
// terminal grid.
func gridviewConfig(ctx context.Context, ds *dataset.Dataset, cfg *config.Config) gridview.Config[dataset.Record] {
	log := logging.ComponentLogger(*logging.FromContext(ctx), "gridview")
	vc := gridview.Config[dataset.Record]{
		Columns:   ds.Schema.GridColumns(),
		GetRowID:  ds.Schema.RowID,
		CanExpand: ds.Schema.CanExpand,
		CellText: func(r dataset.Record, columnID string) string {
			return r.Text(columnID)
		},
		Overscan:           cfg.Grid.Overscan,
		EstimatedRowHeight: cfg.Grid.EstimatedRowHeight,
		FrameInterval:      time.Duration(cfg.Grid.FrameIntervalMS) * time.Millisecond,
		DetailTheme:        cfg.Theme.DetailStyle,
		Highlight:          cfg.Theme.Highlight && !cfg.Theme.NoColor,
		Logger:             &log,
	}
	if cfg.Theme.NoColor {
		plain := gridview.PlainStyles()
		vc.Styles = &plain
	}
	return vc
}

// browser hosts the grid and answers the row actions it emits.
type browser struct {
	grid   *gridview.Model[dataset.Record]
	logger zerolog.Logger
}

func (b *browser) Init() tea.Cmd {
	return b.grid.Init()
}

func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a, ok := msg.(gridview.ActionMsg); ok {
		b.logger.Info().Str("row_id", a.RowID).Str("action", a.Action).Msg("row action")
		b.grid.SetStatus(fmt.Sprintf("%s %s", a.Action, a.RowID))
		return b, nil
	}
	_, cmd := b.grid.Update(msg)
	return b, cmd
}

func (b *browser) View() string {
	return b.grid.View()
}

func runInteractive(ctx context.Context, ds *dataset.Dataset, cfg *config.Config) error {
	m := &browser{
		grid:   gridview.New(ds.Rows, gridviewConfig(ctx, ds, cfg)),
		logger: *logging.FromContext(ctx),
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive grid: %w", err)
	}
	return nil
}

// renderStatic settles one frame without overscan, scrolled to the page's
// first row and one line per row tall, and prints its plain columns as a
// table.
func renderStatic(
	ctx context.Context, ds *dataset.Dataset, mode tui.OutputMode, width int, page pagination.Params,
) string {
	height := page.PageSize
	if height <= 0 {
		height = len(ds.Rows)
	}

	log := logging.ComponentLogger(*logging.FromContext(ctx), "grid")
	g := grid.New(grid.Options[dataset.Record]{
		GetRowID:           ds.Schema.RowID,
		CanExpand:          ds.Schema.CanExpand,
		EstimatedRowHeight: 1,
		Overscan:           -1,
		IntegralWidths:     true,
		Logger:             &log,
	})
	g.SetColumns(ds.Schema.GridColumns())
	g.SetData(ds.Rows)
	g.Resize(float64(width), float64(height))
	g.ScrollTo(float64(page.Offset()))
	f := g.Settle()

	if f.Empty {
		return grid.LabelEmpty + "\n"
	}

	var headers []string
	var plain []grid.Column
	for _, c := range f.Columns {
		if c.Kind != grid.KindPlain {
			continue
		}
		plain = append(plain, c)
		title := c.Title
		if title == "" {
			title = c.ID
		}
		headers = append(headers, title)
	}

	// Scrolling clamps at the last full viewport, so a short last page
	// mounts rows from the previous one.
	rows := make([][]string, 0, len(f.Rows))
	for _, r := range f.Rows {
		if r.Index < page.Offset() {
			continue
		}
		cells := make([]string, len(plain))
		for i, c := range plain {
			cells[i] = r.Data.Text(c.ID)
		}
		rows = append(rows, cells)
	}

	out := tui.RenderTable(mode, headers, rows)
	if meta := pagination.NewMeta(page, f.RowCount, len(rows)); meta.Paged() {
		out += meta.String() + "\n"
	}
	return out
}
