package grid

import (
	"github.com/rshade/gridkit/internal/grid/focus"
	"github.com/rshade/gridkit/internal/grid/layout"
	"github.com/rshade/gridkit/internal/grid/selection"
	"github.com/rshade/gridkit/internal/grid/window"
)

// MountedRow is a row inside the mounted window.
type MountedRow[T any] struct {
	Row[T]

	Top       float64
	Height    float64
	Measured  bool
	Selected  bool
	Expanded  bool
	CanExpand bool
}

// Frame is one consistent snapshot of everything a renderer needs.
type Frame[T any] struct {
	Rows    []MountedRow[T]
	Range   window.Range
	Layout  layout.Layout
	Columns []Column // visual order

	ScrollOffset    float64
	ScrollX         float64
	ContainerWidth  float64
	ContainerHeight float64
	TotalHeight     float64

	RowCount      int
	SelectedCount int
	Header        selection.Aggregate

	// Empty is set when there are no rows; renderers show the empty-state
	// placeholder instead of a table shell.
	Empty bool

	// Focus is the focused element, if it is mounted.
	Focus *focus.Node
}

// Graph derives the keyboard navigation graph of the frame.
func (f Frame[T]) Graph() *focus.Graph {
	order := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		order[i] = c.ID
	}

	rows := make([]focus.RowNodes, 0, len(f.Rows)+1)
	if header := headerNodes(f.Columns); len(header.Nodes) > 0 && !f.Empty {
		rows = append(rows, header)
	}
	for i, r := range f.Rows {
		nodes := rowNodes(r, f.Columns)
		// The header sits above row 0; rows scrolled out above the window
		// separate it from the first mounted row.
		nodes.Gap = i == 0 && r.Index > 0
		rows = append(rows, nodes)
	}
	return focus.Build(order, rows...)
}

// Settle applies every pending input and returns the resulting frame. It is
// the single place where the visible range and column layout are
// recomputed, and it never schedules another frame by itself.
func (g *Grid[T]) Settle() Frame[T] {
	if g.evictPending {
		evicted := g.cache.Retain(func(id string) bool {
			_, ok := g.indexByID[id]
			return ok
		})
		if evicted > 0 {
			g.logger.Debug().Int("evicted", evicted).Msg("evicted measurements of removed rows")
		}
		g.evictPending = false
	}

	if g.layoutDirty {
		opts := []layout.Option{layout.WithLogger(g.logger)}
		if g.opts.IntegralWidths {
			opts = append(opts, layout.WithIntegralWidths())
		}
		g.layout = layout.Resolve(layoutColumns(g.columns), g.vp.width, opts...)
		g.layoutDirty = false
	}
	g.vp.scrollX = g.layout.ClampScrollX(g.vp.scrollX)
	g.vp.scroll = g.clampScroll(g.vp.scroll)

	rng := g.window.Compute(g.vp.scroll, g.vp.height)

	f := Frame[T]{
		Range:           rng,
		Layout:          g.layout,
		Columns:         g.visualColumns(),
		ScrollOffset:    rng.ScrollOffset,
		ScrollX:         g.vp.scrollX,
		ContainerWidth:  g.vp.width,
		ContainerHeight: g.vp.height,
		TotalHeight:     rng.TotalHeight,
		RowCount:        len(g.rows),
		SelectedCount:   g.selectedCount(),
		Header:          g.selected.Aggregate(g.ids),
		Empty:           len(g.rows) == 0,
	}

	f.Rows = make([]MountedRow[T], 0, rng.Len())
	for i := rng.Start; i < rng.End; i++ {
		row := g.rows[i]
		f.Rows = append(f.Rows, MountedRow[T]{
			Row:       row,
			Top:       rng.RowOffsets[i-rng.Start],
			Height:    g.window.Height(i),
			Measured:  g.cache.Measured(row.ID),
			Selected:  g.selected.Has(row.ID),
			Expanded:  g.expanded.Has(row.ID),
			CanExpand: g.canExpand(row),
		})
	}

	graph := f.Graph()
	if g.pendingFocus != nil {
		if _, ok := graph.Lookup(*g.pendingFocus); ok {
			g.focused, g.hasFocus = *g.pendingFocus, true
		} else {
			g.logger.Debug().Str("row_id", g.pendingFocus.RowID).Msg("dropping focus request for unmounted element")
		}
		g.pendingFocus = nil
	}
	if g.hasFocus {
		if n, ok := graph.Lookup(g.focused); ok {
			f.Focus = &n
		}
	}

	g.last = f
	g.settled = true
	g.dirty = false
	return f
}

func (g *Grid[T]) visualColumns() []Column {
	byID := make(map[string]Column, len(g.columns))
	for _, c := range g.columns {
		byID[c.ID] = c
	}
	out := make([]Column, 0, g.layout.Len())
	for _, p := range g.layout.Placements {
		out = append(out, byID[p.ColumnID])
	}
	return out
}

func (g *Grid[T]) selectedCount() int {
	n := 0
	for _, id := range g.ids {
		if g.selected.Has(id) {
			n++
		}
	}
	return n
}
