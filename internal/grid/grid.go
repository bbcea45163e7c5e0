package grid

import (
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/rshade/gridkit/internal/grid/focus"
	"github.com/rshade/gridkit/internal/grid/layout"
	"github.com/rshade/gridkit/internal/grid/measure"
	"github.com/rshade/gridkit/internal/grid/selection"
	"github.com/rshade/gridkit/internal/grid/window"
)

// Row is a record in the current display order. Index shifts under sorting
// and filtering; ID does not.
type Row[T any] struct {
	ID    string
	Data  T
	Index int
}

type viewport struct {
	scroll  float64
	scrollX float64
	width   float64
	height  float64
}

// Grid is the engine state for one table. It is driven from a single event
// loop and is not safe for concurrent use.
type Grid[T any] struct {
	opts   Options[T]
	logger zerolog.Logger

	rows      []Row[T]
	ids       []string
	indexByID map[string]int

	columns     []Column
	layout      layout.Layout
	layoutDirty bool

	cache  *measure.Cache
	window *window.Windower

	selected *selection.Store
	expanded *selection.Store
	anchor   string

	vp viewport

	last         Frame[T]
	settled      bool
	dirty        bool
	evictPending bool

	focused      focus.Key
	hasFocus     bool
	pendingFocus *focus.Key
}

// New returns an empty grid.
func New[T any](opts Options[T]) *Grid[T] {
	g := &Grid[T]{
		opts:      opts,
		logger:    zerolog.Nop(),
		indexByID: make(map[string]int),
	}
	if opts.Logger != nil {
		g.logger = *opts.Logger
	}

	g.window = window.New(window.ResolveOverscan(opts.Overscan))
	g.cache = measure.NewCache(opts.EstimatedRowHeight,
		measure.WithLogger(g.logger),
		measure.WithChangeHook(g.onMeasured),
	)

	g.selected = newStore(opts.InitialSelection, opts.OnSelectionChange, g.invalidate)
	g.expanded = newStore(opts.InitialExpansion, opts.OnExpansionChange, g.invalidate)
	return g
}

func newStore(initial selection.Set, onChange selection.ChangeFunc, invalidate func()) *selection.Store {
	if onChange != nil {
		return selection.NewControlled(initial, onChange)
	}
	return selection.NewUncontrolled(initial, func(selection.Set) { invalidate() })
}

// SetData replaces the rows. Records are reconciled by identity: selection,
// expansion and measurements carry over for every id still present. When two
// records share an id the last one wins.
func (g *Grid[T]) SetData(items []T) {
	last := make(map[string]int, len(items))
	ids := make([]string, len(items))
	for i, item := range items {
		id := g.rowID(item, i)
		ids[i] = id
		if prev, dup := last[id]; dup {
			g.logger.Warn().Str("row_id", id).Int("first", prev).Int("second", i).Msg("duplicate row id, last record wins")
		}
		last[id] = i
	}

	g.rows = make([]Row[T], 0, len(last))
	g.ids = make([]string, 0, len(last))
	g.indexByID = make(map[string]int, len(last))
	for i, item := range items {
		id := ids[i]
		if last[id] != i {
			continue
		}
		idx := len(g.rows)
		g.rows = append(g.rows, Row[T]{ID: id, Data: item, Index: idx})
		g.ids = append(g.ids, id)
		g.indexByID[id] = idx
	}

	g.window.Reset(len(g.rows), g.estimateAt)
	g.evictPending = true
	g.invalidate()
}

func (g *Grid[T]) rowID(item T, index int) string {
	if g.opts.GetRowID == nil {
		return strconv.Itoa(index)
	}
	return g.opts.GetRowID(item)
}

func (g *Grid[T]) estimateAt(index int) float64 {
	return g.cache.Estimate(g.ids[index])
}

// SetColumns replaces the column schema.
func (g *Grid[T]) SetColumns(columns []Column) {
	g.columns = append([]Column(nil), columns...)
	g.layoutDirty = true
	g.invalidate()
}

// Columns returns the column schema in declared order.
func (g *Grid[T]) Columns() []Column {
	return append([]Column(nil), g.columns...)
}

// Resize sets the container size.
func (g *Grid[T]) Resize(width, height float64) {
	width = finiteOrZero(width)
	height = finiteOrZero(height)
	if width == g.vp.width && height == g.vp.height {
		return
	}
	if width != g.vp.width {
		g.layoutDirty = true
	}
	g.vp.width = width
	g.vp.height = height
	g.invalidate()
}

// ScrollTo sets the vertical scroll offset. It is clamped at the next Settle.
func (g *Grid[T]) ScrollTo(offset float64) {
	offset = finiteOrZero(offset)
	if offset == g.vp.scroll {
		return
	}
	g.vp.scroll = offset
	g.invalidate()
}

// ScrollBy moves the vertical scroll offset by delta.
func (g *Grid[T]) ScrollBy(delta float64) {
	g.ScrollTo(g.clampScroll(g.vp.scroll + finiteOrZero(delta)))
}

// ScrollToRow scrolls the least distance that brings the row into view.
func (g *Grid[T]) ScrollToRow(id string) bool {
	idx, ok := g.indexByID[id]
	if !ok {
		return false
	}
	top := g.window.OffsetOf(idx)
	bottom := top + g.window.Height(idx)
	switch {
	case top < g.vp.scroll:
		g.ScrollTo(top)
	case bottom > g.vp.scroll+g.vp.height:
		g.ScrollTo(bottom - g.vp.height)
	}
	return true
}

// ScrollXTo sets the horizontal scroll offset.
func (g *Grid[T]) ScrollXTo(offset float64) {
	offset = finiteOrZero(offset)
	if offset == g.vp.scrollX {
		return
	}
	g.vp.scrollX = offset
	g.invalidate()
}

// ScrollXBy moves the horizontal scroll offset by delta.
func (g *Grid[T]) ScrollXBy(delta float64) {
	g.ScrollXTo(g.layout.ClampScrollX(g.vp.scrollX + finiteOrZero(delta)))
}

// ReportHeight records the rendered height of a mounted row. Invalid heights
// are ignored. A change schedules a frame rather than updating the visible
// range immediately.
func (g *Grid[T]) ReportHeight(rowID string, height float64) {
	g.cache.Record(rowID, height)
}

func (g *Grid[T]) onMeasured(rowID string, height float64) {
	idx, ok := g.indexByID[rowID]
	if !ok {
		return
	}
	before := g.window.Height(idx)
	if !g.window.SetHeight(idx, height) {
		return
	}
	// Keep the rows on screen still when something above them grows.
	if g.settled && idx < g.last.Range.VisibleStart {
		g.vp.scroll += height - before
	}
	g.invalidate()
}

// Rows returns the rows in display order.
func (g *Grid[T]) Rows() []Row[T] {
	return g.rows
}

// RowCount returns the number of rows.
func (g *Grid[T]) RowCount() int {
	return len(g.rows)
}

// RowIDs returns the row ids in display order.
func (g *Grid[T]) RowIDs() []string {
	return append([]string(nil), g.ids...)
}

// RowByID returns the row with the given id.
func (g *Grid[T]) RowByID(id string) (Row[T], bool) {
	idx, ok := g.indexByID[id]
	if !ok {
		return Row[T]{}, false
	}
	return g.rows[idx], true
}

// Measurements exposes the measurement cache.
func (g *Grid[T]) Measurements() *measure.Cache {
	return g.cache
}

// Dirty reports whether inputs changed since the last Settle.
func (g *Grid[T]) Dirty() bool {
	return g.dirty
}

// LastFrame returns the most recently settled frame.
func (g *Grid[T]) LastFrame() Frame[T] {
	return g.last
}

func (g *Grid[T]) invalidate() {
	if g.dirty {
		return
	}
	g.dirty = true
	if g.opts.RequestFrame != nil {
		g.opts.RequestFrame()
	}
}

func (g *Grid[T]) clampScroll(offset float64) float64 {
	return math.Min(math.Max(0, offset), g.window.MaxScroll(g.vp.height))
}

func (g *Grid[T]) canExpand(row Row[T]) bool {
	return g.opts.CanExpand != nil && g.opts.CanExpand(row.Data)
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
