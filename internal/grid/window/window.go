package window

import "math"

// DefaultOverscan is the number of rows mounted beyond each edge of the
// viewport to avoid blank flashes during fast scrolling.
const DefaultOverscan = 5

// ResolveOverscan maps a configured overscan to the row count to mount. Zero
// selects DefaultOverscan; negative disables overscan.
func ResolveOverscan(n int) int {
	switch {
	case n == 0:
		return DefaultOverscan
	case n < 0:
		return 0
	default:
		return n
	}
}

// EstimateFunc returns the current height estimate of the row at index.
type EstimateFunc func(index int) float64

// Range describes the rows to mount. Index ranges are half-open.
type Range struct {
	// Start and End bound the mounted rows, overscan included.
	Start, End int
	// VisibleStart and VisibleEnd bound the rows intersecting the viewport.
	VisibleStart, VisibleEnd int
	// TotalHeight is the full scrollable extent.
	TotalHeight float64
	// ScrollOffset is the offset the range was computed for, after clamping.
	ScrollOffset float64
	// RowOffsets holds the top of each row in [Start, End).
	RowOffsets []float64
}

// Len returns the number of mounted rows.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether no rows are mounted.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains reports whether index is mounted.
func (r Range) Contains(index int) bool {
	return index >= r.Start && index < r.End
}

// Offset returns the top of a mounted row.
func (r Range) Offset(index int) (float64, bool) {
	if !r.Contains(index) {
		return 0, false
	}
	return r.RowOffsets[index-r.Start], true
}

// ComputeVisibleRange walks cumulative row heights from index 0 and returns
// the rows intersecting [scrollOffset, scrollOffset+containerHeight], widened
// by overscan rows on each side.
func ComputeVisibleRange(
	scrollOffset, containerHeight float64,
	rowCount int,
	estimate EstimateFunc,
	overscan int,
) Range {
	if rowCount <= 0 {
		return Range{}
	}

	heights := make([]float64, rowCount)
	tops := make([]float64, rowCount)
	total := 0.0
	for i := range heights {
		heights[i] = sanitize(estimate(i))
		tops[i] = total
		total += heights[i]
	}

	scroll := clampScroll(scrollOffset, total)

	first := rowCount - 1
	for i := range heights {
		if tops[i]+heights[i] > scroll {
			first = i
			break
		}
	}

	if containerHeight <= 0 || math.IsNaN(containerHeight) {
		return Range{
			Start: first, End: first,
			VisibleStart: first, VisibleEnd: first,
			TotalHeight: total, ScrollOffset: scroll,
		}
	}

	last := first
	bottom := scroll + containerHeight
	for i := first; i < rowCount; i++ {
		if tops[i] >= bottom {
			break
		}
		last = i
	}

	r := widen(first, last+1, rowCount, overscan)
	r.TotalHeight = total
	r.ScrollOffset = scroll
	r.RowOffsets = append([]float64(nil), tops[r.Start:r.End]...)
	return r
}

// Windower keeps row heights in a prefix-sum tree and answers visible-range
// queries without rescanning every row.
type Windower struct {
	overscan int
	heights  []float64
	tree     prefixTree
}

// New returns a Windower with the given overscan. Negative overscan is
// treated as zero.
func New(overscan int) *Windower {
	return &Windower{overscan: max(0, overscan)}
}

// Overscan returns the configured overscan.
func (w *Windower) Overscan() int {
	return w.overscan
}

// Reset rebuilds the height table for rowCount rows from estimate.
func (w *Windower) Reset(rowCount int, estimate EstimateFunc) {
	rowCount = max(0, rowCount)
	w.heights = make([]float64, rowCount)
	for i := range w.heights {
		w.heights[i] = sanitize(estimate(i))
	}
	w.tree = newPrefixTree(w.heights)
}

// RowCount returns the number of rows in the table.
func (w *Windower) RowCount() int {
	return len(w.heights)
}

// Height returns the height currently assumed for index.
func (w *Windower) Height(index int) float64 {
	if index < 0 || index >= len(w.heights) {
		return 0
	}
	return w.heights[index]
}

// SetHeight updates the height of one row and reports whether it changed.
func (w *Windower) SetHeight(index int, height float64) bool {
	if index < 0 || index >= len(w.heights) {
		return false
	}
	height = sanitize(height)
	delta := height - w.heights[index]
	if delta == 0 {
		return false
	}
	w.heights[index] = height
	w.tree.add(index, delta)
	return true
}

// TotalHeight returns the full scrollable extent.
func (w *Windower) TotalHeight() float64 {
	return w.tree.prefix(len(w.heights))
}

// OffsetOf returns the top of the row at index.
func (w *Windower) OffsetOf(index int) float64 {
	index = min(max(0, index), len(w.heights))
	return w.tree.prefix(index)
}

// IndexAt returns the row covering offset, clamped to the table.
func (w *Windower) IndexAt(offset float64) int {
	n := len(w.heights)
	if n == 0 {
		return 0
	}
	return min(w.tree.search(offset, true), n-1)
}

// MaxScroll returns the largest useful scroll offset for containerHeight.
func (w *Windower) MaxScroll(containerHeight float64) float64 {
	return math.Max(0, w.TotalHeight()-math.Max(0, containerHeight))
}

// Compute returns the mounted range for the given viewport. It agrees with
// ComputeVisibleRange over the same heights.
func (w *Windower) Compute(scrollOffset, containerHeight float64) Range {
	n := len(w.heights)
	if n == 0 {
		return Range{}
	}

	total := w.TotalHeight()
	scroll := clampScroll(scrollOffset, total)
	first := w.IndexAt(scroll)

	if containerHeight <= 0 || math.IsNaN(containerHeight) {
		return Range{
			Start: first, End: first,
			VisibleStart: first, VisibleEnd: first,
			TotalHeight: total, ScrollOffset: scroll,
		}
	}

	last := min(w.tree.search(scroll+containerHeight, false), n-1)
	last = max(last, first)

	r := widen(first, last+1, n, w.overscan)
	r.TotalHeight = total
	r.ScrollOffset = scroll
	r.RowOffsets = make([]float64, r.Len())
	top := w.tree.prefix(r.Start)
	for i := r.Start; i < r.End; i++ {
		r.RowOffsets[i-r.Start] = top
		top += w.heights[i]
	}
	return r
}

func widen(visibleStart, visibleEnd, rowCount, overscan int) Range {
	overscan = max(0, overscan)
	return Range{
		Start:        max(0, visibleStart-overscan),
		End:          min(rowCount, visibleEnd+overscan),
		VisibleStart: visibleStart,
		VisibleEnd:   visibleEnd,
	}
}

func clampScroll(scroll, total float64) float64 {
	if math.IsNaN(scroll) || scroll < 0 {
		return 0
	}
	return math.Min(scroll, total)
}

// sanitize keeps corrupt estimates out of the prefix sums.
func sanitize(h float64) float64 {
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return h
}
