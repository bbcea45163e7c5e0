package grid

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridkit/internal/grid/focus"
	"github.com/rshade/gridkit/internal/grid/layout"
	"github.com/rshade/gridkit/internal/grid/selection"
)

type record struct {
	ID         string
	Name       string
	Expandable bool
}

func records(n int) []record {
	out := make([]record, n)
	for i := range out {
		out[i] = record{ID: fmt.Sprintf("r%d", i), Name: fmt.Sprintf("name-%d", i), Expandable: i%2 == 0}
	}
	return out
}

func testColumns() []Column {
	return []Column{
		{Column: layout.Column{ID: "select", Sizing: layout.Fixed(3), Pin: layout.PinLeft}, Kind: KindSelection},
		{Column: layout.Column{ID: "name", Sizing: layout.Flexible(1, 10, 0)}, Title: "Name"},
		{Column: layout.Column{ID: "expand", Sizing: layout.Fixed(3), Pin: layout.PinRight}, Kind: KindExpander},
	}
}

func newTestGrid(n int, mutate func(*Options[record])) *Grid[record] {
	opts := Options[record]{
		GetRowID:           func(r record) string { return r.ID },
		CanExpand:          func(r record) bool { return r.Expandable },
		EstimatedRowHeight: 32,
	}
	if mutate != nil {
		mutate(&opts)
	}
	g := New(opts)
	g.SetColumns(testColumns())
	g.SetData(records(n))
	g.Resize(80, 400)
	return g
}

func TestGrid_ConcreteWindowScenario(t *testing.T) {
	g := newTestGrid(150, nil)

	f := g.Settle()
	assert.Equal(t, 0, f.Range.Start)
	assert.Equal(t, 13, f.Range.VisibleEnd)
	assert.Equal(t, 18, f.Range.End)
	assert.Len(t, f.Rows, 18)
	assert.InDelta(t, 4800.0, f.TotalHeight, 0)

	g.ScrollTo(3200)
	f = g.Settle()
	assert.Equal(t, 100, f.Range.VisibleStart)
	assert.Equal(t, 95, f.Rows[0].Index)
	assert.InDelta(t, 3040.0, f.Rows[0].Top, 0)
}

func TestGrid_ScrollIsClamped(t *testing.T) {
	g := newTestGrid(150, nil)

	g.ScrollTo(1e9)
	f := g.Settle()
	assert.InDelta(t, 4400.0, f.ScrollOffset, 0)
	assert.Equal(t, 150, f.Range.End)

	g.ScrollBy(-1e9)
	f = g.Settle()
	assert.InDelta(t, 0.0, f.ScrollOffset, 0)
}

func TestGrid_RequestsAreCoalescedUntilSettle(t *testing.T) {
	requests := 0
	g := newTestGrid(150, func(o *Options[record]) {
		o.RequestFrame = func() { requests++ }
	})
	assert.Equal(t, 1, requests)

	g.ScrollTo(10)
	g.ScrollTo(20)
	g.ReportHeight("r0", 40)
	assert.Equal(t, 1, requests)

	g.Settle()
	assert.False(t, g.Dirty())

	g.ScrollTo(30)
	assert.Equal(t, 2, requests)
}

func TestGrid_MeasurementsFeedTheWindow(t *testing.T) {
	g := newTestGrid(150, nil)
	g.Settle()

	g.ReportHeight("r3", 96)
	g.ReportHeight("r4", math.NaN())
	f := g.Settle()

	assert.InDelta(t, 4864.0, f.TotalHeight, 0)
	assert.True(t, f.Rows[3].Measured)
	assert.InDelta(t, 96.0, f.Rows[3].Height, 0)
	assert.False(t, f.Rows[4].Measured)
	assert.InDelta(t, 32.0*3+96, f.Rows[4].Top, 0)
}

func TestGrid_MeasurementAboveViewportKeepsRowsStill(t *testing.T) {
	g := newTestGrid(150, nil)
	g.ScrollTo(3200)
	g.Settle()

	g.ReportHeight("r10", 132)
	f := g.Settle()

	assert.InDelta(t, 3300.0, f.ScrollOffset, 0)
	assert.Equal(t, 100, f.Range.VisibleStart)
	assert.InDelta(t, 4900.0, f.TotalHeight, 0)
}

func TestGrid_ReconcilesByRowID(t *testing.T) {
	g := newTestGrid(10, nil)
	g.ToggleSelected("r5")
	_, ok := g.ToggleExpanded("r4")
	require.True(t, ok)
	g.ReportHeight("r4", 90)
	g.Settle()

	reversed := records(10)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	g.SetData(reversed)
	f := g.Settle()

	byID := map[string]MountedRow[record]{}
	for _, r := range f.Rows {
		byID[r.ID] = r
	}
	assert.True(t, byID["r5"].Selected)
	assert.Equal(t, 4, byID["r5"].Index)
	assert.True(t, byID["r4"].Expanded)
	assert.InDelta(t, 90.0, byID["r4"].Height, 0)
	assert.False(t, byID["r6"].Selected)
}

func TestGrid_EvictsMeasurementsLazily(t *testing.T) {
	g := newTestGrid(150, nil)
	g.ReportHeight("r149", 50)
	g.Settle()

	g.SetData(records(100))
	assert.True(t, g.Measurements().Measured("r149"), "eviction waits for the next frame")

	g.Settle()
	assert.False(t, g.Measurements().Measured("r149"))
}

func TestGrid_DuplicateIDsLastWriteWins(t *testing.T) {
	g := newTestGrid(0, nil)
	g.SetData([]record{
		{ID: "a", Name: "first"},
		{ID: "b", Name: "b"},
		{ID: "a", Name: "second"},
	})

	assert.Equal(t, 2, g.RowCount())
	row, ok := g.RowByID("a")
	require.True(t, ok)
	assert.Equal(t, "second", row.Data.Name)
	assert.Equal(t, []string{"b", "a"}, g.RowIDs())
}

func TestGrid_EmptyData(t *testing.T) {
	g := newTestGrid(0, nil)
	f := g.Settle()

	assert.True(t, f.Empty)
	assert.Empty(t, f.Rows)
	assert.InDelta(t, 0.0, f.TotalHeight, 0)
	assert.Equal(t, selection.None, f.Header)
	assert.Equal(t, 0, f.Graph().Len())
	assert.Equal(t, "status \"No rows to display\"\n", f.Describe(nil))
}

func TestGrid_SelectionAggregateScenario(t *testing.T) {
	g := newTestGrid(5, nil)

	g.ToggleSelected("r1")
	g.ToggleSelected("r3")
	assert.Equal(t, selection.Some, g.Aggregate())

	g.ToggleAll()
	assert.Equal(t, selection.All, g.Aggregate())
	assert.Equal(t, 5, g.Settle().SelectedCount)

	g.ToggleSelected("r2")
	assert.Equal(t, selection.Some, g.Aggregate())
}

func TestGrid_SelectRangeToUsesAnchor(t *testing.T) {
	g := newTestGrid(10, nil)

	g.ToggleSelected("r6")
	g.SelectRangeTo("r2")

	assert.Equal(t, []string{"r2", "r3", "r4", "r5", "r6"}, g.Selection().IDs())
}

func TestGrid_ControlledSelection(t *testing.T) {
	var emitted []selection.Set
	g := newTestGrid(5, func(o *Options[record]) {
		o.InitialSelection = selection.NewSet("r0")
		o.OnSelectionChange = func(s selection.Set) { emitted = append(emitted, s) }
	})

	g.ToggleSelected("r1")
	require.Len(t, emitted, 1)
	assert.Equal(t, []string{"r0", "r1"}, emitted[0].IDs())
	assert.False(t, g.IsSelected("r1"))

	g.SyncSelection(emitted[0])
	f := g.Settle()
	assert.True(t, f.Rows[1].Selected)
	assert.Equal(t, selection.Some, f.Header)
}

func TestGrid_SelectionOfUnmountedRow(t *testing.T) {
	g := newTestGrid(150, nil)
	f := g.Settle()
	require.False(t, f.Range.Contains(120))

	g.ToggleSelected("r120")
	g.ScrollTo(120 * 32)
	f = g.Settle()

	for _, r := range f.Rows {
		if r.ID == "r120" {
			assert.True(t, r.Selected)
			return
		}
	}
	t.Fatal("r120 not mounted")
}

func TestGrid_ExpansionRequiresCapability(t *testing.T) {
	g := newTestGrid(4, nil)

	_, ok := g.ToggleExpanded("r1")
	assert.False(t, ok)
	assert.False(t, g.IsExpanded("r1"))

	_, ok = g.ToggleExpanded("missing")
	assert.False(t, ok)

	_, ok = g.ToggleExpanded("r2")
	assert.True(t, ok)
	assert.True(t, g.IsExpanded("r2"))
	assert.False(t, g.IsSelected("r2"), "expansion and selection are independent")
}

func TestGrid_KeyboardNavigation(t *testing.T) {
	g := newTestGrid(150, nil)
	g.Settle()

	n, ok := g.FocusFirst()
	require.True(t, ok)
	assert.Equal(t, focus.HeaderRowID, n.RowID)
	assert.Equal(t, LabelSelectAll, n.Label)

	n, ok = g.Navigate(focus.Down)
	require.True(t, ok)
	assert.Equal(t, focus.Key{RowID: "r0", ColumnID: "select"}, n.Key())

	n, ok = g.Navigate(focus.Right)
	require.True(t, ok)
	assert.Equal(t, "expand", n.ColumnID)
	assert.Equal(t, LabelExpandRow, n.Label)

	_, ok = g.Navigate(focus.Down)
	assert.False(t, ok, "r1 cannot expand, so it has no expander to move to")
	cur, ok := g.Focused()
	require.True(t, ok)
	assert.Equal(t, "r0", cur.RowID, "a miss leaves focus in place")

	_, ok = g.Navigate(focus.Left)
	require.True(t, ok)
	down, ok := g.Navigate(focus.Down)
	require.True(t, ok)
	up, ok := g.Navigate(focus.Up)
	require.True(t, ok)
	assert.Equal(t, "r1", down.RowID)
	assert.Equal(t, "r0", up.RowID)
}

func TestGrid_NavigationStopsAtMountedWindow(t *testing.T) {
	g := newTestGrid(150, nil)
	f := g.Settle()
	last := f.Rows[len(f.Rows)-1]

	g.RequestFocus(focus.Key{RowID: last.ID, ColumnID: "select"})
	g.Settle()

	_, ok := g.Navigate(focus.Down)
	assert.False(t, ok)

	n, ok := g.Navigate(focus.Up)
	require.True(t, ok)
	n2, ok := g.Navigate(focus.Down)
	require.True(t, ok)
	assert.Equal(t, last.ID, n2.RowID)
	assert.NotEqual(t, n.RowID, n2.RowID)
}

func TestGrid_UpFromScrolledWindowDoesNotReachHeader(t *testing.T) {
	g := newTestGrid(150, nil)
	g.ScrollTo(3200)
	f := g.Settle()
	first := f.Rows[0]
	require.Equal(t, 95, first.Index)

	g.RequestFocus(focus.Key{RowID: first.ID, ColumnID: "select"})
	g.Settle()

	_, ok := g.Navigate(focus.Up)
	assert.False(t, ok, "row 94 is not mounted")
	cur, ok := g.Focused()
	require.True(t, ok)
	assert.Equal(t, first.ID, cur.RowID)

	g.RequestFocus(focus.Key{RowID: focus.HeaderRowID, ColumnID: "select"})
	g.Settle()
	_, ok = g.Navigate(focus.Down)
	assert.False(t, ok, "row 0 is not mounted")
}

func TestGrid_FocusOnScrolledAwayRowIsNoOp(t *testing.T) {
	g := newTestGrid(150, nil)
	g.Settle()
	g.RequestFocus(focus.Key{RowID: "r2", ColumnID: "select"})
	g.Settle()

	g.ScrollTo(3200)
	g.Settle()

	_, ok := g.Focused()
	assert.False(t, ok)
	for _, dir := range []focus.Direction{focus.Up, focus.Down, focus.Left, focus.Right} {
		_, ok = g.Navigate(dir)
		assert.False(t, ok)
	}
}

func TestGrid_StaleFocusRequestIsDropped(t *testing.T) {
	g := newTestGrid(150, nil)
	g.Settle()

	g.RequestFocus(focus.Key{RowID: "r140", ColumnID: "select"})
	f := g.Settle()

	assert.Nil(t, f.Focus)
	_, ok := g.Focused()
	assert.False(t, ok)
}

func TestGrid_Activate(t *testing.T) {
	g := newTestGrid(0, nil)
	g.SetColumns(append(testColumns(), Column{
		Column:  layout.Column{ID: "actions", Sizing: layout.Fixed(14)},
		Kind:    KindActions,
		Actions: []string{"copy", "open"},
	}))
	g.SetData(records(3))
	g.Settle()

	_, ok := g.Activate(focus.Key{RowID: focus.HeaderRowID, ColumnID: "select"})
	require.True(t, ok)
	assert.Equal(t, selection.All, g.Aggregate())

	_, ok = g.Activate(focus.Key{RowID: "r0", ColumnID: "expand"})
	require.True(t, ok)
	assert.True(t, g.IsExpanded("r0"))

	act, ok := g.Activate(focus.Key{RowID: "r1", ColumnID: "actions", Slot: 1})
	require.True(t, ok)
	assert.Equal(t, "open", act.Action)

	_, ok = g.Activate(focus.Key{RowID: "r1", ColumnID: "expand"})
	assert.False(t, ok, "no expander is mounted for r1")

	g.Settle()
	f := g.LastFrame()
	require.NotNil(t, f.Rows)
	assert.True(t, f.Rows[0].Expanded)
}

func TestGrid_LayoutFollowsContainerWidth(t *testing.T) {
	g := newTestGrid(3, nil)

	f := g.Settle()
	p, ok := f.Layout.Placement("expand")
	require.True(t, ok)
	assert.False(t, f.Layout.Overflow)
	assert.False(t, p.Sticky)

	g.Resize(12, 400)
	f = g.Settle()
	p, _ = f.Layout.Placement("expand")
	assert.True(t, f.Layout.Overflow)
	assert.True(t, p.Sticky)

	g.ScrollXBy(100)
	f = g.Settle()
	assert.InDelta(t, f.Layout.MaxScrollX(), f.ScrollX, 0)
}

func TestFrame_Describe(t *testing.T) {
	g := newTestGrid(2, nil)
	g.ToggleSelected("r0")
	f := g.Settle()

	want := `rowgroup
  row
    columnheader [checkbox "select all" mixed]
    columnheader "Name"
    columnheader ""
row r0
  cell [checkbox "select row" checked]
  cell "name-0"
  cell [button "expand row"]
row r1
  cell [checkbox "select row" unchecked]
  cell "name-1"
  cell
`
	got := f.Describe(func(r Row[record], c Column) string { return r.Data.Name })
	assert.Equal(t, want, got)
}
