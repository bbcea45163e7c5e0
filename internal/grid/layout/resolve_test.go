package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pinnedColumns declares pins out of visual order on purpose.
func pinnedColumns() []Column {
	return []Column{
		{ID: "r1", Sizing: Fixed(8), Pin: PinRight},
		{ID: "l1", Sizing: Fixed(4), Pin: PinLeft},
		{ID: "m", Sizing: Flexible(1, 50, 0)},
		{ID: "l2", Sizing: Fixed(6), Pin: PinLeft},
		{ID: "r2", Sizing: Fixed(5), Pin: PinRight},
	}
}

func mustPlacement(t *testing.T, l Layout, id string) Placement {
	t.Helper()
	p, ok := l.Placement(id)
	require.True(t, ok, "missing placement %q", id)
	return p
}

func TestResolve_NoColumns(t *testing.T) {
	l := Resolve(nil, 120)

	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Overflow)
	assert.InDelta(t, 0.0, l.ContentWidth, 0)
	_, ok := l.Placement("anything")
	assert.False(t, ok)
}

func TestResolve_WidthDistribution(t *testing.T) {
	tests := []struct {
		name     string
		columns  []Column
		width    float64
		want     map[string]float64
		overflow bool
	}{
		{
			name: "fixed and equal flexible",
			columns: []Column{
				{ID: "sel", Sizing: Fixed(4)},
				{ID: "name", Sizing: Flexible(1, 10, 0)},
				{ID: "size", Sizing: Flexible(1, 10, 0)},
			},
			width: 100,
			want:  map[string]float64{"sel": 4, "name": 48, "size": 48},
		},
		{
			name: "max clamp surplus is redistributed",
			columns: []Column{
				{ID: "a", Sizing: Flexible(1, 0, 20)},
				{ID: "b", Sizing: Flexible(1, 0, 0)},
				{ID: "c", Sizing: Flexible(2, 0, 0)},
			},
			width: 100,
			want:  map[string]float64{"a": 20, "b": 80.0 / 3, "c": 160.0 / 3},
		},
		{
			name: "minimum widths win on deficit",
			columns: []Column{
				{ID: "f", Sizing: Fixed(10)},
				{ID: "a", Sizing: Flexible(1, 30, 0)},
				{ID: "b", Sizing: Flexible(1, 30, 0)},
			},
			width:    50,
			want:     map[string]float64{"f": 10, "a": 30, "b": 30},
			overflow: true,
		},
		{
			name: "min above max clamps to min",
			columns: []Column{
				{ID: "bad", Sizing: Flexible(1, 40, 20)},
			},
			width: 100,
			want:  map[string]float64{"bad": 40},
		},
		{
			name: "negative fixed width clamps to zero",
			columns: []Column{
				{ID: "neg", Sizing: Fixed(-5)},
				{ID: "rest", Sizing: Flexible(1, 0, 0)},
			},
			width: 30,
			want:  map[string]float64{"neg": 0, "rest": 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Resolve(tt.columns, tt.width)
			for id, w := range tt.want {
				assert.InDelta(t, w, mustPlacement(t, l, id).Width, 1e-9, id)
			}
			assert.Equal(t, tt.overflow, l.Overflow)
		})
	}
}

func TestResolve_IntegralWidthsKeepSum(t *testing.T) {
	columns := []Column{
		{ID: "a", Sizing: Flexible(1, 0, 20)},
		{ID: "b", Sizing: Flexible(1, 0, 0)},
		{ID: "c", Sizing: Flexible(2, 0, 0)},
	}

	l := Resolve(columns, 100, WithIntegralWidths())

	assert.InDelta(t, 20.0, mustPlacement(t, l, "a").Width, 0)
	assert.InDelta(t, 27.0, mustPlacement(t, l, "b").Width, 0)
	assert.InDelta(t, 53.0, mustPlacement(t, l, "c").Width, 0)
	assert.InDelta(t, 100.0, l.ContentWidth, 0)
}

func TestResolve_VisualOrderAndLeftOffsets(t *testing.T) {
	l := Resolve(pinnedColumns(), 40)

	ids := make([]string, 0, l.Len())
	for _, p := range l.Placements {
		ids = append(ids, p.ColumnID)
	}
	assert.Equal(t, []string{"l1", "l2", "m", "r1", "r2"}, ids)

	l1 := mustPlacement(t, l, "l1")
	l2 := mustPlacement(t, l, "l2")
	require.NotNil(t, l1.Left)
	require.NotNil(t, l2.Left)
	assert.InDelta(t, 0.0, *l1.Left, 0)
	assert.InDelta(t, 4.0, *l2.Left, 0)
	assert.True(t, l1.Sticky)
	assert.True(t, l2.Sticky)
	assert.InDelta(t, 10.0, mustPlacement(t, l, "m").X, 0)
}

func TestResolve_RightPinsStickyOnlyWithOverflow(t *testing.T) {
	wide := Resolve(pinnedColumns(), 200)
	require.False(t, wide.Overflow)
	for _, id := range []string{"r1", "r2"} {
		p := mustPlacement(t, wide, id)
		assert.False(t, p.Sticky, id)
		assert.Nil(t, p.Right, id)
		assert.Equal(t, ZScrolling, p.ZIndex, id)
		assert.Equal(t, ZHeader, p.HeaderZIndex, id)
	}

	narrow := Resolve(pinnedColumns(), 40)
	require.True(t, narrow.Overflow)
	assert.InDelta(t, 73.0, narrow.ContentWidth, 0)

	r1 := mustPlacement(t, narrow, "r1")
	r2 := mustPlacement(t, narrow, "r2")
	require.NotNil(t, r1.Right)
	require.NotNil(t, r2.Right)
	assert.InDelta(t, 5.0, *r1.Right, 0)
	assert.InDelta(t, 0.0, *r2.Right, 0)
	assert.True(t, r1.Sticky)
	assert.True(t, r2.Sticky)
}

func TestResolve_PinnedOffsetsMonotonicWithoutOverlap(t *testing.T) {
	columns := []Column{
		{ID: "a", Sizing: Fixed(3), Pin: PinLeft},
		{ID: "b", Sizing: Flexible(1, 7, 9), Pin: PinLeft},
		{ID: "body", Sizing: Flexible(1, 80, 0)},
		{ID: "x", Sizing: Fixed(4), Pin: PinRight},
		{ID: "y", Sizing: Flexible(1, 6, 6), Pin: PinRight},
		{ID: "z", Sizing: Fixed(2), Pin: PinRight},
	}
	l := Resolve(columns, 60)
	require.True(t, l.Overflow)

	var lefts, rights []Placement
	for _, p := range l.Placements {
		switch p.Pin {
		case PinLeft:
			lefts = append(lefts, p)
		case PinRight:
			rights = append(rights, p)
		case PinNone:
		}
	}

	for i := 1; i < len(lefts); i++ {
		assert.GreaterOrEqual(t, *lefts[i].Left, *lefts[i-1].Left+lefts[i-1].Width)
	}
	for i := 0; i+1 < len(rights); i++ {
		assert.GreaterOrEqual(t, *rights[i].Right, *rights[i+1].Right+rights[i+1].Width)
	}
}

func TestResolve_StackingTiers(t *testing.T) {
	l := Resolve(pinnedColumns(), 40)

	m := mustPlacement(t, l, "m")
	l1 := mustPlacement(t, l, "l1")
	r1 := mustPlacement(t, l, "r1")

	assert.Greater(t, l1.ZIndex, m.ZIndex)
	assert.Greater(t, r1.ZIndex, m.ZIndex)
	assert.Greater(t, l1.HeaderZIndex, l1.ZIndex)
	assert.Greater(t, m.HeaderZIndex, l1.ZIndex)
	assert.Greater(t, l1.HeaderZIndex, m.HeaderZIndex)
}

func TestLayout_ScreenX(t *testing.T) {
	l := Resolve(pinnedColumns(), 40)
	require.InDelta(t, 33.0, l.MaxScrollX(), 0)

	tests := []struct {
		scroll float64
		want   map[string]float64
	}{
		{scroll: 0, want: map[string]float64{"l1": 0, "l2": 4, "m": 10, "r1": 27, "r2": 35}},
		{scroll: 10, want: map[string]float64{"l1": 0, "l2": 4, "m": 0, "r1": 27, "r2": 35}},
		{scroll: 500, want: map[string]float64{"l1": 0, "l2": 4, "m": -23, "r1": 27, "r2": 35}},
	}

	for _, tt := range tests {
		for id, want := range tt.want {
			assert.InDelta(t, want, l.ScreenX(mustPlacement(t, l, id), tt.scroll), 1e-9, "%s@%v", id, tt.scroll)
		}
	}

	wide := Resolve(pinnedColumns(), 200)
	assert.InDelta(t, 0.0, wide.MaxScrollX(), 0)
	assert.InDelta(t, mustPlacement(t, wide, "r1").X, wide.ScreenX(mustPlacement(t, wide, "r1"), 50), 0)
}

func TestParsePin(t *testing.T) {
	assert.Equal(t, PinLeft, ParsePin("left"))
	assert.Equal(t, PinRight, ParsePin("right"))
	assert.Equal(t, PinNone, ParsePin(""))
	assert.Equal(t, "right", PinRight.String())
}
