package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var fiveRows = []string{"r1", "r2", "r3", "r4", "r5"}

func TestAggregateOf_Scenario(t *testing.T) {
	s := NewSet("r1", "r3")
	assert.Equal(t, Some, AggregateOf(s, fiveRows))

	s = NewSet(fiveRows...)
	assert.Equal(t, All, AggregateOf(s, fiveRows))

	s = Toggle(s, "r4")
	assert.Equal(t, Some, AggregateOf(s, fiveRows))

	assert.Equal(t, None, AggregateOf(NewSet(), fiveRows))
	assert.Equal(t, None, AggregateOf(NewSet("r1"), nil))
}

func TestAggregateOf_IgnoresRowsOutsideCurrentSet(t *testing.T) {
	s := NewSet("gone", "r1", "r2", "r3", "r4", "r5")
	assert.Equal(t, All, AggregateOf(s, fiveRows))

	assert.Equal(t, None, AggregateOf(NewSet("gone"), fiveRows))
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	s := NewSet("r1")
	next := Toggle(s, "r2")

	assert.True(t, next.Has("r2"))
	assert.False(t, s.Has("r2"))

	back := Toggle(next, "r2")
	assert.True(t, back.Equal(s))
}

func TestToggleAll_Transitions(t *testing.T) {
	tests := []struct {
		name  string
		start Set
		want  Set
	}{
		{"none selects all", NewSet(), NewSet(fiveRows...)},
		{"some selects all", NewSet("r2"), NewSet(fiveRows...)},
		{"all clears", NewSet(fiveRows...), NewSet()},
		{"stale ids survive clearing", NewSet("gone", "r1", "r2", "r3", "r4", "r5"), NewSet("gone")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToggleAll(tt.start, fiveRows)
			assert.True(t, got.Equal(tt.want), "got %v", got.IDs())
		})
	}
}

func TestToggleAll_RoundTripFromNoneAndAll(t *testing.T) {
	starts := []Set{
		NewSet(),
		NewSet(fiveRows...),
		NewSet("gone"),
		NewSet("gone", "r1", "r2", "r3", "r4", "r5"),
	}

	for _, s := range starts {
		agg := AggregateOf(s, fiveRows)
		got := ToggleAll(ToggleAll(s, fiveRows), fiveRows)
		assert.True(t, got.Equal(s), "aggregate %s: got %v want %v", agg, got.IDs(), s.IDs())
	}
}

func TestToggleAll_IndeterminateSettlesOnNone(t *testing.T) {
	s := NewSet("r1", "r3")
	once := ToggleAll(s, fiveRows)
	twice := ToggleAll(once, fiveRows)

	assert.Equal(t, All, AggregateOf(once, fiveRows))
	assert.Equal(t, None, AggregateOf(twice, fiveRows))
}

func TestSelectRange_OrderIndependent(t *testing.T) {
	base := NewSet("r5")

	forward := SelectRange(base, fiveRows, 1, 3)
	backward := SelectRange(base, fiveRows, 3, 1)

	assert.True(t, forward.Equal(backward))
	assert.Equal(t, []string{"r2", "r3", "r4", "r5"}, forward.IDs())
}

func TestSelectRange_SelectsRatherThanToggles(t *testing.T) {
	s := NewSet("r2")
	got := SelectRange(s, fiveRows, 0, 2)

	assert.Equal(t, []string{"r1", "r2", "r3"}, got.IDs())
}

func TestSelectRange_ClampsBounds(t *testing.T) {
	got := SelectRange(NewSet(), fiveRows, -4, 99)
	assert.Equal(t, 5, got.Len())

	assert.Equal(t, 0, SelectRange(NewSet(), nil, 0, 3).Len())
}
