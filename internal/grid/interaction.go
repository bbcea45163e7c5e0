package grid

import (
	"github.com/rshade/gridkit/internal/grid/focus"
	"github.com/rshade/gridkit/internal/grid/selection"
)

// IsSelected reports whether the row is selected.
func (g *Grid[T]) IsSelected(id string) bool {
	return g.selected.Has(id)
}

// IsExpanded reports whether the row is expanded.
func (g *Grid[T]) IsExpanded(id string) bool {
	return g.expanded.Has(id)
}

// Selection returns a copy of the current selection.
func (g *Grid[T]) Selection() selection.Set {
	return g.selected.Current()
}

// Expansion returns a copy of the current expansion.
func (g *Grid[T]) Expansion() selection.Set {
	return g.expanded.Current()
}

// Aggregate summarises the selection over the current rows.
func (g *Grid[T]) Aggregate() selection.Aggregate {
	return g.selected.Aggregate(g.ids)
}

// ToggleSelected flips the selection of one row and makes it the range
// anchor. The row does not need to be mounted.
func (g *Grid[T]) ToggleSelected(id string) selection.Set {
	g.anchor = id
	return g.selected.Toggle(id)
}

// SelectRange selects every row between two display indices, inclusive.
func (g *Grid[T]) SelectRange(from, to int) selection.Set {
	return g.selected.SelectRange(g.ids, from, to)
}

// SelectRangeTo selects the rows between the anchor and id. Without an
// anchor in the current rows it behaves like ToggleSelected.
func (g *Grid[T]) SelectRangeTo(id string) selection.Set {
	from, okFrom := g.indexByID[g.anchor]
	to, okTo := g.indexByID[id]
	if !okFrom || !okTo {
		return g.ToggleSelected(id)
	}
	return g.SelectRange(from, to)
}

// ToggleAll applies the header checkbox transition to the current rows.
func (g *Grid[T]) ToggleAll() selection.Set {
	return g.selected.ToggleAll(g.ids)
}

// SyncSelection installs the owner's selection.
func (g *Grid[T]) SyncSelection(s selection.Set) {
	g.selected.Sync(s)
	g.invalidate()
}

// ToggleExpanded flips the expansion of a row that can expand. Rows without
// the capability are left alone and false is returned.
func (g *Grid[T]) ToggleExpanded(id string) (selection.Set, bool) {
	row, ok := g.RowByID(id)
	if !ok || !g.canExpand(row) {
		return g.expanded.Current(), false
	}
	return g.expanded.Toggle(id), true
}

// SyncExpansion installs the owner's expansion.
func (g *Grid[T]) SyncExpansion(s selection.Set) {
	g.expanded.Sync(s)
	g.invalidate()
}

// Focused returns the focused element if it is mounted in the last frame.
func (g *Grid[T]) Focused() (focus.Node, bool) {
	if !g.hasFocus {
		return focus.Node{}, false
	}
	return g.last.Graph().Lookup(g.focused)
}

// FocusFirst focuses the first interactive element of the last frame.
func (g *Grid[T]) FocusFirst() (focus.Node, bool) {
	n, ok := g.last.Graph().First()
	if !ok {
		return focus.Node{}, false
	}
	g.setFocus(n.Key())
	return n, true
}

// Navigate moves focus one step in dir over the elements of the last frame.
// Misses are no-ops: focus stays where it was and false is returned.
func (g *Grid[T]) Navigate(dir focus.Direction) (focus.Node, bool) {
	if !g.hasFocus {
		return focus.Node{}, false
	}
	graph := g.last.Graph()
	current, ok := graph.Lookup(g.focused)
	if !ok {
		return focus.Node{}, false
	}
	next, ok := graph.Next(current, dir)
	if !ok {
		return focus.Node{}, false
	}
	g.setFocus(next.Key())
	return next, true
}

// RequestFocus asks for k to be focused at the next Settle. The request is
// dropped if k is not mounted by then.
func (g *Grid[T]) RequestFocus(k focus.Key) {
	g.pendingFocus = &k
	g.invalidate()
}

// ClearFocus removes focus.
func (g *Grid[T]) ClearFocus() {
	if g.hasFocus {
		g.hasFocus = false
		g.invalidate()
	}
}

func (g *Grid[T]) setFocus(k focus.Key) {
	g.focused, g.hasFocus = k, true
	g.invalidate()
}

// Activation describes what activating an element did.
type Activation struct {
	Node focus.Node

	// Action is set when a row action button was activated; the owner
	// decides what it does.
	Action string
}

// Activate triggers the element at k as a click or space press would:
// checkboxes toggle selection, expanders toggle expansion and action
// buttons are reported back. It returns false when k is not mounted.
func (g *Grid[T]) Activate(k focus.Key) (Activation, bool) {
	n, ok := g.last.Graph().Lookup(k)
	if !ok {
		return Activation{}, false
	}

	col, ok := g.column(n.ColumnID)
	if !ok {
		return Activation{}, false
	}

	act := Activation{Node: n}
	switch col.Kind {
	case KindSelection:
		if n.RowID == focus.HeaderRowID {
			g.ToggleAll()
		} else {
			g.ToggleSelected(n.RowID)
		}
	case KindExpander:
		g.ToggleExpanded(n.RowID)
	case KindActions:
		act.Action = n.Label
	case KindPlain:
		return Activation{}, false
	}
	return act, true
}

func (g *Grid[T]) column(id string) (Column, bool) {
	for _, c := range g.columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}
