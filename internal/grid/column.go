package grid

import "github.com/rshade/gridkit/internal/grid/layout"

// ColumnKind says which interactive element, if any, a column's cells hold.
type ColumnKind int

// Column kinds.
const (
	KindPlain ColumnKind = iota
	KindSelection
	KindExpander
	KindActions
)

// ParseColumnKind converts a schema value into a ColumnKind.
func ParseColumnKind(s string) ColumnKind {
	switch s {
	case "selection", "select":
		return KindSelection
	case "expander", "expand":
		return KindExpander
	case "actions":
		return KindActions
	default:
		return KindPlain
	}
}

// String returns the schema name of the kind.
func (k ColumnKind) String() string {
	switch k {
	case KindSelection:
		return "selection"
	case KindExpander:
		return "expander"
	case KindActions:
		return "actions"
	case KindPlain:
		return "plain"
	default:
		return "plain"
	}
}

// Column is a column definition: its layout rule plus what its cells hold.
type Column struct {
	layout.Column

	Title string
	Kind  ColumnKind

	// Actions labels the buttons of a KindActions column, in slot order.
	Actions []string
}

// Interactive reports whether the column's cells hold focusable elements.
func (c Column) Interactive() bool {
	return c.Kind != KindPlain
}

func layoutColumns(cols []Column) []layout.Column {
	out := make([]layout.Column, len(cols))
	for i, c := range cols {
		out[i] = c.Column
	}
	return out
}
