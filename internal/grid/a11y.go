package grid

import (
	"fmt"
	"strings"

	"github.com/rshade/gridkit/internal/grid/focus"
	"github.com/rshade/gridkit/internal/grid/selection"
)

// AccessRole is the role a rendered element plays for assistive tooling.
type AccessRole string

// Roles exposed by the rendered table.
const (
	RoleHeaderGroup  AccessRole = "rowgroup"
	RoleRow          AccessRole = "row"
	RoleCell         AccessRole = "cell"
	RoleColumnHeader AccessRole = "columnheader"
	RoleCheckbox     AccessRole = "checkbox"
	RoleButton       AccessRole = "button"
	RoleStatus       AccessRole = "status"
)

// Control labels. Tooling matches on these strings; keep them stable.
const (
	LabelSelectAll   = "select all"
	LabelSelectRow   = "select row"
	LabelExpandRow   = "expand row"
	LabelCollapseRow = "collapse row"
	LabelEmpty       = "No rows to display"
)

// ExpanderLabel returns the label of an expander control.
func ExpanderLabel(expanded bool) string {
	if expanded {
		return LabelCollapseRow
	}
	return LabelExpandRow
}

// CellTextFunc renders the text of a plain cell for Describe.
type CellTextFunc[T any] func(row Row[T], column Column) string

// Describe renders the mounted frame as an indented outline of roles and
// labels. The output is stable and meant for tests and diagnostics.
func (f Frame[T]) Describe(text CellTextFunc[T]) string {
	var b strings.Builder
	if f.Empty {
		fmt.Fprintf(&b, "%s %q\n", RoleStatus, LabelEmpty)
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n", RoleHeaderGroup)
	fmt.Fprintf(&b, "  %s\n", RoleRow)
	for _, c := range f.Columns {
		if c.Kind == KindSelection {
			fmt.Fprintf(&b, "    %s [%s %q %s]\n", RoleColumnHeader, RoleCheckbox, LabelSelectAll, checkState(f.Header))
			continue
		}
		fmt.Fprintf(&b, "    %s %q\n", RoleColumnHeader, c.Title)
	}

	for _, r := range f.Rows {
		fmt.Fprintf(&b, "%s %s\n", RoleRow, r.ID)
		for _, c := range f.Columns {
			b.WriteString("  ")
			b.WriteString(string(RoleCell))
			switch c.Kind {
			case KindSelection:
				state := "unchecked"
				if r.Selected {
					state = "checked"
				}
				fmt.Fprintf(&b, " [%s %q %s]", RoleCheckbox, LabelSelectRow, state)
			case KindExpander:
				if r.CanExpand {
					fmt.Fprintf(&b, " [%s %q]", RoleButton, ExpanderLabel(r.Expanded))
				}
			case KindActions:
				for _, a := range c.Actions {
					fmt.Fprintf(&b, " [%s %q]", RoleButton, a)
				}
			case KindPlain:
				if text != nil {
					fmt.Fprintf(&b, " %q", text(r.Row, c))
				}
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func checkState(a selection.Aggregate) string {
	switch a {
	case selection.All:
		return "checked"
	case selection.Some:
		return "mixed"
	case selection.None:
		return "unchecked"
	default:
		return "unchecked"
	}
}

// rowNodes lists the interactive elements of one mounted row.
func rowNodes[T any](r MountedRow[T], columns []Column) focus.RowNodes {
	out := focus.RowNodes{RowID: r.ID}
	for _, c := range columns {
		switch c.Kind {
		case KindSelection:
			out.Nodes = append(out.Nodes, focus.Node{ColumnID: c.ID, Kind: focus.Checkbox, Label: LabelSelectRow})
		case KindExpander:
			if r.CanExpand {
				out.Nodes = append(out.Nodes, focus.Node{ColumnID: c.ID, Kind: focus.Button, Label: ExpanderLabel(r.Expanded)})
			}
		case KindActions:
			for slot, a := range c.Actions {
				out.Nodes = append(out.Nodes, focus.Node{ColumnID: c.ID, Slot: slot, Kind: focus.Button, Label: a})
			}
		case KindPlain:
		}
	}
	return out
}

func headerNodes(columns []Column) focus.RowNodes {
	out := focus.RowNodes{RowID: focus.HeaderRowID}
	for _, c := range columns {
		if c.Kind == KindSelection {
			out.Nodes = append(out.Nodes, focus.Node{ColumnID: c.ID, Kind: focus.Checkbox, Label: LabelSelectAll})
		}
	}
	return out
}
