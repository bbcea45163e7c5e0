// Package focus derives the keyboard navigation graph of a rendered table.
//
// Only interactive elements are nodes: selection checkboxes, expander buttons
// and row action buttons. Rows and plain cells are never focus targets. The
// graph holds no state between key events; it is rebuilt from whatever rows
// are mounted, so focus can never move into a row the windower did not mount.
package focus

import "sort"

// HeaderRowID identifies the header row in the graph.
const HeaderRowID = "\x00header"

// ElementKind classifies an interactive element.
type ElementKind int

// Element kinds.
const (
	Checkbox ElementKind = iota
	Button
)

// Direction is an arrow-key direction.
type Direction int

// Directions.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Key addresses an element by row, column and slot within the cell.
type Key struct {
	RowID    string
	ColumnID string
	Slot     int
}

// Node is a focusable element.
type Node struct {
	RowID    string
	ColumnID string
	Slot     int
	Kind     ElementKind
	Label    string
}

// Key returns the address of n.
func (n Node) Key() Key {
	return Key{RowID: n.RowID, ColumnID: n.ColumnID, Slot: n.Slot}
}

// RowNodes lists the interactive elements of one rendered row.
type RowNodes struct {
	RowID string
	Nodes []Node

	// Gap marks rows that are not mounted between this row and the one
	// before it. Vertical moves never cross a gap.
	Gap bool
}

type position struct {
	row, col int
}

// Graph is the navigation graph of one rendered frame.
type Graph struct {
	rows  []RowNodes
	index map[Key]position
}

// Build returns the graph for rows, given in render order. Nodes inside each
// row are ordered by columnOrder and then by slot; nodes of unknown columns
// are dropped.
func Build(columnOrder []string, rows ...RowNodes) *Graph {
	rank := make(map[string]int, len(columnOrder))
	for i, id := range columnOrder {
		rank[id] = i
	}

	g := &Graph{index: make(map[Key]position)}
	for _, r := range rows {
		nodes := make([]Node, 0, len(r.Nodes))
		for _, n := range r.Nodes {
			if _, ok := rank[n.ColumnID]; ok {
				n.RowID = r.RowID
				nodes = append(nodes, n)
			}
		}
		sort.SliceStable(nodes, func(a, b int) bool {
			ra, rb := rank[nodes[a].ColumnID], rank[nodes[b].ColumnID]
			if ra != rb {
				return ra < rb
			}
			return nodes[a].Slot < nodes[b].Slot
		})

		ri := len(g.rows)
		g.rows = append(g.rows, RowNodes{RowID: r.RowID, Nodes: nodes, Gap: r.Gap})
		for ci, n := range nodes {
			g.index[n.Key()] = position{row: ri, col: ci}
		}
	}
	return g
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.index)
}

// Lookup returns the mounted node at k.
func (g *Graph) Lookup(k Key) (Node, bool) {
	p, ok := g.index[k]
	if !ok {
		return Node{}, false
	}
	return g.rows[p.row].Nodes[p.col], true
}

// First returns the first node in render order.
func (g *Graph) First() (Node, bool) {
	for _, r := range g.rows {
		if len(r.Nodes) > 0 {
			return r.Nodes[0], true
		}
	}
	return Node{}, false
}

// FirstInRow returns the first node of the given row.
func (g *Graph) FirstInRow(rowID string) (Node, bool) {
	for _, r := range g.rows {
		if r.RowID == rowID && len(r.Nodes) > 0 {
			return r.Nodes[0], true
		}
	}
	return Node{}, false
}

// Next returns the node reached from current in direction dir. It reports
// false when current is not mounted, when the move would leave the mounted
// rows, when unmounted rows lie between current and the adjacent row, or
// when the adjacent row has no element in the same column and slot.
func (g *Graph) Next(current Node, dir Direction) (Node, bool) {
	p, ok := g.index[current.Key()]
	if !ok {
		return Node{}, false
	}

	switch dir {
	case Left:
		if p.col == 0 {
			return Node{}, false
		}
		return g.rows[p.row].Nodes[p.col-1], true
	case Right:
		nodes := g.rows[p.row].Nodes
		if p.col+1 >= len(nodes) {
			return Node{}, false
		}
		return nodes[p.col+1], true
	case Up, Down:
		target := p.row - 1
		if dir == Down {
			target = p.row + 1
		}
		if target < 0 || target >= len(g.rows) {
			return Node{}, false
		}
		if crossed := max(p.row, target); g.rows[crossed].Gap {
			return Node{}, false
		}
		return g.Lookup(Key{RowID: g.rows[target].RowID, ColumnID: current.ColumnID, Slot: current.Slot})
	default:
		return Node{}, false
	}
}
