package gridview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/gridkit/internal/grid"
	"github.com/rshade/gridkit/internal/grid/focus"
	"github.com/rshade/gridkit/internal/grid/layout"
	"github.com/rshade/gridkit/internal/grid/selection"
)

// Cell glyphs.
const (
	glyphChecked   = "[x]"
	glyphUnchecked = "[ ]"
	glyphMixed     = "[-]"
	glyphExpand    = "▸"
	glyphCollapse  = "▾"
)

// View renders the last settled frame (Bubble Tea interface).
func (m *Model[T]) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	if m.frame.Empty {
		sections = append(sections, m.renderEmpty())
	} else {
		sections = append(sections, m.renderHeader(), m.renderBody())
	}
	if m.showFilterLine() {
		sections = append(sections, m.styles.Filter.Render(m.filter.View()))
	}
	sections = append(sections, m.renderStatus(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model[T]) renderEmpty() string {
	body := m.bodyHeight() + 1
	return lipgloss.Place(m.width, body, lipgloss.Center, lipgloss.Center,
		m.styles.Empty.Render(grid.LabelEmpty))
}

type palette struct {
	cell, cellPinned         int
	selected, selectedPinned int
	focus                    int
	header, headerPinned     int
}

func (m *Model[T]) palette(c *Canvas) palette {
	return palette{
		cell:           c.Style(m.styles.Cell),
		cellPinned:     c.Style(m.styles.Cell.Inherit(m.styles.Pinned)),
		selected:       c.Style(m.styles.Selected),
		selectedPinned: c.Style(m.styles.Selected.Inherit(m.styles.Pinned)),
		focus:          c.Style(m.styles.Focus),
		header:         c.Style(m.styles.Header),
		headerPinned:   c.Style(m.styles.Header.Inherit(m.styles.Pinned)),
	}
}

func (m *Model[T]) renderHeader() string {
	f := m.frame
	c := NewCanvas(m.width, 1)
	pal := m.palette(c)

	for i, p := range f.Layout.Placements {
		col := f.Columns[i]
		x, w := m.cellBox(p)
		style := pal.header
		if p.Pin != layout.PinNone {
			style = pal.headerPinned
		}

		text := " " + col.Title
		if col.Kind == grid.KindSelection {
			text = " " + aggregateGlyph(f.Header)
			if focusedAt(f.Focus, focus.HeaderRowID, col.ID, 0) {
				style = pal.focus
			}
		}
		c.Text(x, 0, w, p.HeaderZIndex, text, style)
	}
	return c.String()
}

func (m *Model[T]) renderBody() string {
	f := m.frame
	c := NewCanvas(m.width, m.bodyHeight())
	pal := m.palette(c)
	clip := lipgloss.NewStyle().MaxWidth(m.width)

	for _, r := range f.Rows {
		y := int(math.Round(r.Top - f.ScrollOffset))
		for i, p := range f.Layout.Placements {
			m.renderCell(c, pal, r, f.Columns[i], p, y, f.Focus)
		}
		for i, line := range m.detail(r) {
			c.Line(y+1+i, clip.Render(line))
		}
	}
	return c.String()
}

func (m *Model[T]) renderCell(
	c *Canvas, pal palette, r grid.MountedRow[T], col grid.Column, p layout.Placement, y int, focused *focus.Node,
) {
	x, w := m.cellBox(p)
	style := pal.cell
	switch {
	case r.Selected && p.Pin != layout.PinNone:
		style = pal.selectedPinned
	case r.Selected:
		style = pal.selected
	case p.Pin != layout.PinNone:
		style = pal.cellPinned
	}

	switch col.Kind {
	case grid.KindSelection:
		glyph := glyphUnchecked
		if r.Selected {
			glyph = glyphChecked
		}
		c.Text(x, y, w, p.ZIndex, " ", style)
		if focusedAt(focused, r.ID, col.ID, 0) {
			c.Text(x+1, y, min(w-1, len(glyph)), p.ZIndex, glyph, pal.focus)
		} else {
			c.Text(x+1, y, w-1, p.ZIndex, glyph, style)
		}
	case grid.KindExpander:
		glyph := ""
		if r.CanExpand {
			glyph = glyphExpand
			if r.Expanded {
				glyph = glyphCollapse
			}
		}
		c.Text(x, y, w, p.ZIndex, " ", style)
		if focusedAt(focused, r.ID, col.ID, 0) {
			c.Text(x+1, y, min(w-1, 1), p.ZIndex, glyph, pal.focus)
		} else {
			c.Text(x+1, y, w-1, p.ZIndex, glyph, style)
		}
	case grid.KindActions:
		c.Text(x, y, w, p.ZIndex, "", style)
		at := x + 1
		for slot, a := range col.Actions {
			label := "[" + a + "]"
			room := x + w - at
			if room <= 0 {
				break
			}
			s := style
			if focusedAt(focused, r.ID, col.ID, slot) {
				s = pal.focus
			}
			c.Text(at, y, min(room, len(label)), p.ZIndex, label, s)
			at += len(label) + 1
		}
	case grid.KindPlain:
		c.Text(x, y, w, p.ZIndex, " "+m.cfg.CellText(r.Data, col.ID), style)
	}
}

// cellBox converts a placement to a screen column and width in cells.
func (m *Model[T]) cellBox(p layout.Placement) (int, int) {
	x := m.frame.Layout.ScreenX(p, m.frame.ScrollX)
	return int(math.Round(x)), int(math.Round(p.Width))
}

func (m *Model[T]) renderStatus() string {
	f := m.frame
	var parts []string
	if m.filter.Value() != "" {
		parts = append(parts, m.printer.Sprintf("%d of %d rows", f.RowCount, len(m.items)))
	} else {
		parts = append(parts, m.printer.Sprintf("%d rows", f.RowCount))
	}
	parts = append(parts, m.printer.Sprintf("%d selected", f.SelectedCount))
	if f.Range.VisibleEnd > f.Range.VisibleStart {
		parts = append(parts, m.printer.Sprintf("showing %d-%d", f.Range.VisibleStart+1, f.Range.VisibleEnd))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.styles.Status.Render(strings.Join(parts, " · "))
}

// rowHeight is the number of lines a mounted row occupies.
func (m *Model[T]) rowHeight(r grid.MountedRow[T]) int {
	lines := append([]string{""}, m.detail(r)...)
	return lipgloss.Height(strings.Join(lines, "\n"))
}

func (m *Model[T]) detail(r grid.MountedRow[T]) []string {
	if !r.Expanded {
		return nil
	}
	if d, ok := m.details[r.ID]; ok {
		return d
	}
	d := detailLines(m.cfg.Detail(r.Data), m.highlighter)
	m.details[r.ID] = d
	return d
}

func aggregateGlyph(a selection.Aggregate) string {
	switch a {
	case selection.All:
		return glyphChecked
	case selection.Some:
		return glyphMixed
	case selection.None:
		return glyphUnchecked
	default:
		return glyphUnchecked
	}
}

func focusedAt(n *focus.Node, rowID, columnID string, slot int) bool {
	return n != nil && n.RowID == rowID && n.ColumnID == columnID && n.Slot == slot
}
