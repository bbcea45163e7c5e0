package gridview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	ellipsis = "…"

	// noStyle marks cells written without a style.
	noStyle = -1
)

type cell struct {
	r     rune
	style int
	z     int
	set   bool
	// tail marks the second column of a double-width rune.
	tail bool
}

// Canvas is a fixed-size grid of terminal cells. Writes carry a z-index and
// only replace cells of equal or lower z, so the order of writes does not
// matter for overlapping content.
type Canvas struct {
	width  int
	height int
	cells  []cell
	styles []lipgloss.Style
	raw    map[int]string
}

// NewCanvas returns a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width = max(0, width)
	height = max(0, height)
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		raw:    make(map[int]string),
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in lines.
func (c *Canvas) Height() int { return c.height }

// Style registers a style and returns its handle for Text.
func (c *Canvas) Style(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

// Text writes text into the box [x, x+width) on line y, truncating with an
// ellipsis and padding with spaces so the box is fully covered. Parts
// outside the canvas are clipped.
func (c *Canvas) Text(x, y, width, z int, text string, style int) {
	if y < 0 || y >= c.height || width <= 0 {
		return
	}
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, ellipsis)
	}
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.put(col, y, z, r, style, w)
		col += w
	}
	for ; col < x+width; col++ {
		c.put(col, y, z, ' ', style, 1)
	}
}

// Line replaces line y with a pre-rendered string. Raw lines may carry
// escape sequences and are not composited.
func (c *Canvas) Line(y int, s string) {
	if y < 0 || y >= c.height {
		return
	}
	c.raw[y] = s
}

func (c *Canvas) put(x, y, z int, r rune, style, w int) {
	if x < 0 || x >= c.width {
		return
	}
	if w == 2 && x+1 >= c.width {
		// Only half of the rune would fit.
		r, w = ' ', 1
	}
	for i := range w {
		if cur := c.cells[y*c.width+x+i]; cur.set && cur.z > z {
			return
		}
	}
	c.cells[y*c.width+x] = cell{r: r, style: style, z: z, set: true}
	if w == 2 {
		c.cells[y*c.width+x+1] = cell{style: style, z: z, set: true, tail: true}
	}
}

// String renders the canvas, one line per row, without a trailing newline.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for y := range c.height {
		if raw, ok := c.raw[y]; ok {
			lines[y] = raw
			continue
		}
		lines[y] = c.renderLine(y)
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) renderLine(y int) string {
	var out, run strings.Builder
	runStyle := noStyle
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runStyle == noStyle {
			out.WriteString(run.String())
		} else {
			out.WriteString(c.styles[runStyle].Render(run.String()))
		}
		run.Reset()
	}

	row := c.cells[y*c.width : (y+1)*c.width]
	for x := 0; x < len(row); x++ {
		cl := row[x]
		style := noStyle
		if cl.set {
			style = cl.style
		}
		if style != runStyle {
			flush()
			runStyle = style
		}
		switch {
		case !cl.set:
			run.WriteByte(' ')
		case cl.tail:
			// The lead was overwritten by a narrower rune.
			run.WriteByte(' ')
		case runewidth.RuneWidth(cl.r) == 2 && (x+1 >= len(row) || !row[x+1].tail):
			run.WriteByte(' ')
		case runewidth.RuneWidth(cl.r) == 2:
			run.WriteRune(cl.r)
			x++
		default:
			run.WriteRune(cl.r)
		}
	}
	flush()
	return strings.TrimRight(out.String(), " ")
}
