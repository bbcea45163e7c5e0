package layout

// Pin is the side a column is pinned to.
type Pin int

// Pin values.
const (
	PinNone Pin = iota
	PinLeft
	PinRight
)

// String returns the schema name of the pin.
func (p Pin) String() string {
	switch p {
	case PinLeft:
		return "left"
	case PinRight:
		return "right"
	case PinNone:
		return "none"
	default:
		return "none"
	}
}

// ParsePin converts a schema value into a Pin. Unknown values mean PinNone.
func ParsePin(s string) Pin {
	switch s {
	case "left":
		return PinLeft
	case "right":
		return PinRight
	default:
		return PinNone
	}
}

// SizingKind selects how a column's width is determined.
type SizingKind int

// Sizing kinds.
const (
	SizingFixed SizingKind = iota
	SizingFlexible
)

// Sizing is a column's width rule. Sizing and Pin are independent: a pinned
// column may be fixed or flexible.
type Sizing struct {
	Kind SizingKind

	// Width applies to fixed columns.
	Width float64

	// Weight, MinWidth and MaxWidth apply to flexible columns. A MaxWidth of
	// zero means unbounded.
	Weight   float64
	MinWidth float64
	MaxWidth float64
}

// Fixed returns a fixed-width sizing rule.
func Fixed(width float64) Sizing {
	return Sizing{Kind: SizingFixed, Width: width}
}

// Flexible returns a weighted sizing rule bounded by [minWidth, maxWidth].
func Flexible(weight, minWidth, maxWidth float64) Sizing {
	return Sizing{Kind: SizingFlexible, Weight: weight, MinWidth: minWidth, MaxWidth: maxWidth}
}

// Column is the layout-relevant part of a column definition.
type Column struct {
	ID     string
	Sizing Sizing
	Pin    Pin
}

// Stacking tiers. Pinned cells occlude scrolling cells, and header cells sit
// above body cells of the same kind.
const (
	ZScrolling    = 0
	ZPinned       = 1
	ZHeader       = 2
	ZHeaderPinned = 3
)

// overflowEpsilon absorbs float noise when comparing widths.
const overflowEpsilon = 1e-9

// Placement is the resolved geometry of one column.
type Placement struct {
	ColumnID string
	Pin      Pin
	Width    float64

	// X is the column's position in unscrolled content coordinates.
	X float64

	// Left is set for left-pinned columns: the combined width of the
	// left-pinned columns before this one.
	Left *float64

	// Right is set for sticky right-pinned columns: the combined width of
	// the right-pinned columns after this one.
	Right *float64

	Sticky       bool
	ZIndex       int
	HeaderZIndex int
}

// Layout is the resolved geometry of every column, in visual order: left
// pins, then unpinned columns, then right pins.
type Layout struct {
	Placements     []Placement
	ContainerWidth float64
	ContentWidth   float64
	Overflow       bool

	index map[string]int
}

// Placement returns the geometry of the column with the given id.
func (l Layout) Placement(id string) (Placement, bool) {
	i, ok := l.index[id]
	if !ok {
		return Placement{}, false
	}
	return l.Placements[i], true
}

// Len returns the number of resolved columns.
func (l Layout) Len() int {
	return len(l.Placements)
}

// MaxScrollX returns the largest horizontal scroll offset.
func (l Layout) MaxScrollX() float64 {
	if !l.Overflow {
		return 0
	}
	return l.ContentWidth - l.ContainerWidth
}

// ClampScrollX bounds x to the scrollable range.
func (l Layout) ClampScrollX(x float64) float64 {
	if x < 0 || x != x {
		return 0
	}
	return min(x, l.MaxScrollX())
}

// ScreenX returns where p is drawn when content is scrolled by scrollX.
// Sticky columns stop at their pinned offset instead of scrolling away.
func (l Layout) ScreenX(p Placement, scrollX float64) float64 {
	natural := p.X - l.ClampScrollX(scrollX)
	switch {
	case p.Sticky && p.Left != nil:
		return max(natural, *p.Left)
	case p.Sticky && p.Right != nil:
		return min(natural, l.ContainerWidth-*p.Right-p.Width)
	default:
		return natural
	}
}
