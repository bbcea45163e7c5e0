package layout

import (
	"math"
	"sort"

	"github.com/rs/zerolog"
)

// Option configures Resolve.
type Option func(*resolver)

// WithLogger sets the logger used to report clamped configuration errors.
func WithLogger(l zerolog.Logger) Option {
	return func(r *resolver) { r.logger = l }
}

// WithIntegralWidths rounds flexible widths to whole units while keeping
// their sum, for renderers that address discrete cells.
func WithIntegralWidths() Option {
	return func(r *resolver) { r.integral = true }
}

type resolver struct {
	logger   zerolog.Logger
	integral bool
}

// Resolve computes the layout of columns inside containerWidth.
func Resolve(columns []Column, containerWidth float64, opts ...Option) Layout {
	r := resolver{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&r)
	}

	if containerWidth < 0 || math.IsNaN(containerWidth) {
		containerWidth = 0
	}

	out := Layout{ContainerWidth: containerWidth, index: make(map[string]int, len(columns))}
	if len(columns) == 0 {
		return out
	}

	sizings := make([]Sizing, len(columns))
	for i, c := range columns {
		sizings[i] = r.sanitize(c)
	}
	widths := r.distribute(sizings, containerWidth)

	var left, middle, right []int
	for i, c := range columns {
		switch c.Pin {
		case PinLeft:
			left = append(left, i)
		case PinRight:
			right = append(right, i)
		case PinNone:
			middle = append(middle, i)
		default:
			middle = append(middle, i)
		}
	}

	content := 0.0
	for _, w := range widths {
		content += w
	}
	out.ContentWidth = content
	out.Overflow = content > containerWidth+overflowEpsilon

	order := make([]int, 0, len(columns))
	order = append(order, left...)
	order = append(order, middle...)
	order = append(order, right...)

	placements := make(map[int]*Placement, len(columns))
	x := 0.0
	for _, i := range order {
		p := &Placement{
			ColumnID:     columns[i].ID,
			Pin:          columns[i].Pin,
			Width:        widths[i],
			X:            x,
			ZIndex:       ZScrolling,
			HeaderZIndex: ZHeader,
		}
		placements[i] = p
		x += widths[i]
	}

	offset := 0.0
	for _, i := range left {
		p := placements[i]
		v := offset
		p.Left = &v
		p.Sticky = true
		p.ZIndex = ZPinned
		p.HeaderZIndex = ZHeaderPinned
		offset += p.Width
	}

	if out.Overflow {
		offset = 0
		for k := len(right) - 1; k >= 0; k-- {
			p := placements[right[k]]
			v := offset
			p.Right = &v
			p.Sticky = true
			p.ZIndex = ZPinned
			p.HeaderZIndex = ZHeaderPinned
			offset += p.Width
		}
	}

	out.Placements = make([]Placement, 0, len(order))
	for _, i := range order {
		id := columns[i].ID
		if _, dup := out.index[id]; dup {
			r.logger.Warn().Str("column_id", id).Msg("duplicate column id, last definition wins")
		}
		out.index[id] = len(out.Placements)
		out.Placements = append(out.Placements, *placements[i])
	}
	return out
}

// sanitize clamps impossible sizing values instead of failing.
func (r resolver) sanitize(c Column) Sizing {
	s := c.Sizing
	switch s.Kind {
	case SizingFixed:
		if s.Width < 0 || math.IsNaN(s.Width) {
			r.logger.Warn().Str("column_id", c.ID).Float64("width", s.Width).Msg("negative column width clamped to 0")
			s.Width = 0
		}
	case SizingFlexible:
		if s.MinWidth < 0 || math.IsNaN(s.MinWidth) {
			s.MinWidth = 0
		}
		if s.MaxWidth < 0 || math.IsNaN(s.MaxWidth) {
			s.MaxWidth = 0
		}
		if s.Weight < 0 || math.IsNaN(s.Weight) {
			r.logger.Warn().Str("column_id", c.ID).Float64("weight", s.Weight).Msg("negative column weight clamped to 0")
			s.Weight = 0
		}
		if s.MaxWidth > 0 && s.MinWidth > s.MaxWidth {
			r.logger.Warn().
				Str("column_id", c.ID).
				Float64("min_width", s.MinWidth).
				Float64("max_width", s.MaxWidth).
				Msg("column min width exceeds max width, clamping to min")
			s.MaxWidth = s.MinWidth
		}
	}
	return s
}

// distribute returns the width of every column. Flexible columns share the
// space left by fixed columns by weight; columns whose share violates their
// bounds are frozen at the bound and the rest is shared again.
func (r resolver) distribute(sizings []Sizing, container float64) []float64 {
	widths := make([]float64, len(sizings))
	fixed := 0.0
	var flex []int
	for i, s := range sizings {
		if s.Kind == SizingFlexible {
			flex = append(flex, i)
			continue
		}
		widths[i] = s.Width
		fixed += s.Width
	}
	if len(flex) == 0 {
		return widths
	}

	remaining := math.Max(0, container-fixed)
	frozen := make(map[int]bool, len(flex))
	target := make(map[int]float64, len(flex))

	for {
		active := 0
		weight := 0.0
		for _, i := range flex {
			if !frozen[i] {
				active++
				weight += sizings[i].Weight
			}
		}
		if active == 0 {
			break
		}

		violation := 0.0
		clamped := make(map[int]float64, active)
		for _, i := range flex {
			if frozen[i] {
				continue
			}
			share := 0.0
			if weight > 0 {
				share = remaining * sizings[i].Weight / weight
			}
			target[i] = share
			clamped[i] = clamp(share, sizings[i])
			violation += clamped[i] - share
		}

		if math.Abs(violation) < overflowEpsilon {
			for i, w := range clamped {
				widths[i] = w
				frozen[i] = true
			}
			break
		}

		for i, w := range clamped {
			minViolated := w > target[i]
			maxViolated := w < target[i]
			if (violation > 0 && minViolated) || (violation < 0 && maxViolated) {
				widths[i] = w
				frozen[i] = true
				remaining -= w
			}
		}
	}

	if r.integral {
		roundFlexible(widths, flex, sizings)
	}
	return widths
}

func clamp(w float64, s Sizing) float64 {
	w = math.Max(w, s.MinWidth)
	if s.MaxWidth > 0 {
		w = math.Min(w, s.MaxWidth)
	}
	return w
}

// roundFlexible floors flexible widths and hands the lost units to the
// columns with the largest fractional parts.
func roundFlexible(widths []float64, flex []int, sizings []Sizing) {
	type frac struct {
		index int
		part  float64
	}

	exact := 0.0
	floored := 0.0
	parts := make([]frac, 0, len(flex))
	for _, i := range flex {
		exact += widths[i]
		f := math.Floor(widths[i] + overflowEpsilon)
		parts = append(parts, frac{index: i, part: widths[i] - f})
		widths[i] = f
		floored += f
	}

	leftover := int(math.Round(exact - floored))
	sort.SliceStable(parts, func(a, b int) bool { return parts[a].part > parts[b].part })
	for _, p := range parts {
		if leftover <= 0 {
			break
		}
		s := sizings[p.index]
		if s.MaxWidth > 0 && widths[p.index]+1 > s.MaxWidth {
			continue
		}
		widths[p.index]++
		leftover--
	}
}
