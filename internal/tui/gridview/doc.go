// Package gridview hosts a grid engine inside a Bubble Tea program.
//
// The model owns the frame loop: engine inputs (keys, mouse wheel, resize,
// filtering, data) invalidate the grid, the first invalidation of a frame
// schedules a tick, and the tick settles the grid and measures the mounted
// rows. One terminal line is one vertical unit and one cell is one
// horizontal unit, so row heights are line counts and column widths are
// cell counts.
//
// Rendering composites each row's cells on a rune canvas in z order, so
// pinned columns occlude scrolled content the way sticky cells do in a
// browser table.
package gridview
