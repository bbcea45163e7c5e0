// Package layout resolves column widths, pinned offsets and stacking order
// for a table of a given container width.
//
// Fixed columns take their declared width. Flexible columns share the
// remaining width by weight, clamped to their bounds, with clamped surplus or
// deficit redistributed among the others. When minimum widths cannot fit, the
// content overflows the container; right-pinned columns only become sticky in
// that case.
package layout
