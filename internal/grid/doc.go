// Package grid is the virtualized, interactive data-grid engine.
//
// Grid composes independent stores: measured row heights, the windower's
// prefix sums, the resolved column layout, and the selected and expanded row
// sets. Inputs (data, columns, scroll, resize, measurements, clicks) only mark
// the grid dirty and ask the host for a frame; Settle then produces one
// consistent Frame describing the rows to mount, their positions, column
// geometry and interaction state.
//
// The engine is headless. It knows nothing about the records it lays out
// beyond their identity, and it never mutates the selection or expansion sets
// it was given: changes are proposed to the owner through callbacks.
package grid
