// Package measure caches the last observed height of each row, keyed by row
// identity, and supplies size estimates to the windower.
//
// A row's entry is only trusted once the row has been mounted and measured;
// until then Estimate returns the configured default. Invalid measurements
// (NaN, infinities, non-positive heights) are dropped and the previous value
// is kept, so a corrupt reading never reaches layout.
package measure
