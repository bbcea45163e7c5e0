// Package window computes which rows of a virtualized table must be mounted
// for a given scroll position.
//
// ComputeVisibleRange is the reference form: a single walk over estimated row
// heights. Windower answers the same question incrementally by keeping row
// heights in a prefix-sum tree, so a scroll or a single re-measured row costs
// O(log n) instead of a full rescan.
package window
