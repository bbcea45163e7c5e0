// Package selection models the selected and expanded row sets of a table.
//
// Sets are keyed by row identity, never by index, so they survive sorting and
// filtering. All transitions are pure functions from one Set to a new Set; the
// Store wraps them with the controlled-component contract, in which every
// change is reported to the owner as a complete new set and the owner decides
// what the current value is.
package selection
