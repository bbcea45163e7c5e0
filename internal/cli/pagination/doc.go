// Package pagination provides paging and sorting for the static table
// output of the view and demo commands.
//
// This package contains:
//   - Params: page, page-size and sort flags with validation
//   - Meta: where a printed page sits inside the whole dataset
//   - RecordSorter: stable, number-aware sorting of dataset records
//
// Paging is applied by scrolling the grid engine, so a printed page is
// exactly the window the interactive grid would mount at that offset.
package pagination
