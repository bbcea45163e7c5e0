package pagination

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/rshade/gridkit/internal/dataset"
)

// RecordSorter sorts dataset records by one field.
type RecordSorter struct{}

// NewRecordSorter creates a RecordSorter.
func NewRecordSorter() *RecordSorter {
	return &RecordSorter{}
}

// Sort returns a sorted copy of records. Values that both parse as numbers
// compare numerically, everything else compares as text. Records missing the
// field sort last in either order. The sort is stable. An empty field returns
// records unchanged.
func (s *RecordSorter) Sort(records []dataset.Record, field, order string) []dataset.Record {
	if field == "" {
		return records
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b dataset.Record) int {
		av, bv := a.Text(field), b.Text(field)
		switch {
		case av == "" && bv == "":
			return 0
		case av == "":
			return 1
		case bv == "":
			return -1
		}
		c := compareValues(av, bv)
		if order == SortOrderDesc {
			c = -c
		}
		return c
	})
	return sorted
}

func compareValues(a, b string) int {
	af, aerr := strconv.ParseFloat(a, 64)
	bf, berr := strconv.ParseFloat(b, 64)
	if aerr == nil && berr == nil {
		return cmp.Compare(af, bf)
	}
	return cmp.Compare(a, b)
}
