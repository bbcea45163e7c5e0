package selection

import "sort"

// Set is a set of row ids. The zero value is an empty set ready for reads;
// transitions always return a fresh Set.
type Set map[string]struct{}

// NewSet returns a set holding ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// IDs returns the ids in sorted order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Equal reports whether s and other hold the same ids.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Aggregate summarises how much of the current rows a set covers. It drives
// the header checkbox: unchecked, checked or indeterminate.
type Aggregate int

// Aggregate values.
const (
	None Aggregate = iota
	Some
	All
)

// String returns the aggregate name.
func (a Aggregate) String() string {
	switch a {
	case All:
		return "all"
	case Some:
		return "some"
	case None:
		return "none"
	default:
		return "none"
	}
}

// AggregateOf reports whether none, some or all of ids are in s. An empty
// table aggregates to None.
func AggregateOf(s Set, ids []string) Aggregate {
	if len(ids) == 0 {
		return None
	}
	hit := 0
	for _, id := range ids {
		if s.Has(id) {
			hit++
		}
	}
	switch hit {
	case 0:
		return None
	case len(ids):
		return All
	default:
		return Some
	}
}

// Toggle flips membership of id.
func Toggle(s Set, id string) Set {
	out := s.Clone()
	if out.Has(id) {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	return out
}

// SelectRange adds every id in order[from..to] inclusive. The bounds may be
// given in either order and are clamped to the slice.
func SelectRange(s Set, order []string, from, to int) Set {
	out := s.Clone()
	if len(order) == 0 {
		return out
	}
	if from > to {
		from, to = to, from
	}
	from = max(0, from)
	to = min(len(order)-1, to)
	for i := from; i <= to; i++ {
		out[order[i]] = struct{}{}
	}
	return out
}

// ToggleAll implements the header control: when every current row is in s,
// they are all removed; otherwise, including the indeterminate case, they
// are all added. Ids of rows outside the current set are left alone.
func ToggleAll(s Set, ids []string) Set {
	out := s.Clone()
	if AggregateOf(s, ids) == All {
		for _, id := range ids {
			delete(out, id)
		}
		return out
	}
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
