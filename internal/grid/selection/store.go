package selection

// ChangeFunc receives the complete new set after every mutation.
type ChangeFunc func(next Set)

// Store applies transitions to one row set and reports them to its owner.
//
// A controlled store never adopts a value on its own: the owner receives the
// proposed set through the change callback and calls Sync with whatever it
// decides is current. An uncontrolled store adopts each new set itself and
// still reports it.
type Store struct {
	current    Set
	onChange   ChangeFunc
	controlled bool
}

// NewControlled returns a store whose value is owned by the caller.
func NewControlled(initial Set, onChange ChangeFunc) *Store {
	return &Store{current: initial.Clone(), onChange: onChange, controlled: true}
}

// NewUncontrolled returns a store that keeps its own value. onChange may be nil.
func NewUncontrolled(initial Set, onChange ChangeFunc) *Store {
	return &Store{current: initial.Clone(), onChange: onChange}
}

// Controlled reports whether the owner is the source of truth.
func (s *Store) Controlled() bool {
	return s.controlled
}

// Current returns a copy of the set as last synced or adopted.
func (s *Store) Current() Set {
	return s.current.Clone()
}

// Has reports whether id is in the current set.
func (s *Store) Has(id string) bool {
	return s.current.Has(id)
}

// Len returns the size of the current set.
func (s *Store) Len() int {
	return s.current.Len()
}

// Sync replaces the current value with the owner's set.
func (s *Store) Sync(next Set) {
	s.current = next.Clone()
}

// Aggregate summarises the current set against ids.
func (s *Store) Aggregate(ids []string) Aggregate {
	return AggregateOf(s.current, ids)
}

// Toggle proposes flipping id.
func (s *Store) Toggle(id string) Set {
	return s.commit(Toggle(s.current, id))
}

// SelectRange proposes adding order[from..to].
func (s *Store) SelectRange(order []string, from, to int) Set {
	return s.commit(SelectRange(s.current, order, from, to))
}

// ToggleAll proposes the header-control transition over ids.
func (s *Store) ToggleAll(ids []string) Set {
	return s.commit(ToggleAll(s.current, ids))
}

// Replace proposes next as the new set.
func (s *Store) Replace(next Set) Set {
	return s.commit(next.Clone())
}

func (s *Store) commit(next Set) Set {
	if !s.controlled {
		s.current = next
	}
	if s.onChange != nil {
		s.onChange(next.Clone())
	}
	return next
}
