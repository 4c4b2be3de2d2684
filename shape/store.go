package shape

// Store deduplicates shape definitions for one world. Acquiring a
// definition that equals a live entry returns the existing canonical
// instance and bumps its reference count; releasing decrements and frees
// the entry only at zero.
//
// The store is not safe for concurrent use; a world serializes access to it.
type Store struct {
	entries []storeEntry
}

type storeEntry struct {
	shape Shape
	refs  int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Acquire returns the canonical instance for def, creating it on first use.
func (s *Store) Acquire(def Shape) Shape {
	for i := range s.entries {
		if s.entries[i].shape.Equal(def) {
			s.entries[i].refs++
			return s.entries[i].shape
		}
	}
	s.entries = append(s.entries, storeEntry{shape: def, refs: 1})
	return def
}

// Release drops one reference to a canonical instance. Releasing a shape
// the store does not hold is a contract violation.
func (s *Store) Release(sh Shape) {
	for i := range s.entries {
		if !s.entries[i].shape.Equal(sh) {
			continue
		}
		s.entries[i].refs--
		if s.entries[i].refs == 0 {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
		}
		return
	}
	panic("shape: release of a shape the store does not own")
}

// Len returns the number of live canonical shapes.
func (s *Store) Len() int {
	return len(s.entries)
}

// Refs returns the reference count held for a canonical shape, zero if the
// store does not hold it.
func (s *Store) Refs(sh Shape) int {
	for i := range s.entries {
		if s.entries[i].shape.Equal(sh) {
			return s.entries[i].refs
		}
	}
	return 0
}
