package mapping

// Set is an insertion-ordered set of mappings, deduplicated by value
type Set struct {
	index map[PairKey]int
	items []*Mapping
}

// NewSet creates a set holding the given mappings
func NewSet(mappings ...*Mapping) *Set {
	s := &Set{index: make(map[PairKey]int)}
	for _, m := range mappings {
		s.Add(m)
	}
	return s
}

// Add inserts m, returning false if an equal mapping was already present
func (s *Set) Add(m *Mapping) bool {
	if s.index == nil {
		s.index = make(map[PairKey]int)
	}
	key := m.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, m)
	return true
}

// AddAll inserts every mapping of other
func (s *Set) AddAll(other *Set) {
	if other == nil {
		return
	}
	for _, m := range other.items {
		s.Add(m)
	}
}

// Contains reports whether an equal mapping is present
func (s *Set) Contains(m *Mapping) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[m.Key()]
	return ok
}

// Len returns the number of mappings
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns the mappings in insertion order. The slice must not be modified
func (s *Set) Items() []*Mapping {
	if s == nil {
		return nil
	}
	return s.items
}

// Clone returns an independent copy of the set
func (s *Set) Clone() *Set {
	c := NewSet()
	c.AddAll(s)
	return c
}

// SubsetOf reports whether every mapping of s is also in other
func (s *Set) SubsetOf(other *Set) bool {
	for _, m := range s.Items() {
		if !other.Contains(m) {
			return false
		}
	}
	return true
}
