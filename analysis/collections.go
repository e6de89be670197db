package analysis

import (
	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/refactoring"
)

// occurrences maps hypotheses to the mappings supporting them, remembering
// the order in which hypotheses were first seen
type occurrences[K comparable, V any] struct {
	order    []K
	values   map[K]V
	evidence map[K]*mapping.Set
}

func newOccurrences[K comparable, V any]() *occurrences[K, V] {
	return &occurrences[K, V]{
		values:   make(map[K]V),
		evidence: make(map[K]*mapping.Set),
	}
}

// add records m as evidence for value. A nil m records the hypothesis
// without evidence
func (o *occurrences[K, V]) add(key K, value V, m *mapping.Mapping) {
	set, ok := o.evidence[key]
	if !ok {
		set = mapping.NewSet()
		o.order = append(o.order, key)
		o.values[key] = value
		o.evidence[key] = set
	}
	if m != nil {
		set.Add(m)
	}
}

// addAll records every mapping of set as evidence for value
func (o *occurrences[K, V]) addAll(key K, value V, set *mapping.Set) {
	o.add(key, value, nil)
	o.evidence[key].AddAll(set)
}

func (o *occurrences[K, V]) remove(key K) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	delete(o.evidence, key)
	for ind, k := range o.order {
		if k == key {
			o.order = append(o.order[:ind:ind], o.order[ind+1:]...)
			break
		}
	}
}

func (o *occurrences[K, V]) keys() []K {
	return append([]K(nil), o.order...)
}

func (o *occurrences[K, V]) value(key K) V {
	return o.values[key]
}

func (o *occurrences[K, V]) support(key K) *mapping.Set {
	return o.evidence[key]
}

// ordered returns the hypotheses in first-seen order
func (o *occurrences[K, V]) ordered() []V {
	vals := make([]V, len(o.order))
	for ind, key := range o.order {
		vals[ind] = o.values[key]
	}
	return vals
}

// refactoringSet is an insertion-ordered set of refactorings
type refactoringSet[T refactoring.Refactoring] struct {
	seen  map[refactoring.Fingerprint]struct{}
	items []T
}

func (s *refactoringSet[T]) add(r T) bool {
	if s.seen == nil {
		s.seen = make(map[refactoring.Fingerprint]struct{})
	}
	fp := refactoring.FingerprintOf(r)
	if _, ok := s.seen[fp]; ok {
		return false
	}
	s.seen[fp] = struct{}{}
	s.items = append(s.items, r)
	return true
}

func (s *refactoringSet[T]) list() []T {
	return append([]T(nil), s.items...)
}
