package mapping

import (
	"github.com/NickyBoy89/varrefactor/replacement"
	"github.com/NickyBoy89/varrefactor/symbol"
)

// Mapper is the result of aligning the bodies of two operations
type Mapper struct {
	Operation1 *symbol.Operation
	Operation2 *symbol.Operation
	// The operation whose call site this comparison is nested in, if any,
	// e.g. when the body of an inlined method is compared
	CallSiteOperation *symbol.Operation

	Mappings *Set

	NonMappedLeavesT1     []*Fragment
	NonMappedLeavesT2     []*Fragment
	NonMappedInnerNodesT1 []*Fragment
	NonMappedInnerNodesT2 []*Fragment

	// Mappers of methods extracted from, or inlined into, this body
	Children []*Mapper
}

// Reverse returns the same alignment seen from the other side: the old and
// new versions swap, and so does every replacement
func (m *Mapper) Reverse() *Mapper {
	reversed := &Mapper{
		Operation1:            m.Operation2,
		Operation2:            m.Operation1,
		CallSiteOperation:     m.CallSiteOperation,
		Mappings:              NewSet(),
		NonMappedLeavesT1:     m.NonMappedLeavesT2,
		NonMappedLeavesT2:     m.NonMappedLeavesT1,
		NonMappedInnerNodesT1: m.NonMappedInnerNodesT2,
		NonMappedInnerNodesT2: m.NonMappedInnerNodesT1,
	}
	for _, mapping := range m.Mappings.Items() {
		replacements := make([]replacement.Replacement, len(mapping.Replacements))
		for ind, r := range mapping.Replacements {
			replacements[ind] = replacement.Reverse(r)
		}
		reversed.Mappings.Add(&Mapping{
			Fragment1:    mapping.Fragment2,
			Fragment2:    mapping.Fragment1,
			Replacements: replacements,
			Exact:        mapping.Exact,
			Operation1:   mapping.Operation2,
			Operation2:   mapping.Operation1,
		})
	}
	for _, child := range m.Children {
		reversed.Children = append(reversed.Children, child.Reverse())
	}
	return reversed
}

// FindReferences returns the mappings in which the old statement uses
// declaration1 and the new statement uses declaration2, both within the
// declarations' scopes
func FindReferences(declaration1, declaration2 *symbol.VariableDeclaration, mappings *Set) *Set {
	references := NewSet()
	for _, m := range mappings.Items() {
		if !declaration1.Scope.Subsumes(m.Fragment1.Location) || !declaration2.Scope.Subsumes(m.Fragment2.Location) {
			continue
		}
		if m.Fragment1.UsesVariable(declaration1.Name) && m.Fragment2.UsesVariable(declaration2.Name) {
			references.Add(m)
		}
	}
	return references
}
