package javamodel

import (
	"errors"
	"fmt"

	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/replacement"
	"github.com/NickyBoy89/varrefactor/symbol"
)

// ErrNoStatement is returned when a statement to map cannot be found
var ErrNoStatement = errors.New("no statement found")

// MapperBuilder assembles the statement mapping between two versions of a
// method. Statements are found by text prefix, so only the start of each
// statement needs to be written out
type MapperBuilder struct {
	before   *Method
	after    *Method
	mapper   *mapping.Mapper
	mapped1  map[mapping.Key]struct{}
	mapped2  map[mapping.Key]struct{}
	firstErr error
}

// NewMapperBuilder starts a mapping between before and after
func NewMapperBuilder(before, after *Method) *MapperBuilder {
	return &MapperBuilder{
		before: before,
		after:  after,
		mapper: &mapping.Mapper{
			Operation1: before.Operation,
			Operation2: after.Operation,
			Mappings:   mapping.NewSet(),
		},
		mapped1: make(map[mapping.Key]struct{}),
		mapped2: make(map[mapping.Key]struct{}),
	}
}

// Map pairs the first statement of the old version starting with prefix1
// with the first statement of the new version starting with prefix2. The
// mapping is exact when the statements are identical and no replacement is given
func (mb *MapperBuilder) Map(prefix1, prefix2 string, replacements ...replacement.Replacement) *MapperBuilder {
	f1 := mb.before.Find(prefix1)
	if f1 == nil {
		mb.fail(fmt.Errorf("old version: %w: %q", ErrNoStatement, prefix1))
		return mb
	}
	f2 := mb.after.Find(prefix2)
	if f2 == nil {
		mb.fail(fmt.Errorf("new version: %w: %q", ErrNoStatement, prefix2))
		return mb
	}
	return mb.MapFragments(f1, f2, replacements...)
}

// MapFragments pairs two statements
func (mb *MapperBuilder) MapFragments(f1, f2 *mapping.Fragment, replacements ...replacement.Replacement) *MapperBuilder {
	mb.mapper.Mappings.Add(&mapping.Mapping{
		Fragment1:    f1,
		Fragment2:    f2,
		Replacements: replacements,
		Exact:        len(replacements) == 0 && f1.Text == f2.Text,
		Operation1:   mb.before.Operation,
		Operation2:   mb.after.Operation,
	})
	mb.mapped1[f1.Key()] = struct{}{}
	mb.mapped2[f2.Key()] = struct{}{}
	return mb
}

// WithChild attaches the mapping of a method extracted from, or inlined
// into, the compared body
func (mb *MapperBuilder) WithChild(child *mapping.Mapper) *MapperBuilder {
	mb.mapper.Children = append(mb.mapper.Children, child)
	return mb
}

// WithCallSite sets the operation whose call site the comparison is nested in
func (mb *MapperBuilder) WithCallSite(op *symbol.Operation) *MapperBuilder {
	mb.mapper.CallSiteOperation = op
	return mb
}

// Build returns the mapper, with every statement that was not mapped listed
// as unmapped. It fails if any statement could not be found
func (mb *MapperBuilder) Build() (*mapping.Mapper, error) {
	if mb.firstErr != nil {
		return nil, mb.firstErr
	}
	m := mb.mapper
	m.NonMappedLeavesT1, m.NonMappedInnerNodesT1 = unmapped(mb.before, mb.mapped1)
	m.NonMappedLeavesT2, m.NonMappedInnerNodesT2 = unmapped(mb.after, mb.mapped2)
	return m, nil
}

func (mb *MapperBuilder) fail(err error) {
	if mb.firstErr == nil {
		mb.firstErr = err
	}
}

func unmapped(method *Method, mapped map[mapping.Key]struct{}) (leaves, inner []*mapping.Fragment) {
	for _, f := range method.Statements {
		if _, ok := mapped[f.Key()]; ok {
			continue
		}
		if f.Kind == mapping.Leaf {
			leaves = append(leaves, f)
		} else {
			inner = append(inner, f)
		}
	}
	return leaves, inner
}
