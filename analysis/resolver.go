package analysis

import (
	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/replacement"
	"github.com/NickyBoy89/varrefactor/symbol"
)

// side selects one of the two versions of the analyzed operation
type side int

const (
	before side = iota
	after
)

// resolved is a declaration together with the operation it belongs to
type resolved struct {
	Declaration *symbol.VariableDeclaration
	Operation   *symbol.Operation
}

// strategy is a single way of resolving a name to its declaration
type strategy func() (resolved, bool)

// firstResolved tries each strategy in order, returning the first hit
func firstResolved(strategies ...strategy) (resolved, bool) {
	for _, try := range strategies {
		if res, ok := try(); ok {
			return res, true
		}
	}
	return resolved{}, false
}

func (a *Analysis) operation(s side) *symbol.Operation {
	if s == before {
		return a.operation1
	}
	return a.operation2
}

func fragmentOf(m *mapping.Mapping, s side) *mapping.Fragment {
	if s == before {
		return m.Fragment1
	}
	return m.Fragment2
}

func operationOf(m *mapping.Mapping, s side) *symbol.Operation {
	if s == before {
		return m.Operation1
	}
	return m.Operation2
}

// inMappings resolves name inside the first statement on side s, among the
// mappings accepted by filter, that can see a declaration of it
func (a *Analysis) inMappings(s side, name string, filter func(*mapping.Mapping) bool) strategy {
	return func() (resolved, bool) {
		for _, m := range a.mappings.Items() {
			if !filter(m) {
				continue
			}
			if decl := fragmentOf(m, s).SearchVariableDeclaration(name); decl != nil {
				return resolved{Declaration: decl, Operation: operationOf(m, s)}, true
			}
		}
		return resolved{}, false
	}
}

// inParameters resolves name to a parameter of op
func inParameters(op *symbol.Operation, name string) strategy {
	return func() (resolved, bool) {
		if op == nil {
			return resolved{}, false
		}
		if decl := op.ParameterByName(name); decl != nil {
			return resolved{Declaration: decl, Operation: op}, true
		}
		return resolved{}, false
	}
}

// resolve runs the whole strategy chain for name: the mappings accepted by
// filter, then the parameters of the analyzed operation, then those of the
// call-site operation
func (a *Analysis) resolve(s side, name string, filter func(*mapping.Mapping) bool) (resolved, bool) {
	return firstResolved(
		a.inMappings(s, name, filter),
		inParameters(a.operation(s), name),
		inParameters(a.callSiteOperation, name),
	)
}

func containing(r replacement.Replacement) func(*mapping.Mapping) bool {
	return func(m *mapping.Mapping) bool {
		return m.ContainsReplacement(r)
	}
}

func pinned(pin *mapping.Mapping, r replacement.Replacement) func(*mapping.Mapping) bool {
	key := pin.Key()
	return func(m *mapping.Mapping) bool {
		return m.Key() == key && m.ContainsReplacement(r)
	}
}

// declaration1 resolves the before-name of r in the old version
func (a *Analysis) declaration1(r replacement.Replacement) (resolved, bool) {
	return a.resolve(before, r.Before(), containing(r))
}

// declaration2 resolves the after-name of r in the new version
func (a *Analysis) declaration2(r replacement.Replacement) (resolved, bool) {
	return a.resolve(after, r.After(), containing(r))
}

func (a *Analysis) declaration1In(r replacement.Replacement, m *mapping.Mapping) (resolved, bool) {
	return a.resolve(before, r.Before(), pinned(m, r))
}

func (a *Analysis) declaration2In(r replacement.Replacement, m *mapping.Mapping) (resolved, bool) {
	return a.resolve(after, r.After(), pinned(m, r))
}

// mentioningMembers accepts the mappings that contain r, or whose
// replacements on side s name exactly the given members
func mentioningMembers(r replacement.Replacement, members []string, s side) func(*mapping.Mapping) bool {
	want := make(map[string]struct{}, len(members))
	for _, name := range members {
		want[name] = struct{}{}
	}
	return func(m *mapping.Mapping) bool {
		if m.ContainsReplacement(r) {
			return true
		}
		if len(want) == 0 {
			return false
		}
		found := make(map[string]struct{})
		for _, rep := range m.Replacements {
			name := rep.Before()
			if s == after {
				name = rep.After()
			}
			if _, ok := want[name]; ok {
				found[name] = struct{}{}
			}
		}
		return len(found) == len(want)
	}
}

// mergedMember resolves one of the variables of a merge in the old version
func (a *Analysis) mergedMember(merge *replacement.MergeVariableReplacement, name string) (resolved, bool) {
	return a.resolve(before, name, mentioningMembers(merge, merge.MergedVariables(), before))
}

// mergeTarget resolves the variable a merge produced, in the new version
func (a *Analysis) mergeTarget(merge *replacement.MergeVariableReplacement) (resolved, bool) {
	return a.resolve(after, merge.After(), mentioningMembers(merge, merge.MergedVariables(), before))
}

// splitMember resolves one of the variables of a split in the new version
func (a *Analysis) splitMember(split *replacement.SplitVariableReplacement, name string) (resolved, bool) {
	return a.resolve(after, name, mentioningMembers(split, split.SplitVariables(), after))
}

// splitSource resolves the variable that was split, in the old version
func (a *Analysis) splitSource(split *replacement.SplitVariableReplacement) (resolved, bool) {
	return a.resolve(before, split.Before(), mentioningMembers(split, split.SplitVariables(), after))
}
