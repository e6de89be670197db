package analysis

import (
	"strings"

	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/replacement"
	"github.com/NickyBoy89/varrefactor/symbol"
)

// consistencyCheck reports whether v1 and v2 look like the same variable
// throughout the mappings
func (a *Analysis) consistencyCheck(v1, v2 *symbol.VariableDeclaration) bool {
	return !a.variableAppearsInExtractedMethod(v1, v2) && !a.inconsistentVariableMapping(v1, v2)
}

// inconsistentVariableMapping reports whether some mapping contradicts v1
// having become v2: the statement declaring one of them is mapped to a
// statement declaring something else, or to a statement that starts with the
// declaration's initializer, or an identical statement keeps using one of
// the two names unchanged
func (a *Analysis) inconsistentVariableMapping(v1, v2 *symbol.VariableDeclaration) bool {
	if v1 == nil || v2 == nil {
		return false
	}
	for _, m := range a.mappings.Items() {
		decls1 := m.Fragment1.Declarations
		decls2 := m.Fragment2.Declarations
		if symbol.ContainsDeclaration(decls1, v1) {
			if len(decls2) > 0 && !symbol.ContainsDeclaration(decls2, v2) {
				return true
			}
			if len(decls2) == 0 && v1.Initializer != nil && strings.HasPrefix(m.Fragment2.Text, v1.Initializer.Text) {
				return true
			}
		}
		if symbol.ContainsDeclaration(decls2, v2) {
			if len(decls1) > 0 && !symbol.ContainsDeclaration(decls1, v1) {
				return true
			}
			if len(decls1) == 0 && v2.Initializer != nil && strings.HasPrefix(m.Fragment1.Text, v2.Initializer.Text) {
				return true
			}
		}
		if m.Exact && (bothFragmentsUseVariable(v1, m) || bothFragmentsUseVariable(v2, m)) {
			if _, ok := a.operation2.LoopWithVariables(v1.Name, v2.Name); !ok {
				return true
			}
		}
	}
	return false
}

func bothFragmentsUseVariable(v *symbol.VariableDeclaration, m *mapping.Mapping) bool {
	return m.Fragment1.UsesVariable(v.Name) && m.Fragment2.UsesVariable(v.Name)
}

// variableAppearsInExtractedMethod reports whether the declaration of v1 was
// moved into a method extracted from the body, unless v2 is initialized from
// a call to that method, directly or through another local
func (a *Analysis) variableAppearsInExtractedMethod(v1, v2 *symbol.VariableDeclaration) bool {
	if v1 == nil {
		return false
	}
	for _, child := range a.children {
		for _, m := range child.Mappings.Items() {
			if !symbol.ContainsDeclaration(m.Fragment1.Declarations, v1) {
				continue
			}
			if v2 != nil && v2.Initializer != nil && a.initializerCalls(v2.Initializer, child.Operation2) {
				return false
			}
			return true
		}
	}
	return false
}

// initializerCalls reports whether init calls extracted, or uses a local
// whose own initializer calls it
func (a *Analysis) initializerCalls(init *symbol.Expression, extracted *symbol.Operation) bool {
	for _, inv := range init.Invocations {
		if inv.MatchesOperation(extracted) {
			return true
		}
	}
	if len(init.Invocations) == 0 || a.operation2 == nil {
		return false
	}
	for _, variable := range init.Variables {
		for _, decl := range a.operation2.FindDeclaration().ByName(variable) {
			if decl.Initializer == nil {
				continue
			}
			for _, inv := range decl.Initializer.Invocations {
				if inv.MatchesOperation(extracted) {
					return true
				}
			}
		}
	}
	return false
}

// replacementInLocalVariableDeclaration reports whether a replacement seen
// in a single mapping renames a local declaration: both names resolve, in the
// first mapping containing the replacement, to declarations of the same kind
// that do not coexist in either version
func (a *Analysis) replacementInLocalVariableDeclaration(r replacement.Replacement) bool {
	var v1, v2 *symbol.VariableDeclaration
	for _, m := range a.mappings.Items() {
		if m.ContainsReplacement(r) {
			v1 = m.Fragment1.SearchVariableDeclaration(r.Before())
			v2 = m.Fragment2.SearchVariableDeclaration(r.After())
			break
		}
	}
	if v1 == nil || v2 == nil || !v1.EqualKind(v2) {
		return false
	}
	if symbol.ContainsDeclarationNamed(a.operation1.AllVariableDeclarations, v2.Name) {
		return false
	}
	if symbol.ContainsDeclarationNamed(a.operation2.AllVariableDeclarations, v1.Name) {
		if _, ok := a.operation2.LoopWithVariables(v1.Name, v2.Name); !ok {
			return false
		}
	}
	return a.consistencyCheck(v1, v2)
}

// potentialParameterRename reports whether both names are parameters at the
// same position, of the analyzed operations or of the call-site operation
func (a *Analysis) potentialParameterRename(r replacement.Replacement) bool {
	index1 := a.operation1.ParameterIndex(r.Before())
	if index1 == -1 && a.callSiteOperation != nil {
		index1 = a.callSiteOperation.ParameterIndex(r.Before())
	}
	index2 := a.operation2.ParameterIndex(r.After())
	if index2 == -1 && a.callSiteOperation != nil {
		index2 = a.callSiteOperation.ParameterIndex(r.After())
	}
	return index1 >= 0 && index1 == index2
}

// cyclicRename reports whether r is part of a chain of renames, e.g. a
// swap of `a` and `b`
func cyclicRename(renames []replacement.Replacement, r replacement.Replacement) bool {
	for _, other := range renames {
		if r.After() == other.Before() || r.Before() == other.After() {
			return true
		}
	}
	return false
}
