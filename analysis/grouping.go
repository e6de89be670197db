package analysis

import (
	"strings"

	"github.com/NickyBoy89/varrefactor/internal/textutil"
	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/replacement"
	"github.com/NickyBoy89/varrefactor/symbol"
)

type nameOccurrences = occurrences[replacement.Key, replacement.Replacement]
type declarationOccurrences = occurrences[replacement.DeclarationKey, *replacement.DeclarationReplacement]

// eligible reports whether r may count as evidence of a rename inside m
func (a *Analysis) eligible(m *mapping.Mapping, r replacement.Replacement) bool {
	return !returnVariableMapping(m, r) &&
		!containsUnrelatedInvocationReplacement(m) &&
		a.notInsideAnonymousClassSignature(m, r)
}

// returnVariableMapping reports whether m only maps `return before;` to
// `return after;`, which says nothing about the variables themselves
func returnVariableMapping(m *mapping.Mapping, r replacement.Replacement) bool {
	return strings.TrimSpace(m.Fragment1.Text) == "return "+r.Before()+";" &&
		strings.TrimSpace(m.Fragment2.Text) == "return "+r.After()+";"
}

// containsUnrelatedInvocationReplacement reports whether m swaps a call for a
// completely different one, in which case the statements are only loosely related
func containsUnrelatedInvocationReplacement(m *mapping.Mapping) bool {
	for _, mir := range m.MethodInvocationReplacements() {
		if mir.DifferentExpressionNameAndArguments() {
			return true
		}
	}
	return false
}

// notInsideAnonymousClassSignature rejects a replacement between two
// statements declaring anonymous classes when either name only shows up on
// method declaration lines of the class bodies
func (a *Analysis) notInsideAnonymousClassSignature(m *mapping.Mapping, r replacement.Replacement) bool {
	if len(m.Fragment1.AnonymousClasses) == 0 || len(m.Fragment2.AnonymousClasses) == 0 {
		return true
	}
	return a.usedOutsideSignature(m.Fragment1, r.Before()) && a.usedOutsideSignature(m.Fragment2, r.After())
}

func (a *Analysis) usedOutsideSignature(f *mapping.Fragment, name string) bool {
	for _, line := range f.Lines() {
		line = textutil.PrepareLine(line, a.opts.signatureAnnotations)
		if !textutil.IsMethodSignature(line) && textutil.ContainsToken(line, name) {
			return true
		}
	}
	return false
}

// replacementOccurrences groups every variable-name replacement of the
// mappings with the mappings it appears in. Array accesses are reduced to
// the accessed variable, and so are array arguments of otherwise matching calls
func (a *Analysis) replacementOccurrences() *nameOccurrences {
	occ := newOccurrences[replacement.Key, replacement.Replacement]()
	for _, m := range a.mappings.Items() {
		for _, r := range m.Replacements {
			switch r.Kind() {
			case replacement.VariableName:
				if a.eligible(m, r) {
					occ.add(r.Key(), r, m)
				}
			case replacement.VariableReplacedWithArrayAccess:
				stripped := replacement.Variable(replacement.StripArrayAccess(r.Before()), replacement.StripArrayAccess(r.After()))
				if stripped.Before() != stripped.After() && a.eligible(m, r) {
					occ.add(stripped.Key(), stripped, m)
				}
			case replacement.MethodInvocation:
				mir, ok := r.(*replacement.MethodInvocationReplacement)
				if !ok || !a.eligible(m, r) {
					continue
				}
				for _, arg := range arrayArguments(mir.InvokedBefore, mir.InvokedAfter) {
					occ.add(arg.Key(), arg, m)
				}
			}
		}
	}
	return occ
}

// arrayArguments pairs up the arguments of two calls to the same method, and
// returns the variables behind the pairs where an array is accessed
func arrayArguments(inv1, inv2 *symbol.Invocation) []replacement.Basic {
	if inv1 == nil || inv2 == nil || inv1.Name != inv2.Name || len(inv1.Arguments) != len(inv2.Arguments) {
		return nil
	}
	var found []replacement.Basic
	for ind, arg1 := range inv1.Arguments {
		arg2 := inv2.Arguments[ind]
		if !strings.Contains(arg1, "[") && !strings.Contains(arg2, "[") {
			continue
		}
		before, after := replacement.StripArrayAccess(arg1), replacement.StripArrayAccess(arg2)
		if before != after {
			found = append(found, replacement.Variable(before, after))
		}
	}
	return found
}

// declarationOccurrences groups the variable-name replacements whose names
// resolve to declarations on both sides, by the resolved declarations
func (a *Analysis) declarationOccurrences() *declarationOccurrences {
	occ := newOccurrences[replacement.DeclarationKey, *replacement.DeclarationReplacement]()
	for _, m := range a.mappings.Items() {
		for _, r := range m.Replacements {
			if r.Kind() != replacement.VariableName || !a.eligible(m, r) {
				continue
			}
			v1, ok1 := a.declaration1In(r, m)
			v2, ok2 := a.declaration2In(r, m)
			if !ok1 || !ok2 {
				continue
			}
			dr := &replacement.DeclarationReplacement{
				Declaration1: v1.Declaration,
				Declaration2: v2.Declaration,
				Operation1:   v1.Operation,
				Operation2:   v2.Operation,
			}
			occ.add(dr.DeclarationKey(), dr, m)
		}
	}
	a.pruneParameterConflicts(occ)
	return occ
}

// pruneParameterConflicts drops the pairs contradicting a renamed parameter:
// once a removed parameter is seen paired with the parameter that replaced it,
// no other pairing of either of the two can be a rename
func (a *Analysis) pruneParameterConflicts(occ *declarationOccurrences) {
	var matched []symbol.ParameterDiff
	for _, pd := range a.operationDiff.RenamedParameters() {
		for _, key := range occ.keys() {
			dr := occ.value(key)
			if pd.Removed.Declaration.Equal(dr.Declaration1) && pd.Added.Declaration.Equal(dr.Declaration2) {
				matched = append(matched, pd)
				break
			}
		}
	}
	for _, pd := range matched {
		for _, key := range occ.keys() {
			dr := occ.value(key)
			removed := pd.Removed.Declaration.Equal(dr.Declaration1)
			added := pd.Added.Declaration.Equal(dr.Declaration2)
			if removed != added {
				a.log.WithField("pair", dr.Declaration1.Name+" -> "+dr.Declaration2.Name).
					Debug("Dropping pair that conflicts with a renamed parameter")
				occ.remove(key)
			}
		}
	}
}
