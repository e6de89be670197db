package analysis

import (
	"strings"

	"github.com/NickyBoy89/varrefactor/internal/textutil"
	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/refactoring"
	"github.com/NickyBoy89/varrefactor/replacement"
	"github.com/NickyBoy89/varrefactor/symbol"
)

// receiverGroups groups variable/call replacements by the receiver of the
// call, in the order receivers are first seen
type receiverGroups struct {
	direction replacement.Direction
	order     []string
	groups    map[string]*occurrences[replacement.Key, replacement.Replacement]
}

func newReceiverGroups(direction replacement.Direction) *receiverGroups {
	return &receiverGroups{
		direction: direction,
		groups:    make(map[string]*occurrences[replacement.Key, replacement.Replacement]),
	}
}

// addInvocation records r under the receiver of its call. Calls without a
// receiver, and replacements going the other direction, are ignored
func (rg *receiverGroups) addInvocation(r *replacement.WithInvocation, m *mapping.Mapping) {
	if r.Invoked == nil || !r.Invoked.HasExpression() || r.Direction != rg.direction {
		return
	}
	rg.add(r.Invoked.Expression, r, m)
}

func (rg *receiverGroups) add(receiver string, r replacement.Replacement, m *mapping.Mapping) {
	group, ok := rg.groups[receiver]
	if !ok {
		group = newOccurrences[replacement.Key, replacement.Replacement]()
		rg.groups[receiver] = group
		rg.order = append(rg.order, receiver)
	}
	group.add(r.Key(), r, m)
}

// collect returns, for every receiver, the names picked by name from its
// replacements, skipping names that only cosmetically differ from the
// receiver itself, together with the union of their evidence. Receivers left
// with fewer than two names are not reported
func (rg *receiverGroups) collect(name func(replacement.Replacement) string, emit func(receiver string, names []string, evidence *mapping.Set)) {
	for _, receiver := range rg.order {
		group := rg.groups[receiver]
		var names []string
		evidence := mapping.NewSet()
		for _, key := range group.keys() {
			n := name(group.value(key))
			if textutil.SameNormalized(receiver, n) {
				continue
			}
			names = append(names, n)
			evidence.AddAll(group.support(key))
		}
		if len(names) > 1 {
			emit(receiver, names, evidence)
		}
	}
}

// initializerCall returns the call that makes up the whole initializer of
// the declaration of name in statement, if there is one
func initializerCall(statement *mapping.Fragment, name string) (*symbol.Expression, *symbol.Invocation, bool) {
	decl := statement.VariableDeclaration(name)
	if decl == nil || decl.Initializer == nil {
		return nil, nil, false
	}
	inv := decl.Initializer.InvocationCoveringEntireFragment()
	if inv == nil {
		return nil, nil, false
	}
	return decl.Initializer, inv, true
}

// findVariableSplits looks for variables of the old version replaced by
// several variables of the new version. Besides explicit split replacements,
// a split is inferred when removed locals initialized from calls on the same
// receiver, e.g. `String f1 = r.first()`, are replaced by different variables,
// and when fields of one composite, `point.x` and `point.y`, are replaced by
// variables of their own
func (a *Analysis) findVariableSplits() {
	splitMap := newOccurrences[replacement.Key, *replacement.SplitVariableReplacement]()
	receivers := newReceiverGroups(replacement.InvocationToVariable)
	composites := newReceiverGroups(replacement.InvocationToVariable)

	for _, m := range a.mappings.Items() {
		for _, r := range m.Replacements {
			switch r := r.(type) {
			case *replacement.SplitVariableReplacement:
				splitMap.add(r.Key(), r, m)
			case *replacement.WithInvocation:
				receivers.addInvocation(r, m)
			default:
				if r.Kind() != replacement.VariableName {
					continue
				}
				for _, statement := range a.nonMappedLeavesT1 {
					if init, inv, ok := initializerCall(statement, r.Before()); ok {
						receivers.addInvocation(replacement.NewWithInvocation(init.Text, r.After(), inv, replacement.InvocationToVariable), m)
					}
					if init, inv, ok := initializerCall(statement, r.After()); ok {
						receivers.addInvocation(replacement.NewWithInvocation(init.Text, r.After(), inv, replacement.InvocationToVariable), m)
					}
				}
				if ind := strings.Index(r.Before(), "."); ind >= 0 {
					composites.add(r.Before()[:ind], r, m)
				}
			}
		}
	}
	if a.operation2 != nil {
		for _, statement := range a.nonMappedLeavesT1 {
			for _, name := range a.operation2.ParameterNames() {
				if init, inv, ok := initializerCall(statement, name); ok {
					receivers.addInvocation(replacement.NewWithInvocation(init.Text, name, inv, replacement.InvocationToVariable), nil)
				}
			}
		}
	}
	addSplit := func(receiver string, names []string, evidence *mapping.Set) {
		split := replacement.NewSplitVariable(receiver, names)
		splitMap.addAll(split.Key(), split, evidence)
	}
	receivers.collect(replacement.Replacement.After, addSplit)
	composites.collect(replacement.Replacement.After, addSplit)

	for _, key := range splitMap.keys() {
		split := splitMap.value(key)
		evidence := splitMap.support(key)
		if evidence.Len() == 0 {
			a.log.WithField("split", split.Before()+" -> "+split.After()).Debug("Dropping split without supporting mappings")
			continue
		}

		var members []*symbol.VariableDeclaration
		var operationAfter *symbol.Operation
		for _, name := range split.SplitVariables() {
			res, ok := a.splitMember(split, name)
			if !ok {
				continue
			}
			if !symbol.ContainsDeclaration(members, res.Declaration) {
				members = append(members, res.Declaration)
			}
			if operationAfter == nil {
				operationAfter = res.Operation
			}
		}
		old, ok := a.splitSource(split)
		if ok && len(members) > 1 && len(members) == len(split.SplitVariables()) {
			a.splits.add(&refactoring.SplitVariable{
				Old:             old.Declaration,
				Split:           members,
				OperationBefore: old.Operation,
				OperationAfter:  operationAfter,
				Evidence:        evidence,
			})
			continue
		}
		a.log.WithField("split", split.Before()+" -> "+split.After()).Debug("Split members did not resolve, keeping it as a candidate")
		a.candidateSplits.add(&refactoring.CandidateSplitVariable{
			OldName:         split.Before(),
			SplitNames:      split.SplitVariables(),
			OperationBefore: a.operation1,
			OperationAfter:  a.operation2,
			Evidence:        evidence,
		})
	}
}

// findVariableMerges looks for several variables of the old version replaced
// by a single variable of the new version. It mirrors findVariableSplits, and
// also infers a merge when variables are replaced by fields of one composite
// variable, e.g. `x` by `point.x` and `y` by `point.y`
func (a *Analysis) findVariableMerges() {
	mergeMap := newOccurrences[replacement.Key, *replacement.MergeVariableReplacement]()
	receivers := newReceiverGroups(replacement.VariableToInvocation)
	composites := newReceiverGroups(replacement.VariableToInvocation)

	for _, m := range a.mappings.Items() {
		for _, r := range m.Replacements {
			switch r := r.(type) {
			case *replacement.MergeVariableReplacement:
				mergeMap.add(r.Key(), r, m)
			case *replacement.WithInvocation:
				receivers.addInvocation(r, m)
			default:
				if r.Kind() != replacement.VariableName {
					continue
				}
				for _, statement := range a.nonMappedLeavesT2 {
					if init, inv, ok := initializerCall(statement, r.Before()); ok {
						receivers.addInvocation(replacement.NewWithInvocation(r.Before(), init.Text, inv, replacement.VariableToInvocation), m)
					}
					if init, inv, ok := initializerCall(statement, r.After()); ok {
						receivers.addInvocation(replacement.NewWithInvocation(r.Before(), init.Text, inv, replacement.VariableToInvocation), m)
					}
				}
				if ind := strings.Index(r.After(), "."); ind >= 0 {
					composites.add(r.After()[:ind], r, m)
				}
			}
		}
	}
	if a.operation1 != nil {
		for _, statement := range a.nonMappedLeavesT2 {
			for _, name := range a.operation1.ParameterNames() {
				if init, inv, ok := initializerCall(statement, name); ok {
					receivers.addInvocation(replacement.NewWithInvocation(name, init.Text, inv, replacement.VariableToInvocation), nil)
				}
			}
		}
	}
	addMerge := func(receiver string, names []string, evidence *mapping.Set) {
		merge := replacement.NewMergeVariable(names, receiver)
		mergeMap.addAll(merge.Key(), merge, evidence)
	}
	receivers.collect(replacement.Replacement.Before, addMerge)
	composites.collect(replacement.Replacement.Before, addMerge)

	for _, key := range mergeMap.keys() {
		merge := mergeMap.value(key)
		evidence := mergeMap.support(key)
		if evidence.Len() == 0 {
			a.log.WithField("merge", merge.Before()+" -> "+merge.After()).Debug("Dropping merge without supporting mappings")
			continue
		}

		var members []*symbol.VariableDeclaration
		var operationBefore *symbol.Operation
		for _, name := range merge.MergedVariables() {
			res, ok := a.mergedMember(merge, name)
			if !ok {
				continue
			}
			if !symbol.ContainsDeclaration(members, res.Declaration) {
				members = append(members, res.Declaration)
			}
			if operationBefore == nil {
				operationBefore = res.Operation
			}
		}
		target, ok := a.mergeTarget(merge)
		if ok && len(members) > 1 && len(members) == len(merge.MergedVariables()) {
			ref := &refactoring.MergeVariable{
				Merged:          members,
				New:             target.Declaration,
				OperationBefore: operationBefore,
				OperationAfter:  target.Operation,
				Evidence:        evidence,
			}
			if a.conflictsWithInlineVariable(ref) {
				a.log.WithField("merge", ref.String()).Debug("Merge is explained by an inlined variable")
				continue
			}
			a.merges.add(ref)
			continue
		}
		a.log.WithField("merge", merge.Before()+" -> "+merge.After()).Debug("Merge members did not resolve, keeping it as a candidate")
		a.candidateMerges.add(&refactoring.CandidateMergeVariable{
			MergedNames:     merge.MergedVariables(),
			NewName:         merge.After(),
			OperationBefore: a.operation1,
			OperationAfter:  a.operation2,
			Evidence:        evidence,
		})
	}
}
