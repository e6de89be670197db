package analysis

import (
	log "github.com/sirupsen/logrus"

	"github.com/NickyBoy89/varrefactor/internal/textutil"
	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/refactoring"
	"github.com/NickyBoy89/varrefactor/replacement"
)

// findConsistentVariableRenames accepts renames on two tracks. Replacements
// resolved to the same pair of declarations are accepted when enough
// mappings support them; the remaining replacements are grouped by name,
// and those that cannot be resolved on both sides become candidate attributes
func (a *Analysis) findConsistentVariableRenames() {
	declOcc := a.declarationOccurrences()
	consistent, _ := replacement.ConsistentRenames(declOcc.ordered())
	for _, dr := range consistent {
		evidence := declOcc.support(dr.DeclarationKey())
		supported := evidence.Len() >= a.opts.minRenameSupport && a.consistencyCheck(dr.Declaration1, dr.Declaration2)
		single := evidence.Len() == 1 && a.replacementInLocalVariableDeclaration(dr.VariableNameReplacement())
		if supported || single {
			a.acceptRename(resolved{dr.Declaration1, dr.Operation1}, resolved{dr.Declaration2, dr.Operation2}, evidence)
		}
	}

	nameOcc := a.replacementOccurrences()
	consistentNames, _ := replacement.ConsistentRenames(nameOcc.ordered())
	final := newOccurrences[replacement.Key, replacement.Replacement]()
	for _, r := range consistentNames {
		v1, ok1 := a.declaration1(r)
		v2, ok2 := a.declaration2(r)
		evidence := nameOcc.support(r.Key())

		supported := evidence.Len() >= a.opts.minRenameSupport && ok1 && ok2 && a.consistencyCheck(v1.Declaration, v2.Declaration)
		unresolved := !ok1 || !ok2
		single := evidence.Len() == 1 && a.replacementInLocalVariableDeclaration(r)
		if supported || unresolved || single || a.potentialParameterRename(r) {
			final.addAll(r.Key(), r, evidence)
		}
		if ok1 && ok2 && !v1.Declaration.Parameter && v2.Declaration.Parameter &&
			a.consistencyCheck(v1.Declaration, v2.Declaration) &&
			a.operation1.ParameterIndex(v2.Declaration.Name) == -1 {
			final.addAll(r.Key(), r, evidence)
		}
	}

	accepted := final.ordered()
	for _, r := range accepted {
		v1, ok1 := a.declaration1(r)
		v2, ok2 := a.declaration2(r)
		if ok1 && ok2 {
			a.acceptRename(v1, v2, final.support(r.Key()))
			continue
		}
		a.addCandidateAttribute(r, v1, v2, nameOcc.support(r.Key()), cyclicRename(accepted, r))
	}
}

// addCandidateAttribute records a rename that could not be resolved to local
// declarations on both sides, unless the names only differ cosmetically or
// each version already uses the other version's name for something else
func (a *Analysis) addCandidateAttribute(r replacement.Replacement, v1, v2 resolved, evidence *mapping.Set, cyclic bool) {
	logger := a.log.WithField("rename", r.Before()+" -> "+r.After())
	if textutil.SameNormalized(r.Before(), r.After()) {
		logger.Debug("Names only differ cosmetically")
		return
	}
	if a.operation1.UsesVariable(r.After()) && !cyclic {
		logger.Debug("New name is already used by the old version")
		return
	}
	if a.operation2.UsesVariable(r.Before()) && !cyclic {
		logger.Debug("Old name is still used by the new version")
		return
	}
	if a.extractedVariableNamed(r.After()) {
		logger.Debug("New name belongs to an extracted variable")
		return
	}
	a.candidateAttributeRenames.add(&refactoring.CandidateAttribute{
		OriginalName:        r.Before(),
		RenamedName:         r.After(),
		OperationBefore:     a.operation1,
		OperationAfter:      a.operation2,
		Evidence:            evidence,
		OriginalDeclaration: v1.Declaration,
		RenamedDeclaration:  v2.Declaration,
	})
}

// acceptRename records the rename of v1 to v2, unless an extract variable,
// merge, or split refactoring already explains it. A type change is reported
// alongside when the declared types differ
func (a *Analysis) acceptRename(v1, v2 resolved, evidence *mapping.Set) {
	ref := &refactoring.RenameVariable{
		Original:        v1.Declaration,
		Renamed:         v2.Declaration,
		OperationBefore: v1.Operation,
		OperationAfter:  v2.Operation,
		Evidence:        evidence,
	}
	logger := a.log.WithFields(log.Fields{
		"original": v1.Declaration.String(),
		"renamed":  v2.Declaration.String(),
	})
	switch {
	case a.conflictsWithExtractVariable(ref):
		logger.Debug("Rename is explained by an extracted variable")
		return
	case a.conflictsWithMerge(ref):
		logger.Debug("Rename is part of a merge")
		return
	case a.conflictsWithSplit(ref):
		logger.Debug("Rename is part of a split")
		return
	}
	if !a.renames.add(ref) {
		return
	}
	if !v1.Declaration.Type.Equal(v2.Declaration.Type) {
		change := &refactoring.ChangeVariableType{
			Original:        v1.Declaration,
			Changed:         v2.Declaration,
			OperationBefore: v1.Operation,
			OperationAfter:  v2.Operation,
			Evidence:        evidence,
		}
		a.typeChanges.add(change)
		a.registry.Add(change)
	}
}
