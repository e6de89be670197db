package analysis

import (
	"github.com/NickyBoy89/varrefactor/refactoring"
	"github.com/NickyBoy89/varrefactor/symbol"
)

// conflictsWithExtractVariable reports whether the renamed variable was
// introduced by an extract variable refactoring instead
func (a *Analysis) conflictsWithExtractVariable(ref *refactoring.RenameVariable) bool {
	for _, extract := range refactoring.OfType[*refactoring.ExtractVariable](a.registry) {
		if extract.Declaration.Equal(ref.Renamed) && extract.Operation.Equal(ref.OperationAfter) {
			return true
		}
	}
	return false
}

// extractedVariableNamed reports whether a variable called name was extracted
// in the new version of the analyzed operation
func (a *Analysis) extractedVariableNamed(name string) bool {
	for _, extract := range refactoring.OfType[*refactoring.ExtractVariable](a.registry) {
		if extract.Declaration.Name == name && extract.Operation.Equal(a.operation2) {
			return true
		}
	}
	return false
}

// conflictsWithInlineVariable reports whether one of the merged variables
// was inlined
func (a *Analysis) conflictsWithInlineVariable(ref *refactoring.MergeVariable) bool {
	for _, inline := range refactoring.OfType[*refactoring.InlineVariable](a.registry) {
		if symbol.ContainsDeclaration(ref.Merged, inline.Declaration) {
			return true
		}
	}
	return false
}

// conflictsWithMerge reports whether the rename is part of an accepted merge
func (a *Analysis) conflictsWithMerge(ref *refactoring.RenameVariable) bool {
	for _, merge := range a.merges.items {
		if merge.OperationBefore.Equal(ref.OperationBefore) &&
			merge.OperationAfter.Equal(ref.OperationAfter) &&
			symbol.ContainsDeclaration(merge.Merged, ref.Original) &&
			merge.New.Equal(ref.Renamed) {
			return true
		}
	}
	return false
}

// conflictsWithSplit reports whether the rename is part of an accepted split
func (a *Analysis) conflictsWithSplit(ref *refactoring.RenameVariable) bool {
	for _, split := range a.splits.items {
		if split.OperationBefore.Equal(ref.OperationBefore) &&
			split.OperationAfter.Equal(ref.OperationAfter) &&
			symbol.ContainsDeclaration(split.Split, ref.Renamed) &&
			split.Old.Equal(ref.Original) {
			return true
		}
	}
	return false
}
