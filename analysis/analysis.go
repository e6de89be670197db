// Package analysis decides, for a pair of aligned method bodies, which of the
// variable-name differences between them are renames, merges, or splits.
package analysis

import (
	log "github.com/sirupsen/logrus"

	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/refactoring"
	"github.com/NickyBoy89/varrefactor/symbol"
)

// Analysis holds the variable refactorings found between two versions of an
// operation. The passes run once, in New; afterwards an Analysis is read-only
type Analysis struct {
	mappings          *mapping.Set
	nonMappedLeavesT1 []*mapping.Fragment
	nonMappedLeavesT2 []*mapping.Fragment
	operation1        *symbol.Operation
	operation2        *symbol.Operation
	callSiteOperation *symbol.Operation
	children          []*mapping.Mapper
	registry          *refactoring.Registry
	operationDiff     *symbol.OperationDiff

	opts options
	log  log.FieldLogger

	renames                   refactoringSet[*refactoring.RenameVariable]
	merges                    refactoringSet[*refactoring.MergeVariable]
	splits                    refactoringSet[*refactoring.SplitVariable]
	candidateAttributeRenames refactoringSet[*refactoring.CandidateAttribute]
	candidateMerges           refactoringSet[*refactoring.CandidateMergeVariable]
	candidateSplits           refactoringSet[*refactoring.CandidateSplitVariable]
	typeChanges               refactoringSet[*refactoring.ChangeVariableType]
}

// New analyzes the mappings of mapper. registry holds the refactorings found
// so far for the enclosing comparison; extract and inline variable facts are
// read from it, and type changes are added to it. operationDiff may be nil
func New(mapper *mapping.Mapper, registry *refactoring.Registry, operationDiff *symbol.OperationDiff, opts ...Option) *Analysis {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if registry == nil {
		registry = refactoring.NewRegistry()
	}

	a := &Analysis{
		mappings:          mapper.Mappings.Clone(),
		nonMappedLeavesT1: mapper.NonMappedLeavesT1,
		nonMappedLeavesT2: mapper.NonMappedLeavesT2,
		operation1:        mapper.Operation1,
		operation2:        mapper.Operation2,
		callSiteOperation: mapper.CallSiteOperation,
		children:          mapper.Children,
		registry:          registry,
		operationDiff:     operationDiff,
		opts:              o,
	}
	a.log = o.logger.WithFields(log.Fields{
		"operation1": signatureOf(a.operation1),
		"operation2": signatureOf(a.operation2),
	})

	a.findVariableSplits()
	a.findVariableMerges()
	a.findConsistentVariableRenames()
	a.findParametersWrappedInLocalVariables()
	return a
}

// Renames returns the confirmed renames of local variables and parameters
func (a *Analysis) Renames() []*refactoring.RenameVariable {
	return a.renames.list()
}

func (a *Analysis) Merges() []*refactoring.MergeVariable {
	return a.merges.list()
}

func (a *Analysis) Splits() []*refactoring.SplitVariable {
	return a.splits.list()
}

// CandidateAttributeRenames returns the renames that could not be tied to
// local declarations, left for class-level analysis to confirm
func (a *Analysis) CandidateAttributeRenames() []*refactoring.CandidateAttribute {
	return a.candidateAttributeRenames.list()
}

func (a *Analysis) CandidateMerges() []*refactoring.CandidateMergeVariable {
	return a.candidateMerges.list()
}

func (a *Analysis) CandidateSplits() []*refactoring.CandidateSplitVariable {
	return a.candidateSplits.list()
}

// TypeChanges returns the type changes of renamed variables. Each of them has
// also been added to the registry
func (a *Analysis) TypeChanges() []*refactoring.ChangeVariableType {
	return a.typeChanges.list()
}

func signatureOf(op *symbol.Operation) string {
	if op == nil {
		return ""
	}
	return op.ClassName + "." + op.Signature()
}
