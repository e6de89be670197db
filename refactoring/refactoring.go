// Package refactoring defines the refactorings reported for a pair of
// operations, and the registry that collects them.
package refactoring

import (
	"fmt"

	"github.com/NickyBoy89/varrefactor/mapping"
)

// Type names a kind of refactoring
type Type int

const (
	RenameVariableType Type = iota
	RenameParameterType
	MergeVariableType
	SplitVariableType
	ChangeVariableTypeType
	ExtractVariableType
	InlineVariableType
	CandidateAttributeType
	CandidateMergeVariableType
	CandidateSplitVariableType
)

var typeNames = map[Type]string{
	RenameVariableType:         "Rename Variable",
	RenameParameterType:        "Rename Parameter",
	MergeVariableType:          "Merge Variable",
	SplitVariableType:          "Split Variable",
	ChangeVariableTypeType:     "Change Variable Type",
	ExtractVariableType:        "Extract Variable",
	InlineVariableType:         "Inline Variable",
	CandidateAttributeType:     "Candidate Attribute",
	CandidateMergeVariableType: "Candidate Merge Variable",
	CandidateSplitVariableType: "Candidate Split Variable",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Refactoring is a single detected change
type Refactoring interface {
	Type() Type
	// String is a stable, human readable description; equal refactorings
	// describe themselves identically
	String() string
}

// Evidenced is a refactoring backed by the statement mappings exhibiting it
type Evidenced interface {
	Refactoring
	References() *mapping.Set
}
