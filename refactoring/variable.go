package refactoring

import (
	"strings"

	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/symbol"
)

func describeIn(op *symbol.Operation) string {
	if op == nil {
		return ""
	}
	return " in method " + op.Signature() + " from class " + op.ClassName
}

func declarationList(decls []*symbol.VariableDeclaration) string {
	parts := make([]string, len(decls))
	for ind, decl := range decls {
		parts[ind] = decl.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// RenameVariable is a local variable or parameter that was renamed
type RenameVariable struct {
	Original        *symbol.VariableDeclaration
	Renamed         *symbol.VariableDeclaration
	OperationBefore *symbol.Operation
	OperationAfter  *symbol.Operation
	Evidence        *mapping.Set
}

// Type reports a parameter rename when both declarations are parameters
func (r *RenameVariable) Type() Type {
	if r.Original.Parameter && r.Renamed.Parameter {
		return RenameParameterType
	}
	return RenameVariableType
}

func (r *RenameVariable) References() *mapping.Set { return r.Evidence }

func (r *RenameVariable) String() string {
	return r.Type().String() + "\t" + r.Original.String() + " to " + r.Renamed.String() + describeIn(r.OperationAfter)
}

// ChangeVariableType is a variable whose declared type changed
type ChangeVariableType struct {
	Original        *symbol.VariableDeclaration
	Changed         *symbol.VariableDeclaration
	OperationBefore *symbol.Operation
	OperationAfter  *symbol.Operation
	Evidence        *mapping.Set
}

func (r *ChangeVariableType) Type() Type                { return ChangeVariableTypeType }
func (r *ChangeVariableType) References() *mapping.Set { return r.Evidence }

func (r *ChangeVariableType) String() string {
	return r.Type().String() + "\t" + r.Original.String() + " to " + r.Changed.String() + describeIn(r.OperationAfter)
}

// MergeVariable is several variables replaced by a single one
type MergeVariable struct {
	Merged          []*symbol.VariableDeclaration
	New             *symbol.VariableDeclaration
	OperationBefore *symbol.Operation
	OperationAfter  *symbol.Operation
	Evidence        *mapping.Set
}

func (r *MergeVariable) Type() Type                { return MergeVariableType }
func (r *MergeVariable) References() *mapping.Set { return r.Evidence }

func (r *MergeVariable) String() string {
	return r.Type().String() + "\t" + declarationList(r.Merged) + " to " + r.New.String() + describeIn(r.OperationAfter)
}

// SplitVariable is a single variable replaced by several
type SplitVariable struct {
	Old             *symbol.VariableDeclaration
	Split           []*symbol.VariableDeclaration
	OperationBefore *symbol.Operation
	OperationAfter  *symbol.Operation
	Evidence        *mapping.Set
}

func (r *SplitVariable) Type() Type                { return SplitVariableType }
func (r *SplitVariable) References() *mapping.Set { return r.Evidence }

func (r *SplitVariable) String() string {
	return r.Type().String() + "\t" + r.Old.String() + " to " + declarationList(r.Split) + describeIn(r.OperationAfter)
}

// CandidateAttribute is a renamed name that could not be tied to a local
// declaration on both sides; it likely names a field and is confirmed, or
// dropped, by class-level analysis
type CandidateAttribute struct {
	OriginalName    string
	RenamedName     string
	OperationBefore *symbol.Operation
	OperationAfter  *symbol.Operation
	Evidence        *mapping.Set
	// Set when the original name did resolve to a declaration
	OriginalDeclaration *symbol.VariableDeclaration
	// Set when the renamed name did resolve to a declaration
	RenamedDeclaration *symbol.VariableDeclaration
}

func (r *CandidateAttribute) Type() Type                { return CandidateAttributeType }
func (r *CandidateAttribute) References() *mapping.Set { return r.Evidence }

func (r *CandidateAttribute) String() string {
	return r.Type().String() + "\t" + r.OriginalName + " to " + r.RenamedName + describeIn(r.OperationAfter)
}

// CandidateMergeVariable is an unconfirmed merge, known by names only
type CandidateMergeVariable struct {
	MergedNames     []string
	NewName         string
	OperationBefore *symbol.Operation
	OperationAfter  *symbol.Operation
	Evidence        *mapping.Set
}

func (r *CandidateMergeVariable) Type() Type                { return CandidateMergeVariableType }
func (r *CandidateMergeVariable) References() *mapping.Set { return r.Evidence }

func (r *CandidateMergeVariable) String() string {
	return r.Type().String() + "\t[" + strings.Join(r.MergedNames, ", ") + "] to " + r.NewName + describeIn(r.OperationAfter)
}

// CandidateSplitVariable is an unconfirmed split, known by names only
type CandidateSplitVariable struct {
	OldName         string
	SplitNames      []string
	OperationBefore *symbol.Operation
	OperationAfter  *symbol.Operation
	Evidence        *mapping.Set
}

func (r *CandidateSplitVariable) Type() Type                { return CandidateSplitVariableType }
func (r *CandidateSplitVariable) References() *mapping.Set { return r.Evidence }

func (r *CandidateSplitVariable) String() string {
	return r.Type().String() + "\t" + r.OldName + " to [" + strings.Join(r.SplitNames, ", ") + "]" + describeIn(r.OperationAfter)
}

// ExtractVariable is an expression extracted into a new variable. It is
// detected elsewhere and only consulted here
type ExtractVariable struct {
	Declaration *symbol.VariableDeclaration
	Operation   *symbol.Operation
}

func (r *ExtractVariable) Type() Type { return ExtractVariableType }

func (r *ExtractVariable) String() string {
	return r.Type().String() + "\t" + r.Declaration.String() + describeIn(r.Operation)
}

// InlineVariable is a variable whose uses were replaced by its initializer.
// It is detected elsewhere and only consulted here
type InlineVariable struct {
	Declaration *symbol.VariableDeclaration
	Operation   *symbol.Operation
}

func (r *InlineVariable) Type() Type { return InlineVariableType }

func (r *InlineVariable) String() string {
	return r.Type().String() + "\t" + r.Declaration.String() + describeIn(r.Operation)
}
