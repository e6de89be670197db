package replacement

import (
	"sort"
	"strings"

	"github.com/NickyBoy89/varrefactor/symbol"
)

// MethodInvocationReplacement is a replacement of one method call with another
type MethodInvocationReplacement struct {
	Basic
	InvokedBefore *symbol.Invocation
	InvokedAfter  *symbol.Invocation
}

// NewMethodInvocation creates a replacement between two calls
func NewMethodInvocation(before, after *symbol.Invocation) *MethodInvocationReplacement {
	return &MethodInvocationReplacement{
		Basic:         New(before.Text, after.Text, MethodInvocation),
		InvokedBefore: before,
		InvokedAfter:  after,
	}
}

// DifferentExpressionNameAndArguments reports whether the two calls share
// neither receiver, name, nor arguments
func (m *MethodInvocationReplacement) DifferentExpressionNameAndArguments() bool {
	return m.InvokedBefore.DifferentExpressionNameAndArguments(m.InvokedAfter)
}

// Direction tells which side of a WithInvocation replacement is the call
type Direction int

const (
	VariableToInvocation Direction = iota
	InvocationToVariable
)

func (d Direction) String() string {
	if d == VariableToInvocation {
		return "VARIABLE_TO_INVOCATION"
	}
	return "INVOCATION_TO_VARIABLE"
}

// WithInvocation is a variable replaced with a method call, or the reverse
type WithInvocation struct {
	Basic
	Invoked   *symbol.Invocation
	Direction Direction
}

// NewWithInvocation creates a variable/call replacement
func NewWithInvocation(before, after string, invoked *symbol.Invocation, direction Direction) *WithInvocation {
	return &WithInvocation{
		Basic:     New(before, after, VariableReplacedWithMethodInvocation),
		Invoked:   invoked,
		Direction: direction,
	}
}

// SplitVariableReplacement is one variable replaced by several
type SplitVariableReplacement struct {
	old    string
	splits []string
}

// NewSplitVariable creates a split of old into the given variables.
// Duplicate names are dropped, first occurrence wins
func NewSplitVariable(old string, splits []string) *SplitVariableReplacement {
	return &SplitVariableReplacement{old: old, splits: dedup(splits)}
}

func (s *SplitVariableReplacement) Before() string { return s.old }
func (s *SplitVariableReplacement) After() string  { return "[" + strings.Join(s.splits, ", ") + "]" }
func (s *SplitVariableReplacement) Kind() Kind     { return SplitVariable }

// Key ignores the order of the split variables
func (s *SplitVariableReplacement) Key() Key {
	return Key{Before: s.old, After: canonical(s.splits), Kind: SplitVariable}
}

// SplitVariables returns the names the variable was split into
func (s *SplitVariableReplacement) SplitVariables() []string {
	return s.splits
}

// MergeVariableReplacement is several variables replaced by one
type MergeVariableReplacement struct {
	merged  []string
	newName string
}

// NewMergeVariable creates a merge of the given variables into newName.
// Duplicate names are dropped, first occurrence wins
func NewMergeVariable(merged []string, newName string) *MergeVariableReplacement {
	return &MergeVariableReplacement{merged: dedup(merged), newName: newName}
}

func (m *MergeVariableReplacement) Before() string { return "[" + strings.Join(m.merged, ", ") + "]" }
func (m *MergeVariableReplacement) After() string  { return m.newName }
func (m *MergeVariableReplacement) Kind() Kind     { return MergeVariable }

// Key ignores the order of the merged variables
func (m *MergeVariableReplacement) Key() Key {
	return Key{Before: canonical(m.merged), After: m.newName, Kind: MergeVariable}
}

// MergedVariables returns the names that were merged
func (m *MergeVariableReplacement) MergedVariables() []string {
	return m.merged
}

// DeclarationReplacement is a variable-name replacement whose names have
// been resolved to concrete declarations on both sides
type DeclarationReplacement struct {
	Declaration1 *symbol.VariableDeclaration
	Declaration2 *symbol.VariableDeclaration
	Operation1   *symbol.Operation
	Operation2   *symbol.Operation
}

func (d *DeclarationReplacement) Before() string { return d.Declaration1.Name }
func (d *DeclarationReplacement) After() string  { return d.Declaration2.Name }
func (d *DeclarationReplacement) Kind() Kind     { return VariableDeclaration }

func (d *DeclarationReplacement) Key() Key {
	return Key{Before: d.Declaration1.Name, After: d.Declaration2.Name, Kind: VariableDeclaration}
}

// DeclarationKey is the structural identity of a resolved declaration pair
type DeclarationKey struct {
	Declaration1 symbol.DeclKey
	Declaration2 symbol.DeclKey
	Operation1   string
	Operation2   string
}

// DeclarationKey returns the identity of the resolved pair, which, unlike
// Key, tells apart two different variables that share a name
func (d *DeclarationReplacement) DeclarationKey() DeclarationKey {
	return DeclarationKey{
		Declaration1: d.Declaration1.Key(),
		Declaration2: d.Declaration2.Key(),
		Operation1:   d.Operation1.Key(),
		Operation2:   d.Operation2.Key(),
	}
}

// VariableNameReplacement returns the name-level replacement the pair was resolved from
func (d *DeclarationReplacement) VariableNameReplacement() Basic {
	return Variable(d.Declaration1.Name, d.Declaration2.Name)
}

// Reverse swaps the two sides of a replacement
func Reverse(r Replacement) Replacement {
	switch r := r.(type) {
	case *SplitVariableReplacement:
		return NewMergeVariable(r.splits, r.old)
	case *MergeVariableReplacement:
		return NewSplitVariable(r.newName, r.merged)
	case *MethodInvocationReplacement:
		return NewMethodInvocation(r.InvokedAfter, r.InvokedBefore)
	case *WithInvocation:
		direction := VariableToInvocation
		if r.Direction == VariableToInvocation {
			direction = InvocationToVariable
		}
		return NewWithInvocation(r.After(), r.Before(), r.Invoked, direction)
	case *DeclarationReplacement:
		return &DeclarationReplacement{
			Declaration1: r.Declaration2,
			Declaration2: r.Declaration1,
			Operation1:   r.Operation2,
			Operation2:   r.Operation1,
		}
	}
	return New(r.After(), r.Before(), r.Kind())
}

func dedup(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func canonical(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
