// Package replacement models the token-level differences between the two
// statements of a statement mapping.
package replacement

import (
	"fmt"
	"strings"
)

// Kind tags the syntactic category of a replacement
type Kind int

const (
	VariableName Kind = iota
	MethodInvocation
	VariableReplacedWithArrayAccess
	SplitVariable
	MergeVariable
	VariableReplacedWithMethodInvocation
	VariableDeclaration
)

var kindNames = map[Kind]string{
	VariableName:                         "VARIABLE_NAME",
	MethodInvocation:                     "METHOD_INVOCATION",
	VariableReplacedWithArrayAccess:      "VARIABLE_REPLACED_WITH_ARRAY_ACCESS",
	SplitVariable:                        "SPLIT_VARIABLE",
	MergeVariable:                        "MERGE_VARIABLE",
	VariableReplacedWithMethodInvocation: "VARIABLE_REPLACED_WITH_METHOD_INVOCATION",
	VariableDeclaration:                  "VARIABLE_DECLARATION",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Key is the structural identity of a replacement, usable as a map key
type Key struct {
	Before string
	After  string
	Kind   Kind
}

// Replacement is a single textual difference between two mapped statements
type Replacement interface {
	Before() string
	After() string
	Kind() Kind
	Key() Key
}

// Basic is a plain replacement of one piece of text with another
type Basic struct {
	before string
	after  string
	kind   Kind
}

// New creates a plain replacement
func New(before, after string, kind Kind) Basic {
	return Basic{before: before, after: after, kind: kind}
}

// Variable creates a plain variable-name replacement
func Variable(before, after string) Basic {
	return New(before, after, VariableName)
}

func (b Basic) Before() string { return b.before }
func (b Basic) After() string  { return b.after }
func (b Basic) Kind() Kind     { return b.kind }

func (b Basic) Key() Key {
	return Key{Before: b.before, After: b.after, Kind: b.kind}
}

func (b Basic) String() string {
	return b.before + " -> " + b.after
}

// Equal reports whether two replacements are structurally the same
func Equal(a, b Replacement) bool {
	return a.Key() == b.Key()
}

// Contains reports whether list holds a replacement equal to r
func Contains(list []Replacement, r Replacement) bool {
	key := r.Key()
	for _, item := range list {
		if item.Key() == key {
			return true
		}
	}
	return false
}

// StripArrayAccess returns the part of s before its first `[`, e.g. `a` for `a[i]`
func StripArrayAccess(s string) string {
	if ind := strings.Index(s, "["); ind >= 0 {
		return s[:ind]
	}
	return s
}
