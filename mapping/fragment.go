// Package mapping holds the statement-level alignment between two versions
// of a method body, as produced by an external statement mapper.
package mapping

import (
	"strings"

	"github.com/NickyBoy89/varrefactor/symbol"
)

// FragmentKind tells leaf statements apart from statements with a body
type FragmentKind int

const (
	Leaf FragmentKind = iota
	Composite
)

// AnonymousClass is an anonymous class body declared inside a statement
type AnonymousClass struct {
	Text     string
	Location symbol.Location
}

// Fragment is a single statement of a method body. Composite fragments
// (if, for, while, try...) only carry their header; their body statements are
// separate fragments that point back at them through Parent
type Fragment struct {
	Kind FragmentKind
	// The statement's text, one source line per line, each line trimmed
	Text     string
	Location symbol.Location
	// Variables declared by the statement itself
	Declarations []*symbol.VariableDeclaration
	// Names of every variable the statement references
	Variables   []string
	Invocations []*symbol.Invocation
	Creations   []*symbol.ObjectCreation
	// Anonymous class bodies declared inside the statement
	AnonymousClasses []*AnonymousClass
	// Header expressions of a composite statement
	Expressions []*symbol.Expression

	Parent   *Fragment
	Children []*Fragment
}

// Key identifies a fragment by value
type Key = symbol.Location

// Key returns the fragment's identity
func (f *Fragment) Key() Key {
	return f.Location
}

func (f *Fragment) String() string {
	return f.Text
}

// VariableDeclaration returns the declaration of name made by this statement
// itself, or nil
func (f *Fragment) VariableDeclaration(name string) *symbol.VariableDeclaration {
	for _, decl := range f.Declarations {
		if decl.Name == name {
			return decl
		}
	}
	return nil
}

// SearchVariableDeclaration resolves name to the declaration visible at this
// statement: one made by the statement itself, by an enclosing statement, or
// by a statement of an enclosing block
func (f *Fragment) SearchVariableDeclaration(name string) *symbol.VariableDeclaration {
	if decl := f.VariableDeclaration(name); decl != nil {
		return decl
	}
	for parent := f.Parent; parent != nil; parent = parent.Parent {
		if decl := parent.VariableDeclaration(name); decl != nil {
			return decl
		}
		for _, sibling := range parent.Children {
			if sibling.Kind != Leaf {
				continue
			}
			if decl := sibling.VariableDeclaration(name); decl != nil && decl.Scope.Subsumes(f.Location) {
				return decl
			}
		}
	}
	return nil
}

// UsesVariable reports whether the statement references name
func (f *Fragment) UsesVariable(name string) bool {
	for _, v := range f.Variables {
		if v == name {
			return true
		}
	}
	return false
}

// Lines returns the statement's text split into lines
func (f *Fragment) Lines() []string {
	return strings.Split(f.Text, "\n")
}
