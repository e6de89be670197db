package symbol

import "fmt"

// DeclKind distinguishes the syntactic form a variable was declared with
type DeclKind int

const (
	// LocalDeclaration is a declarator inside a local variable declaration
	// statement, e.g. `int a = 1, b;`
	LocalDeclaration DeclKind = iota
	// SingleDeclaration is a stand-alone declaration: a method parameter, the
	// variable of an enhanced for loop, or a catch parameter
	SingleDeclaration
	// FieldDeclaration is a declarator of a class field
	FieldDeclaration
)

func (k DeclKind) String() string {
	switch k {
	case LocalDeclaration:
		return "local"
	case SingleDeclaration:
		return "single"
	case FieldDeclaration:
		return "field"
	}
	return fmt.Sprintf("DeclKind(%d)", int(k))
}

// Location is a source range inside a named source unit
type Location struct {
	File  string
	Start int
	End   int
}

// Subsumes reports whether other lies completely inside l
func (l Location) Subsumes(other Location) bool {
	return l.File == other.File && l.Start <= other.Start && other.End <= l.End
}

func (l Location) String() string {
	return fmt.Sprintf("%s[%d:%d]", l.File, l.Start, l.End)
}

// DeclKey is the structural identity of a variable declaration. Two
// declarations are the same variable exactly when their keys are equal
type DeclKey struct {
	Name     string
	Type     string
	Kind     DeclKind
	Location Location
}

// VariableDeclaration represents a single declared variable in a method body
type VariableDeclaration struct {
	// The declared name
	Name string
	// The declared type, as written in source
	Type Type
	// Which syntactic form declared the variable
	Kind DeclKind
	// Whether the variable is a parameter of the enclosing operation
	Parameter bool
	// The value the variable is initialized with, nil if there is none
	Initializer *Expression
	// Where the declaration itself is located
	Location Location
	// The region of source in which the variable is visible
	Scope Location
}

// Key returns the structural identity of the declaration
func (v *VariableDeclaration) Key() DeclKey {
	return DeclKey{
		Name:     v.Name,
		Type:     v.Type.Original,
		Kind:     v.Kind,
		Location: v.Location,
	}
}

// Equal compares two declarations by value. Two nil declarations are equal
func (v *VariableDeclaration) Equal(other *VariableDeclaration) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.Key() == other.Key()
}

// EqualKind reports whether both declarations have the same syntactic form
func (v *VariableDeclaration) EqualKind(other *VariableDeclaration) bool {
	return v.Kind == other.Kind
}

func (v *VariableDeclaration) String() string {
	return v.Name + " : " + v.Type.String()
}

// ContainsDeclaration reports whether decls holds a declaration equal to v
func ContainsDeclaration(decls []*VariableDeclaration, v *VariableDeclaration) bool {
	for _, decl := range decls {
		if decl.Equal(v) {
			return true
		}
	}
	return false
}

// ContainsDeclarationNamed reports whether any declaration in decls has the given name
func ContainsDeclarationNamed(decls []*VariableDeclaration, name string) bool {
	for _, decl := range decls {
		if decl.Name == name {
			return true
		}
	}
	return false
}
