package symbol

import "strings"

// Parameter is a single formal parameter of an operation
type Parameter struct {
	// The declaration introduced by the parameter
	Declaration *VariableDeclaration
	// Whether this is a variadic (`T... name`) parameter
	Varargs bool
}

// Name returns the parameter's declared name
func (p *Parameter) Name() string {
	if p.Declaration == nil {
		return ""
	}
	return p.Declaration.Name
}

// LoopKind is the statement kind of a loop
type LoopKind int

const (
	ForLoop LoopKind = iota
	EnhancedForLoop
	WhileLoop
	DoLoop
)

// Loop summarizes a loop statement of an operation body: the variables its
// header declares, and every variable its header expressions reference
type Loop struct {
	Kind      LoopKind
	Text      string
	Declared  []string
	Variables []string
	Location  Location
}

// Operation represents a single method or constructor, and the declarations in it
type Operation struct {
	// The name of the class declaring the operation
	ClassName string
	// The name of the operation
	Name string
	// Whether the operation is a constructor
	Constructor bool
	// The declared return type, zero for constructors
	ReturnType Type
	// Parameters in declaration order
	Parameters []*Parameter
	// Every variable declared in the operation, parameters included
	AllVariableDeclarations []*VariableDeclaration
	// The name of every variable referenced anywhere in the body
	AllVariables []string
	// Loops of the body in source order
	Loops []Loop
	// Where the operation is declared
	Location Location
}

// Signature returns the operation's name followed by its parameter types
func (o *Operation) Signature() string {
	types := make([]string, len(o.Parameters))
	for ind, param := range o.Parameters {
		types[ind] = param.Declaration.Type.Original
	}
	return o.Name + "(" + strings.Join(types, ", ") + ")"
}

// Key identifies an operation by value
func (o *Operation) Key() string {
	return o.ClassName + "." + o.Signature() + "@" + o.Location.String()
}

// Equal compares two operations by value. Two nil operations are equal
func (o *Operation) Equal(other *Operation) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o == other || o.Key() == other.Key()
}

// ParameterNames returns the names of the parameters, in order
func (o *Operation) ParameterNames() []string {
	names := make([]string, len(o.Parameters))
	for ind, param := range o.Parameters {
		names[ind] = param.Name()
	}
	return names
}

// ParameterIndex returns the position of the named parameter, or -1
func (o *Operation) ParameterIndex(name string) int {
	for ind, param := range o.Parameters {
		if param.Name() == name {
			return ind
		}
	}
	return -1
}

// ParameterByName returns a parameter's declaration, given its name
func (o *Operation) ParameterByName(name string) *VariableDeclaration {
	for _, param := range o.Parameters {
		if param.Declaration != nil && param.Declaration.Name == name {
			return param.Declaration
		}
	}
	return nil
}

// UsesVariable reports whether the body references a variable with the given name
func (o *Operation) UsesVariable(name string) bool {
	for _, v := range o.AllVariables {
		if v == name {
			return true
		}
	}
	return false
}

// LoopWithVariables searches for a loop whose header declares currentElement
// and iterates over collection. Returns false if there is no such loop
func (o *Operation) LoopWithVariables(currentElement, collection string) (Loop, bool) {
	for _, loop := range o.Loops {
		declared := contains(loop.Declared, currentElement)
		switch loop.Kind {
		case EnhancedForLoop:
			if declared && contains(loop.Variables, collection) {
				return loop, true
			}
		default:
			used := declared || contains(loop.Variables, currentElement)
			if used && contains(loop.Variables, collection) {
				return loop, true
			}
		}
	}
	return Loop{}, false
}

// FindDeclaration searches through every declaration of the operation
func (o *Operation) FindDeclaration() Finder {
	df := declarationFinder(*o)
	return &df
}

type declarationFinder Operation

func (df *declarationFinder) By(criteria func(d *VariableDeclaration) bool) []*VariableDeclaration {
	results := []*VariableDeclaration{}
	for _, decl := range df.AllVariableDeclarations {
		if criteria(decl) {
			results = append(results, decl)
		}
	}
	return results
}

func (df *declarationFinder) ByName(name string) []*VariableDeclaration {
	return df.By(func(d *VariableDeclaration) bool {
		return d.Name == name
	})
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
