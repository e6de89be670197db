package symbol

import "strings"

// Invocation is a single method call, e.g. `factory.create(a, b)`
type Invocation struct {
	// The called method's name
	Name string
	// The receiver expression, empty when the call has no explicit receiver
	Expression string
	// Source text of every argument, in order
	Arguments []string
	// The source text of the whole call
	Text string
}

// HasExpression reports whether the call has an explicit receiver
func (inv *Invocation) HasExpression() bool {
	return inv.Expression != ""
}

// MatchesOperation reports whether the call could target the given operation,
// going by name and number of arguments
func (inv *Invocation) MatchesOperation(op *Operation) bool {
	if op == nil || inv.Name != op.Name {
		return false
	}
	params := len(op.Parameters)
	if params > 0 && op.Parameters[params-1].Varargs {
		return len(inv.Arguments) >= params-1
	}
	return len(inv.Arguments) == params
}

// DifferentExpressionNameAndArguments reports whether two calls differ in
// receiver, in name, and in arguments all at once
func (inv *Invocation) DifferentExpressionNameAndArguments(other *Invocation) bool {
	differentExpression := false
	switch {
	case !inv.HasExpression() && other.HasExpression(), inv.HasExpression() && !other.HasExpression():
		differentExpression = true
	case inv.HasExpression() && other.HasExpression():
		differentExpression = inv.Expression != other.Expression &&
			!strings.HasPrefix(inv.Expression, other.Expression) &&
			!strings.HasPrefix(other.Expression, inv.Expression)
	}
	differentName := inv.Name != other.Name

	argumentFoundInExpression := false
	if inv.HasExpression() {
		for _, arg := range other.Arguments {
			if strings.Contains(inv.Expression, arg) {
				argumentFoundInExpression = true
			}
		}
	}
	if other.HasExpression() {
		for _, arg := range inv.Arguments {
			if strings.Contains(other.Expression, arg) {
				argumentFoundInExpression = true
			}
		}
	}
	differentArguments := !equalStrings(inv.Arguments, other.Arguments) &&
		!intersects(inv.Arguments, other.Arguments) &&
		!argumentFoundInExpression

	return differentExpression && differentName && differentArguments
}

// ObjectCreation is a class instance creation, e.g. `new Foo(a)`
type ObjectCreation struct {
	Type      Type
	Arguments []string
	Text      string
	// Whether the creation declares an anonymous class body
	Anonymous bool
}

// Expression is a parsed expression, such as a variable initializer
type Expression struct {
	Text        string
	Variables   []string
	Invocations []*Invocation
	Creations   []*ObjectCreation
}

// InvocationCoveringEntireFragment returns the call that makes up the whole
// expression, e.g. the call in `factory.create()` but not in `factory.create() + 1`
func (e *Expression) InvocationCoveringEntireFragment() *Invocation {
	if e == nil {
		return nil
	}
	for _, inv := range e.Invocations {
		if inv.Text == e.Text {
			return inv
		}
	}
	return nil
}

// CreationCoveringEntireFragment returns the object creation that makes up the
// whole expression
func (e *Expression) CreationCoveringEntireFragment() *ObjectCreation {
	if e == nil {
		return nil
	}
	for _, creation := range e.Creations {
		if creation.Text == e.Text {
			return creation
		}
	}
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for ind := range a {
		if a[ind] != b[ind] {
			return false
		}
	}
	return true
}

func intersects(a, b []string) bool {
	for _, s := range a {
		if contains(b, s) {
			return true
		}
	}
	return false
}
