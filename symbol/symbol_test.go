package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func local(name, typ string, start int) *VariableDeclaration {
	return &VariableDeclaration{
		Name:     name,
		Type:     NewType(typ),
		Kind:     LocalDeclaration,
		Location: Location{File: "A.java", Start: start, End: start + 10},
		Scope:    Location{File: "A.java", Start: start, End: 1000},
	}
}

func param(name, typ string, start int) *Parameter {
	decl := local(name, typ, start)
	decl.Kind = SingleDeclaration
	decl.Parameter = true
	return &Parameter{Declaration: decl}
}

func TestVariableDeclarationEquality(t *testing.T) {
	a := local("count", "int", 10)
	same := local("count", "int", 10)
	moved := local("count", "int", 50)

	assert.True(t, a.Equal(same), "declarations are compared by value")
	assert.False(t, a.Equal(moved))
	assert.False(t, a.Equal(nil))

	var missing *VariableDeclaration
	assert.True(t, missing.Equal(nil))

	assert.True(t, ContainsDeclaration([]*VariableDeclaration{moved, same}, a))
	assert.True(t, ContainsDeclarationNamed([]*VariableDeclaration{moved}, "count"))
	assert.False(t, ContainsDeclarationNamed([]*VariableDeclaration{moved}, "total"))
	assert.Equal(t, "count : int", a.String())
}

func TestLocationSubsumes(t *testing.T) {
	outer := Location{File: "A.java", Start: 0, End: 100}

	assert.True(t, outer.Subsumes(Location{File: "A.java", Start: 10, End: 20}))
	assert.True(t, outer.Subsumes(outer))
	assert.False(t, outer.Subsumes(Location{File: "A.java", Start: 90, End: 110}))
	assert.False(t, outer.Subsumes(Location{File: "B.java", Start: 10, End: 20}))
}

func TestTypeEqual(t *testing.T) {
	assert.True(t, NewType("Map<String,Integer>").Equal(NewType("Map<String, Integer>")))
	assert.False(t, NewType("List<String>").Equal(NewType("List<Integer>")))
	assert.True(t, Type{}.IsZero())
}

func TestOperationParameters(t *testing.T) {
	op := &Operation{
		ClassName:  "Parser",
		Name:       "parse",
		Parameters: []*Parameter{param("input", "String", 1), param("strict", "boolean", 2)},
	}

	assert.Equal(t, "parse(String, boolean)", op.Signature())
	assert.Equal(t, []string{"input", "strict"}, op.ParameterNames())
	assert.Equal(t, 1, op.ParameterIndex("strict"))
	assert.Equal(t, -1, op.ParameterIndex("missing"))
	require.NotNil(t, op.ParameterByName("input"))
	assert.Nil(t, op.ParameterByName("missing"))
}

func TestOperationFindDeclaration(t *testing.T) {
	op := &Operation{
		AllVariableDeclarations: []*VariableDeclaration{
			local("first", "int", 10),
			local("second", "String", 20),
			local("first", "long", 30),
		},
	}

	assert.Len(t, op.FindDeclaration().ByName("first"), 2)
	assert.Empty(t, op.FindDeclaration().ByName("third"))

	strings := op.FindDeclaration().By(func(d *VariableDeclaration) bool {
		return d.Type.Equal(NewType("String"))
	})
	require.Len(t, strings, 1)
	assert.Equal(t, "second", strings[0].Name)
}

func TestLoopWithVariables(t *testing.T) {
	op := &Operation{
		Loops: []Loop{
			{Kind: EnhancedForLoop, Declared: []string{"item"}, Variables: []string{"items"}},
			{Kind: ForLoop, Declared: []string{"i"}, Variables: []string{"i", "values"}},
		},
	}

	tests := []struct {
		name       string
		element    string
		collection string
		found      bool
	}{
		{name: "enhanced for", element: "item", collection: "items", found: true},
		{name: "indexed for", element: "i", collection: "values", found: true},
		{name: "wrong collection", element: "item", collection: "values", found: false},
		{name: "unknown element", element: "other", collection: "items", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, found := op.LoopWithVariables(tt.element, tt.collection)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestInvocationMatchesOperation(t *testing.T) {
	op := &Operation{Name: "sum", Parameters: []*Parameter{param("a", "int", 1), param("b", "int", 2)}}
	varargs := &Operation{Name: "sum", Parameters: []*Parameter{param("values", "int...", 1)}}
	varargs.Parameters[0].Varargs = true

	assert.True(t, (&Invocation{Name: "sum", Arguments: []string{"x", "y"}}).MatchesOperation(op))
	assert.False(t, (&Invocation{Name: "sum", Arguments: []string{"x"}}).MatchesOperation(op))
	assert.False(t, (&Invocation{Name: "add", Arguments: []string{"x", "y"}}).MatchesOperation(op))
	assert.True(t, (&Invocation{Name: "sum"}).MatchesOperation(varargs))
	assert.True(t, (&Invocation{Name: "sum", Arguments: []string{"x", "y", "z"}}).MatchesOperation(varargs))
	assert.False(t, (&Invocation{Name: "sum"}).MatchesOperation(nil))
}

func TestDifferentExpressionNameAndArguments(t *testing.T) {
	tests := []struct {
		name string
		inv1 *Invocation
		inv2 *Invocation
		want bool
	}{
		{
			name: "unrelated calls",
			inv1: &Invocation{Name: "read", Expression: "reader", Arguments: []string{"buf"}},
			inv2: &Invocation{Name: "close", Expression: "socket", Arguments: []string{"timeout"}},
			want: true,
		},
		{
			name: "same receiver",
			inv1: &Invocation{Name: "read", Expression: "reader", Arguments: []string{"buf"}},
			inv2: &Invocation{Name: "close", Expression: "reader", Arguments: []string{"timeout"}},
			want: false,
		},
		{
			name: "same name",
			inv1: &Invocation{Name: "read", Expression: "reader", Arguments: []string{"buf"}},
			inv2: &Invocation{Name: "read", Expression: "socket", Arguments: []string{"timeout"}},
			want: false,
		},
		{
			name: "shared argument",
			inv1: &Invocation{Name: "read", Expression: "reader", Arguments: []string{"buf", "len"}},
			inv2: &Invocation{Name: "close", Expression: "socket", Arguments: []string{"len"}},
			want: false,
		},
		{
			name: "receiver prefix",
			inv1: &Invocation{Name: "read", Expression: "this.reader", Arguments: []string{"buf"}},
			inv2: &Invocation{Name: "close", Expression: "this.reader.inner", Arguments: []string{"timeout"}},
			want: false,
		},
		{
			name: "argument moved into receiver",
			inv1: &Invocation{Name: "read", Expression: "stream", Arguments: []string{"buf"}},
			inv2: &Invocation{Name: "close", Expression: "buf.channel"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.inv1.DifferentExpressionNameAndArguments(tt.inv2))
		})
	}
}

func TestCoveringEntireFragment(t *testing.T) {
	inv := &Invocation{Name: "first", Expression: "parts", Text: "parts.first()"}
	creation := &ObjectCreation{Type: NewType("Path"), Arguments: []string{"file"}, Text: "new Path(file)"}

	whole := &Expression{Text: "parts.first()", Invocations: []*Invocation{inv}}
	partial := &Expression{Text: "parts.first() + 1", Invocations: []*Invocation{inv}}
	created := &Expression{Text: "new Path(file)", Creations: []*ObjectCreation{creation}}

	assert.Same(t, inv, whole.InvocationCoveringEntireFragment())
	assert.Nil(t, partial.InvocationCoveringEntireFragment())
	assert.Same(t, creation, created.CreationCoveringEntireFragment())

	var missing *Expression
	assert.Nil(t, missing.InvocationCoveringEntireFragment())
	assert.Nil(t, missing.CreationCoveringEntireFragment())
}

func TestRenamedParameters(t *testing.T) {
	diff := &OperationDiff{
		ParameterDiffs: []ParameterDiff{
			{Removed: param("a", "int", 1), Added: param("b", "int", 1)},
			{Removed: param("c", "int", 2), Added: param("c", "long", 2)},
		},
	}

	renamed := diff.RenamedParameters()
	require.Len(t, renamed, 1)
	assert.Equal(t, "a", renamed[0].Removed.Name())

	var none *OperationDiff
	assert.Empty(t, none.RenamedParameters())
}
