package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickyBoy89/varrefactor/replacement"
	"github.com/NickyBoy89/varrefactor/symbol"
)

func loc(file string, start, end int) symbol.Location {
	return symbol.Location{File: file, Start: start, End: end}
}

// body builds `{ int total = 0; for (...) { total += v; } return total; }`
// with the loop body nested under the for statement
func body(file string) (root, decl, loop, update, ret *Fragment) {
	root = &Fragment{Kind: Composite, Text: "{", Location: loc(file, 0, 100)}
	decl = &Fragment{
		Kind:     Leaf,
		Text:     "int total = 0;",
		Location: loc(file, 2, 16),
		Parent:   root,
		Declarations: []*symbol.VariableDeclaration{{
			Name:     "total",
			Type:     symbol.NewType("int"),
			Location: loc(file, 6, 15),
			Scope:    loc(file, 2, 100),
		}},
	}
	loop = &Fragment{
		Kind:     Composite,
		Text:     "for (int v : values)",
		Location: loc(file, 20, 60),
		Parent:   root,
		Declarations: []*symbol.VariableDeclaration{{
			Name:     "v",
			Type:     symbol.NewType("int"),
			Kind:     symbol.SingleDeclaration,
			Location: loc(file, 25, 30),
			Scope:    loc(file, 20, 60),
		}},
		Variables: []string{"values"},
	}
	update = &Fragment{Kind: Leaf, Text: "total += v;", Location: loc(file, 40, 51), Parent: loop, Variables: []string{"total", "v"}}
	ret = &Fragment{Kind: Leaf, Text: "return total;", Location: loc(file, 70, 83), Parent: root, Variables: []string{"total"}}
	root.Children = []*Fragment{decl, loop, ret}
	loop.Children = []*Fragment{update}
	return
}

func TestSearchVariableDeclaration(t *testing.T) {
	_, decl, loop, update, ret := body("A.java")

	assert.Same(t, decl.Declarations[0], decl.SearchVariableDeclaration("total"), "own declaration")
	assert.Same(t, loop.Declarations[0], update.SearchVariableDeclaration("v"), "declared by enclosing statement")
	assert.Same(t, decl.Declarations[0], update.SearchVariableDeclaration("total"), "declared in enclosing block")
	assert.Same(t, decl.Declarations[0], ret.SearchVariableDeclaration("total"))
	assert.Nil(t, ret.SearchVariableDeclaration("v"), "loop variable is out of scope")
	assert.Nil(t, ret.SearchVariableDeclaration("missing"))
}

func TestSet(t *testing.T) {
	_, decl1, _, update1, ret1 := body("old")
	_, decl2, _, update2, ret2 := body("new")

	m1 := &Mapping{Fragment1: decl1, Fragment2: decl2}
	m2 := &Mapping{Fragment1: update1, Fragment2: update2}
	dup := &Mapping{Fragment1: decl1, Fragment2: decl2, Exact: true}

	set := NewSet(m1, m2)
	assert.False(t, set.Add(dup), "mappings are compared by their statements")
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []*Mapping{m1, m2}, set.Items())
	assert.True(t, set.Contains(dup))
	assert.False(t, set.Contains(&Mapping{Fragment1: ret1, Fragment2: ret2}))

	clone := set.Clone()
	clone.Add(&Mapping{Fragment1: ret1, Fragment2: ret2})
	assert.Equal(t, 2, set.Len(), "clone is independent")
	assert.True(t, set.SubsetOf(clone))
	assert.False(t, clone.SubsetOf(set))

	var empty *Set
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Items())
}

func TestMappingReplacements(t *testing.T) {
	_, _, _, update1, _ := body("old")
	_, _, _, update2, _ := body("new")

	read := &symbol.Invocation{Name: "read", Expression: "in", Arguments: []string{"buf"}, Text: "in.read(buf)"}
	closeCall := &symbol.Invocation{Name: "close", Expression: "out", Arguments: []string{"x"}, Text: "out.close(x)"}
	m := &Mapping{
		Fragment1:    update1,
		Fragment2:    update2,
		Replacements: []replacement.Replacement{replacement.Variable("v", "w"), replacement.NewMethodInvocation(read, closeCall)},
	}

	assert.True(t, m.ContainsReplacement(replacement.Variable("v", "w")))
	assert.False(t, m.ContainsReplacement(replacement.Variable("w", "v")))
	require.Len(t, m.MethodInvocationReplacements(), 1)
	assert.True(t, m.MethodInvocationReplacements()[0].DifferentExpressionNameAndArguments())
}

func TestMapperReverse(t *testing.T) {
	_, decl1, _, update1, _ := body("old")
	_, decl2, _, update2, ret2 := body("new")
	op1 := &symbol.Operation{Name: "sum", Location: loc("old", 0, 100)}
	op2 := &symbol.Operation{Name: "sum", Location: loc("new", 0, 100)}

	mapper := &Mapper{
		Operation1: op1,
		Operation2: op2,
		Mappings: NewSet(
			&Mapping{Fragment1: decl1, Fragment2: decl2, Operation1: op1, Operation2: op2, Exact: true},
			&Mapping{
				Fragment1:    update1,
				Fragment2:    update2,
				Operation1:   op1,
				Operation2:   op2,
				Replacements: []replacement.Replacement{replacement.NewSplitVariable("v", []string{"a", "b"})},
			},
		),
		NonMappedLeavesT2: []*Fragment{ret2},
	}

	reversed := mapper.Reverse()
	assert.Same(t, op2, reversed.Operation1)
	assert.Same(t, op1, reversed.Operation2)
	assert.Equal(t, []*Fragment{ret2}, reversed.NonMappedLeavesT1)
	assert.Empty(t, reversed.NonMappedLeavesT2)

	items := reversed.Mappings.Items()
	require.Len(t, items, 2)
	assert.Same(t, decl2, items[0].Fragment1)
	assert.True(t, items[0].Exact)
	assert.Equal(t, replacement.MergeVariable, items[1].Replacements[0].Kind())

	twice := reversed.Reverse()
	assert.Equal(t, mapper.Mappings.Items()[1].Replacements[0].Key(), twice.Mappings.Items()[1].Replacements[0].Key())
}

func TestFindReferences(t *testing.T) {
	_, decl1, _, update1, ret1 := body("old")
	_, decl2, _, update2, ret2 := body("new")
	update2.Variables = []string{"sum", "v"}
	ret2.Variables = []string{"sum"}

	mappings := NewSet(
		&Mapping{Fragment1: decl1, Fragment2: decl2},
		&Mapping{Fragment1: update1, Fragment2: update2},
		&Mapping{Fragment1: ret1, Fragment2: ret2},
	)
	total := decl1.Declarations[0]
	sum := &symbol.VariableDeclaration{Name: "sum", Type: symbol.NewType("int"), Scope: loc("new", 2, 100)}

	references := FindReferences(total, sum, mappings)
	require.Equal(t, 2, references.Len())
	assert.Same(t, update1, references.Items()[0].Fragment1)
	assert.Same(t, ret1, references.Items()[1].Fragment1)
}
