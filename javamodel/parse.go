// Package javamodel builds the statement model of Java methods from source,
// using the tree-sitter Java grammar.
package javamodel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/NickyBoy89/varrefactor/astutil"
	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/symbol"
)

var (
	// ErrNoMethod is returned when the source declares no method or constructor
	ErrNoMethod = errors.New("no method declaration found")
	// ErrSyntax is returned when the source does not parse cleanly
	ErrSyntax = errors.New("syntax error")
)

// SnippetClass is the class a method snippet is wrapped in
const SnippetClass = "Snippet"

// Method is a parsed method or constructor
type Method struct {
	Operation *symbol.Operation
	// The method body, a composite with the top-level statements as children.
	// Nil for methods without a body
	Body *mapping.Fragment
	// Every statement of the body, in source order
	Statements []*mapping.Fragment
}

// Leaves returns the statements without a body
func (m *Method) Leaves() []*mapping.Fragment {
	var leaves []*mapping.Fragment
	for _, f := range m.Statements {
		if f.Kind == mapping.Leaf {
			leaves = append(leaves, f)
		}
	}
	return leaves
}

// InnerNodes returns the statements with a body
func (m *Method) InnerNodes() []*mapping.Fragment {
	var inner []*mapping.Fragment
	for _, f := range m.Statements {
		if f.Kind == mapping.Composite {
			inner = append(inner, f)
		}
	}
	return inner
}

// Find returns the first statement whose text starts with prefix
func (m *Method) Find(prefix string) *mapping.Fragment {
	for _, f := range m.Statements {
		if strings.HasPrefix(f.Text, prefix) {
			return f
		}
	}
	return nil
}

// ParseMethod parses a single method declaration, wrapping it in a class
// named SnippetClass. file names the source in every Location
func ParseMethod(ctx context.Context, file, snippet string) (*Method, error) {
	methods, err := ParseFile(ctx, file, []byte("class "+SnippetClass+" {\n"+snippet+"\n}\n"))
	if err != nil {
		return nil, err
	}
	return methods[0], nil
}

// ParseFile parses every method and constructor of a compilation unit,
// including those of nested classes. Methods of anonymous classes are part of
// the statement declaring the class, and are not returned
func ParseFile(ctx context.Context, file string, source []byte) ([]*Method, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("parsing %s: %w", file, ErrSyntax)
	}

	var methods []*Method
	var visit func(node *sitter.Node, className string)
	visit = func(node *sitter.Node, className string) {
		for _, child := range astutil.NamedChildrenOf(node) {
			switch child.Type() {
			case "class_declaration", "enum_declaration", "record_declaration", "interface_declaration":
				visit(child.ChildByFieldName("body"), child.ChildByFieldName("name").Content(source))
			case "enum_body_declarations":
				visit(child, className)
			case "method_declaration", "constructor_declaration", "compact_constructor_declaration":
				b := &builder{file: file, source: source}
				methods = append(methods, b.method(child, className))
			}
		}
	}
	visit(root, "")

	if len(methods) == 0 {
		return nil, fmt.Errorf("parsing %s: %w", file, ErrNoMethod)
	}
	return methods, nil
}

// builder accumulates the model of a single method
type builder struct {
	file   string
	source []byte

	statements   []*mapping.Fragment
	declarations []*symbol.VariableDeclaration
	variables    []string
	seenVariable map[string]struct{}
	loops        []symbol.Loop
}

func (b *builder) location(node *sitter.Node) symbol.Location {
	return symbol.Location{File: b.file, Start: int(node.StartByte()), End: int(node.EndByte())}
}

// text returns the source between two offsets, one trimmed line per line
func (b *builder) text(start, end uint32) string {
	lines := strings.Split(string(b.source[start:end]), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func (b *builder) content(node *sitter.Node) string {
	return b.text(node.StartByte(), node.EndByte())
}

func (b *builder) method(node *sitter.Node, className string) *Method {
	op := &symbol.Operation{
		ClassName:   className,
		Constructor: node.Type() != "method_declaration",
		Location:    b.location(node),
	}
	if name := node.ChildByFieldName("name"); name != nil {
		op.Name = name.Content(b.source)
	}
	if ret := node.ChildByFieldName("type"); ret != nil {
		op.ReturnType = astutil.ParseType(ret, b.source)
	}
	for _, param := range astutil.NamedChildrenOf(node.ChildByFieldName("parameters")) {
		if p := b.parameter(param, node); p != nil {
			op.Parameters = append(op.Parameters, p)
			b.declarations = append(b.declarations, p.Declaration)
		}
	}

	m := &Method{Operation: op}
	body := node.ChildByFieldName("body")
	if body == nil {
		log.WithFields(log.Fields{"method": op.Name, "file": b.file}).Warn("Method has no body")
	} else {
		m.Body = &mapping.Fragment{Kind: mapping.Composite, Text: "{", Location: b.location(body)}
		b.block(body, m.Body)
	}

	m.Statements = b.statements
	op.AllVariableDeclarations = b.declarations
	op.AllVariables = b.variables
	op.Loops = b.loops
	return m
}

func (b *builder) parameter(node, method *sitter.Node) *symbol.Parameter {
	decl := &symbol.VariableDeclaration{
		Kind:      symbol.SingleDeclaration,
		Parameter: true,
		Location:  b.location(node),
		Scope:     b.location(method),
	}
	switch node.Type() {
	case "formal_parameter":
		decl.Name = node.ChildByFieldName("name").Content(b.source)
		decl.Type = astutil.ParseType(node.ChildByFieldName("type"), b.source)
		return &symbol.Parameter{Declaration: decl}
	case "spread_parameter":
		for _, child := range astutil.NamedChildrenOf(node) {
			switch {
			case astutil.IsTypeNode(child):
				decl.Type = symbol.NewType(astutil.ParseType(child, b.source).Original + "...")
			case child.Type() == "variable_declarator":
				decl.Name = child.ChildByFieldName("name").Content(b.source)
			}
		}
		return &symbol.Parameter{Declaration: decl, Varargs: true}
	}
	// Receiver parameters declare no variable
	return nil
}

// block adds the statements of a block as children of parent
func (b *builder) block(node *sitter.Node, parent *mapping.Fragment) {
	for _, child := range astutil.NamedChildrenOf(node) {
		b.statement(child, parent, node)
	}
}

// body adds the body of a compound statement, which may or may not be a block
func (b *builder) body(node *sitter.Node, parent *mapping.Fragment) {
	if node == nil {
		return
	}
	if node.Type() == "block" {
		b.block(node, parent)
		return
	}
	b.statement(node, parent, node)
}

// statement adds a single statement under parent. enclosing is the
// innermost block around it, which bounds the scope of its declarations
func (b *builder) statement(node *sitter.Node, parent *mapping.Fragment, enclosing *sitter.Node) {
	switch node.Type() {
	case "line_comment", "block_comment", "comment", "switch_label":
		return
	case "block", "switch_block_statement_group":
		b.block(node, parent)
	case "labeled_statement":
		children := astutil.NamedChildrenOf(node)
		b.statement(children[len(children)-1], parent, enclosing)
	case "if_statement":
		f := b.composite(node, node.ChildByFieldName("consequence"), parent)
		b.body(node.ChildByFieldName("consequence"), f)
		if alt := node.ChildByFieldName("alternative"); alt != nil {
			b.body(alt, f)
		}
	case "while_statement":
		f := b.composite(node, node.ChildByFieldName("body"), parent)
		b.loop(symbol.WhileLoop, node, f, nil, node.ChildByFieldName("condition"))
		b.body(node.ChildByFieldName("body"), f)
	case "do_statement":
		f := b.composite(node, node.ChildByFieldName("body"), parent)
		cond := node.ChildByFieldName("condition")
		b.header(f, cond)
		b.loop(symbol.DoLoop, node, f, nil, cond)
		b.body(node.ChildByFieldName("body"), f)
	case "for_statement":
		f := b.composite(node, node.ChildByFieldName("body"), parent)
		var declared []string
		var headers []*sitter.Node
		for ind := 0; ind < int(node.NamedChildCount()); ind++ {
			child := node.NamedChild(ind)
			if astutil.IsField(node, "body", child) {
				continue
			}
			if child.Type() == "local_variable_declaration" {
				for _, decl := range b.localDeclarations(child, node, symbol.LocalDeclaration) {
					f.Declarations = append(f.Declarations, decl)
					declared = append(declared, decl.Name)
				}
			}
			headers = append(headers, child)
		}
		b.loop(symbol.ForLoop, node, f, declared, headers...)
		b.body(node.ChildByFieldName("body"), f)
	case "enhanced_for_statement":
		f := b.composite(node, node.ChildByFieldName("body"), parent)
		decl := &symbol.VariableDeclaration{
			Name:     node.ChildByFieldName("name").Content(b.source),
			Type:     astutil.ParseType(node.ChildByFieldName("type"), b.source),
			Kind:     symbol.SingleDeclaration,
			Location: b.location(node.ChildByFieldName("name")),
			Scope:    b.location(node),
		}
		f.Declarations = append(f.Declarations, decl)
		b.declarations = append(b.declarations, decl)
		b.loop(symbol.EnhancedForLoop, node, f, []string{decl.Name}, node.ChildByFieldName("value"))
		b.body(node.ChildByFieldName("body"), f)
	case "try_statement", "try_with_resources_statement":
		f := b.composite(node, node.ChildByFieldName("body"), parent)
		if resources := node.ChildByFieldName("resources"); resources != nil {
			for _, resource := range astutil.NamedChildrenOf(resources) {
				if resource.Type() != "resource" || resource.ChildByFieldName("name") == nil {
					continue
				}
				decl := &symbol.VariableDeclaration{
					Name:        resource.ChildByFieldName("name").Content(b.source),
					Type:        astutil.ParseType(resource.ChildByFieldName("type"), b.source),
					Kind:        symbol.LocalDeclaration,
					Initializer: b.expression(resource.ChildByFieldName("value")),
					Location:    b.location(resource),
					Scope:       b.location(node),
				}
				f.Declarations = append(f.Declarations, decl)
				b.declarations = append(b.declarations, decl)
			}
		}
		b.body(node.ChildByFieldName("body"), f)
		for _, child := range astutil.NamedChildrenOf(node) {
			switch child.Type() {
			case "catch_clause":
				b.catchClause(child, f)
			case "finally_clause":
				finally := b.composite(child, astutil.FirstChildOfType(child, "block"), f)
				b.body(astutil.FirstChildOfType(child, "block"), finally)
			}
		}
	case "synchronized_statement":
		f := b.composite(node, node.ChildByFieldName("body"), parent)
		b.body(node.ChildByFieldName("body"), f)
	case "switch_expression", "switch_statement":
		body := node.ChildByFieldName("body")
		f := b.composite(node, body, parent)
		for _, child := range astutil.NamedChildrenOf(body) {
			if child.Type() == "switch_rule" {
				for _, rule := range astutil.NamedChildrenOf(child) {
					if rule.Type() != "switch_label" {
						b.body(rule, f)
					}
				}
				continue
			}
			b.statement(child, f, body)
		}
	default:
		b.leaf(node, parent, enclosing)
	}
}

func (b *builder) catchClause(node *sitter.Node, parent *mapping.Fragment) {
	body := node.ChildByFieldName("body")
	f := b.composite(node, body, parent)
	if param := astutil.FirstChildOfType(node, "catch_formal_parameter"); param != nil {
		decl := &symbol.VariableDeclaration{
			Kind:     symbol.SingleDeclaration,
			Location: b.location(param),
			Scope:    b.location(node),
		}
		if name := param.ChildByFieldName("name"); name != nil {
			decl.Name = name.Content(b.source)
		}
		if catchType := astutil.FirstChildOfType(param, "catch_type"); catchType != nil {
			decl.Type = symbol.NewType(catchType.Content(b.source))
		}
		f.Declarations = append(f.Declarations, decl)
		b.declarations = append(b.declarations, decl)
	}
	b.body(body, f)
}

// composite adds a statement with a body. Its text is the header: everything
// from the start of the statement up to the start of body
func (b *builder) composite(node, body *sitter.Node, parent *mapping.Fragment) *mapping.Fragment {
	end := node.EndByte()
	if body != nil {
		end = body.StartByte()
	}
	f := &mapping.Fragment{
		Kind:     mapping.Composite,
		Text:     b.text(node.StartByte(), end),
		Location: b.location(node),
		Parent:   parent,
	}
	parent.Children = append(parent.Children, f)
	b.statements = append(b.statements, f)

	for _, child := range astutil.NamedChildrenOf(node) {
		if child.EndByte() <= end && !astutil.IsComment(child) {
			b.header(f, child)
		}
	}
	return f
}

// header records the variables and calls of a header part of a composite
func (b *builder) header(f *mapping.Fragment, node *sitter.Node) {
	if node == nil {
		return
	}
	u := b.usageOf(node)
	f.Variables = appendMissing(f.Variables, u.variables...)
	f.Invocations = append(f.Invocations, u.invocations...)
	f.Creations = append(f.Creations, u.creations...)
	f.AnonymousClasses = append(f.AnonymousClasses, u.anonymous...)
	if node.Type() != "local_variable_declaration" && node.Type() != "identifier" {
		f.Expressions = append(f.Expressions, b.expression(node))
	}
}

func (b *builder) loop(kind symbol.LoopKind, node *sitter.Node, f *mapping.Fragment, declared []string, headers ...*sitter.Node) {
	var variables []string
	for _, h := range headers {
		if h != nil {
			variables = appendMissing(variables, b.usageOf(h).variables...)
		}
	}
	b.loops = append(b.loops, symbol.Loop{
		Kind:      kind,
		Text:      f.Text,
		Declared:  declared,
		Variables: variables,
		Location:  b.location(node),
	})
}

// leaf adds a statement without a body
func (b *builder) leaf(node *sitter.Node, parent *mapping.Fragment, enclosing *sitter.Node) {
	f := &mapping.Fragment{
		Kind:     mapping.Leaf,
		Text:     b.content(node),
		Location: b.location(node),
		Parent:   parent,
	}
	if node.Type() == "local_variable_declaration" {
		f.Declarations = b.localDeclarations(node, enclosing, symbol.LocalDeclaration)
	}
	u := b.usageOf(node)
	f.Variables = u.variables
	f.Invocations = u.invocations
	f.Creations = u.creations
	f.AnonymousClasses = u.anonymous

	parent.Children = append(parent.Children, f)
	b.statements = append(b.statements, f)
}

// localDeclarations returns a declaration per declarator of a local variable
// declaration, visible from the declaration to the end of scope
func (b *builder) localDeclarations(node, scope *sitter.Node, kind symbol.DeclKind) []*symbol.VariableDeclaration {
	declType := astutil.ParseType(node.ChildByFieldName("type"), b.source)
	var decls []*symbol.VariableDeclaration
	for _, child := range astutil.NamedChildrenOf(node) {
		if child.Type() != "variable_declarator" {
			continue
		}
		decl := &symbol.VariableDeclaration{
			Name:        child.ChildByFieldName("name").Content(b.source),
			Type:        declType,
			Kind:        kind,
			Initializer: b.expression(child.ChildByFieldName("value")),
			Location:    b.location(child),
			Scope:       symbol.Location{File: b.file, Start: int(node.StartByte()), End: int(scope.EndByte())},
		}
		decls = append(decls, decl)
		b.declarations = append(b.declarations, decl)
	}
	return decls
}

// expression returns the model of an expression node, nil for a nil node
func (b *builder) expression(node *sitter.Node) *symbol.Expression {
	if node == nil {
		return nil
	}
	u := b.usageOf(node)
	return &symbol.Expression{
		Text:        b.content(node),
		Variables:   u.variables,
		Invocations: u.invocations,
		Creations:   u.creations,
	}
}

func appendMissing(list []string, names ...string) []string {
	for _, name := range names {
		found := false
		for _, item := range list {
			if item == name {
				found = true
				break
			}
		}
		if !found {
			list = append(list, name)
		}
	}
	return list
}
