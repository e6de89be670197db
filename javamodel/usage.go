package javamodel

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/NickyBoy89/varrefactor/astutil"
	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/symbol"
)

// usage is what a piece of code refers to
type usage struct {
	variables   []string
	invocations []*symbol.Invocation
	creations   []*symbol.ObjectCreation
	anonymous   []*mapping.AnonymousClass
}

// usageOf collects the variables, calls, and object creations in node. Every
// variable found is also recorded as used by the method
func (b *builder) usageOf(node *sitter.Node) *usage {
	u := &usage{}
	b.collect(node, u)
	for _, name := range u.variables {
		if b.seenVariable == nil {
			b.seenVariable = make(map[string]struct{})
		}
		if _, ok := b.seenVariable[name]; !ok {
			b.seenVariable[name] = struct{}{}
			b.variables = append(b.variables, name)
		}
	}
	return u
}

func (b *builder) collect(node *sitter.Node, u *usage) {
	if node == nil {
		return
	}
	switch node.Type() {
	case "identifier":
		if !declaredName(node) {
			u.variables = appendMissing(u.variables, node.Content(b.source))
		}
		return
	case "marker_annotation", "annotation", "line_comment", "block_comment", "comment":
		return
	case "field_access":
		object := node.ChildByFieldName("object")
		if object != nil && object.Type() == "this" {
			u.variables = appendMissing(u.variables, "this."+node.ChildByFieldName("field").Content(b.source))
			return
		}
		b.collect(object, u)
		return
	case "method_invocation":
		inv := &symbol.Invocation{
			Name: node.ChildByFieldName("name").Content(b.source),
			Text: b.content(node),
		}
		if object := node.ChildByFieldName("object"); object != nil {
			inv.Expression = b.content(object)
			b.collect(object, u)
		}
		args := node.ChildByFieldName("arguments")
		inv.Arguments = b.arguments(args)
		u.invocations = append(u.invocations, inv)
		b.collect(args, u)
		return
	case "object_creation_expression":
		args := node.ChildByFieldName("arguments")
		creation := &symbol.ObjectCreation{
			Type:      astutil.ParseType(node.ChildByFieldName("type"), b.source),
			Arguments: b.arguments(args),
			Text:      b.content(node),
		}
		if body := astutil.FirstChildOfType(node, "class_body"); body != nil {
			creation.Anonymous = true
			u.anonymous = append(u.anonymous, &mapping.AnonymousClass{
				Text:     b.content(body),
				Location: b.location(body),
			})
			b.collect(body, u)
		}
		if object := node.ChildByFieldName("object"); object != nil {
			b.collect(object, u)
		}
		u.creations = append(u.creations, creation)
		b.collect(args, u)
		return
	}
	for _, child := range astutil.NamedChildrenOf(node) {
		b.collect(child, u)
	}
}

func (b *builder) arguments(args *sitter.Node) []string {
	var texts []string
	for _, arg := range astutil.NamedChildrenOf(args) {
		if !astutil.IsComment(arg) {
			texts = append(texts, b.content(arg))
		}
	}
	return texts
}

// declaredName reports whether an identifier names something being
// declared, or a label, rather than referring to a variable
func declaredName(node *sitter.Node) bool {
	parent := node.Parent()
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case "variable_declarator", "formal_parameter", "catch_formal_parameter", "enhanced_for_statement",
		"resource", "method_declaration", "constructor_declaration", "class_declaration",
		"interface_declaration", "enum_declaration", "record_declaration", "enum_constant":
		return astutil.IsField(parent, "name", node)
	case "labeled_statement", "break_statement", "continue_statement":
		return true
	case "method_reference":
		// `Type::method`, the method name is not a variable
		return !astutil.SameNode(parent.NamedChild(0), node)
	}
	return false
}
