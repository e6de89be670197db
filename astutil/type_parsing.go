package astutil

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/NickyBoy89/varrefactor/symbol"
)

// IsTypeNode reports whether node is one of the grammar's type nodes
func IsTypeNode(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Type() {
	case "integral_type", "floating_point_type", "void_type", "boolean_type",
		"generic_type", "array_type", "type_identifier", "scoped_type_identifier",
		"annotated_type":
		return true
	}
	return false
}

// ParseType converts a Java type node into its canonical source form.
// Annotations are dropped, and generic arguments are separated by `, `, so
// that `@NonNull Map<String,Integer>` becomes `Map<String, Integer>`
func ParseType(node *sitter.Node, source []byte) symbol.Type {
	return symbol.NewType(typeText(node, source))
}

func typeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "integral_type", "floating_point_type", "void_type", "boolean_type":
		// A single keyword, e.g. `int` or `double`
		return node.Content(source)
	case "generic_type":
		// Any type of the form GenericType<T>
		base := node.NamedChild(0).Content(source)
		args := ExtractTypeArguments(node, source)
		if len(args) == 0 {
			return base + "<>"
		}
		return base + "<" + strings.Join(args, ", ") + ">"
	case "array_type":
		elem := typeText(node.ChildByFieldName("element"), source)
		dims := node.ChildByFieldName("dimensions")
		if dims == nil {
			return elem + "[]"
		}
		return elem + compact(dims.Content(source))
	case "annotated_type":
		// The annotations come first; the annotated type is the last child
		for _, child := range NamedChildrenOf(node) {
			if IsTypeNode(child) {
				return typeText(child, source)
			}
		}
	case "wildcard":
		bound := ""
		for _, child := range NamedChildrenOf(node) {
			if IsTypeNode(child) {
				bound = typeText(child, source)
			}
		}
		text := compact(node.Content(source))
		switch {
		case bound == "":
			return "?"
		case strings.HasPrefix(text, "?super"):
			return "? super " + bound
		default:
			return "? extends " + bound
		}
	}
	// Reference types, e.g. `String` or `Map.Entry`
	return compact(node.Content(source))
}

// ExtractTypeArguments returns the canonical form of each type argument of a
// generic_type node. It returns nil for any other node
func ExtractTypeArguments(node *sitter.Node, source []byte) []string {
	if node == nil || node.Type() != "generic_type" {
		return nil
	}

	var typeArgs []string
	for _, child := range NamedChildrenOf(node) {
		if child.Type() == "type_arguments" {
			for _, arg := range NamedChildrenOf(child) {
				typeArgs = append(typeArgs, typeText(arg, source))
			}
			break
		}
	}
	return typeArgs
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
