// Package astutil holds helpers for walking tree-sitter Java syntax trees.
package astutil

import sitter "github.com/smacker/go-tree-sitter"

// NamedChildrenOf returns every named child of node, in order
func NamedChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	children := make([]*sitter.Node, 0, int(node.NamedChildCount()))
	for i := 0; i < int(node.NamedChildCount()); i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}

// FirstChildOfType returns the first named child of node with the given type
func FirstChildOfType(node *sitter.Node, typeName string) *sitter.Node {
	for _, child := range NamedChildrenOf(node) {
		if child.Type() == typeName {
			return child
		}
	}
	return nil
}

// SameNode reports whether a and b span the same range with the same type
func SameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Type() == b.Type() && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

// IsField reports whether node is the child of parent stored under field
func IsField(parent *sitter.Node, field string, node *sitter.Node) bool {
	if parent == nil {
		return false
	}
	return SameNode(parent.ChildByFieldName(field), node)
}

// IsComment reports whether node is a line or block comment
func IsComment(node *sitter.Node) bool {
	switch node.Type() {
	case "line_comment", "block_comment", "comment":
		return true
	}
	return false
}

// FindAll searches node and its descendants for nodes of the given type,
// in source order. Matching nodes are not searched further
func FindAll(node *sitter.Node, typeName string) []*sitter.Node {
	if node == nil {
		return nil
	}
	if node.Type() == typeName {
		return []*sitter.Node{node}
	}
	var found []*sitter.Node
	for _, child := range NamedChildrenOf(node) {
		found = append(found, FindAll(child, typeName)...)
	}
	return found
}
