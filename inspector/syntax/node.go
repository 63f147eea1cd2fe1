package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Name returns the content of the name field, or of the first identifier child
func Name(node *sitter.Node, source []byte) string {
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return nameNode.Content(source)
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "identifier" {
			return child.Content(source)
		}
	}
	return ""
}

// Descendant returns the first named descendant of one of the types, depth first
func Descendant(node *sitter.Node, types ...string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		for _, candidate := range types {
			if child.Type() == candidate {
				return child
			}
		}
		if ret := Descendant(child, types...); ret != nil {
			return ret
		}
	}
	return nil
}

// Children returns direct children of the given type, including anonymous ones
func Children(node *sitter.Node, nodeType string) []*sitter.Node {
	var ret []*sitter.Node
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child.Type() == nodeType {
			ret = append(ret, child)
		}
	}
	return ret
}

// ParentType returns type of the parent node, or empty string for root
func ParentType(node *sitter.Node) string {
	if parent := node.Parent(); parent != nil {
		return parent.Type()
	}
	return ""
}

// NamedChildren returns direct named children of the given type
func NamedChildren(node *sitter.Node, nodeType string) []*sitter.Node {
	var ret []*sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == nodeType {
			ret = append(ret, child)
		}
	}
	return ret
}
