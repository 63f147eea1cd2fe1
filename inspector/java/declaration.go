package java

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/inspector/syntax"
	"github.com/viant/codeitem/item"
)

var kinds = map[string]item.Kind{
	"class_declaration":           item.KindClass,
	"record_declaration":          item.KindClass,
	"interface_declaration":       item.KindInterface,
	"annotation_type_declaration": item.KindInterface,
	"enum_declaration":            item.KindEnum,
	"method_declaration":          item.KindMethod,
	"constructor_declaration":     item.KindMethod,
	"field_declaration":           item.KindField,
	"constant_declaration":        item.KindField,
	"enum_constant":               item.KindField,
}

// Declarations returns declarations of Java declaration nodes, fields yield one declaration per declarator
func (i *Inspector) Declarations(node *sitter.Node, source []byte) []*syntax.Declaration {
	kind, ok := kinds[node.Type()]
	if !ok {
		return nil
	}
	names := []string{syntax.Name(node, source)}
	if declarators := syntax.NamedChildren(node, "variable_declarator"); len(declarators) > 0 {
		names = names[:0]
		for _, declarator := range declarators {
			names = append(names, syntax.Name(declarator, source))
		}
	}
	keywords, annotations := parseModifiers(node, source)
	metadata := &document.Metadata{
		Access:     access(node, keywords),
		Attributes: annotations,
		DocComment: syntax.LeadingComment(node, source),
		Static:     keywords["static"] || isImplicitlyStatic(node),
	}
	var ret []*syntax.Declaration
	for _, name := range names {
		ret = append(ret, &syntax.Declaration{Kind: kind, Name: name, Metadata: metadata})
	}
	return ret
}

// parseModifiers returns modifier keywords and annotations of a declaration
func parseModifiers(node *sitter.Node, source []byte) (map[string]bool, []string) {
	keywords := map[string]bool{}
	var annotations []string
	for _, modifiers := range syntax.Children(node, "modifiers") {
		for i := 0; i < int(modifiers.ChildCount()); i++ {
			modifier := modifiers.Child(i)
			switch modifier.Type() {
			case "marker_annotation", "annotation":
				annotations = append(annotations, modifier.Content(source))
			default:
				keywords[strings.TrimSpace(modifier.Content(source))] = true
			}
		}
	}
	return keywords, annotations
}

// access returns declared access, interface members and enum constants are public, others are package private
func access(node *sitter.Node, keywords map[string]bool) item.Access {
	switch {
	case keywords["public"]:
		return item.AccessPublic
	case keywords["protected"]:
		return item.AccessProtected
	case keywords["private"]:
		return item.AccessPrivate
	}
	if node.Type() == "enum_constant" {
		return item.AccessPublic
	}
	switch syntax.ParentType(node) {
	case "interface_body", "annotation_type_body":
		return item.AccessPublic
	}
	return item.AccessInternal
}

// isImplicitlyStatic returns true for enum constants and interface constants
func isImplicitlyStatic(node *sitter.Node) bool {
	return node.Type() == "enum_constant" || node.Type() == "constant_declaration"
}
