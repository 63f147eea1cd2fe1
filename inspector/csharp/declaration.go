package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/inspector/syntax"
	"github.com/viant/codeitem/item"
)

var kinds = map[string]item.Kind{
	"namespace_declaration":             item.KindNamespace,
	"file_scoped_namespace_declaration": item.KindNamespace,
	"class_declaration":                 item.KindClass,
	"record_declaration":                item.KindClass,
	"struct_declaration":                item.KindStruct,
	"record_struct_declaration":         item.KindStruct,
	"interface_declaration":             item.KindInterface,
	"enum_declaration":                  item.KindEnum,
	"method_declaration":                item.KindMethod,
	"constructor_declaration":           item.KindMethod,
	"destructor_declaration":            item.KindMethod,
	"operator_declaration":              item.KindMethod,
	"property_declaration":              item.KindProperty,
	"indexer_declaration":               item.KindProperty,
	"field_declaration":                 item.KindField,
	"enum_member_declaration":           item.KindField,
	"event_field_declaration":           item.KindEvent,
	"event_declaration":                 item.KindEvent,
	"delegate_declaration":              item.KindDelegate,
}

// Declarations returns declarations of C# declaration nodes, fields and events yield one declaration per declarator
func (i *Inspector) Declarations(node *sitter.Node, source []byte) []*syntax.Declaration {
	kind, ok := kinds[node.Type()]
	if !ok {
		return nil
	}
	keywords := parseModifiers(node, source)
	metadata := &document.Metadata{
		Access:     access(node, kind, keywords),
		Attributes: parseAttributes(node, source),
		DocComment: syntax.LeadingComment(node, source),
		Static:     keywords["static"] || keywords["const"] || node.Type() == "enum_member_declaration",
	}
	var ret []*syntax.Declaration
	for _, name := range names(node, source) {
		ret = append(ret, &syntax.Declaration{Kind: kind, Name: name, Metadata: metadata})
	}
	return ret
}

// names returns declared names, fields and events are named after each of their declarators
func names(node *sitter.Node, source []byte) []string {
	switch node.Type() {
	case "field_declaration", "event_field_declaration":
		if declaration := syntax.Descendant(node, "variable_declaration"); declaration != nil {
			var ret []string
			for _, declarator := range syntax.NamedChildren(declaration, "variable_declarator") {
				ret = append(ret, syntax.Name(declarator, source))
			}
			if len(ret) > 0 {
				return ret
			}
		}
		if declarator := syntax.Descendant(node, "variable_declarator"); declarator != nil {
			return []string{syntax.Name(declarator, source)}
		}
	case "indexer_declaration":
		return []string{"this"}
	case "destructor_declaration":
		return []string{"~" + syntax.Name(node, source)}
	case "operator_declaration":
		if operator := node.ChildByFieldName("operator"); operator != nil {
			return []string{"operator " + operator.Content(source)}
		}
	}
	return []string{syntax.Name(node, source)}
}

// parseModifiers returns modifier keywords
func parseModifiers(node *sitter.Node, source []byte) map[string]bool {
	keywords := map[string]bool{}
	for _, modifier := range syntax.Children(node, "modifier") {
		keywords[strings.TrimSpace(modifier.Content(source))] = true
	}
	return keywords
}

// parseAttributes returns attributes of all attribute lists
func parseAttributes(node *sitter.Node, source []byte) []string {
	var ret []string
	for _, list := range syntax.Children(node, "attribute_list") {
		for i := 0; i < int(list.NamedChildCount()); i++ {
			if attribute := list.NamedChild(i); attribute.Type() == "attribute" {
				ret = append(ret, attribute.Content(source))
			}
		}
	}
	return ret
}

// access returns declared access or the C# default accessibility
func access(node *sitter.Node, kind item.Kind, keywords map[string]bool) item.Access {
	switch {
	case keywords["protected"] && keywords["internal"]:
		return item.AccessProtectedInternal
	case keywords["private"] && keywords["protected"]:
		return item.AccessPrivateProtected
	case keywords["public"]:
		return item.AccessPublic
	case keywords["internal"]:
		return item.AccessInternal
	case keywords["protected"]:
		return item.AccessProtected
	case keywords["private"]:
		return item.AccessPrivate
	}
	if kind == item.KindNamespace || node.Type() == "enum_member_declaration" {
		return item.AccessPublic
	}
	if parent := node.Parent(); parent != nil {
		switch parent.Type() {
		case "compilation_unit", "file_scoped_namespace_declaration":
			return item.AccessInternal
		case "declaration_list":
			switch syntax.ParentType(parent) {
			case "namespace_declaration":
				return item.AccessInternal
			case "interface_declaration":
				return item.AccessPublic
			}
		}
	}
	return item.AccessPrivate
}
