package golang

import (
	"go/ast"
	"go/types"
	"strconv"

	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/item"
)

// fields handles struct fields, embedded fields are named after their type
func (b *builder) fields(fields *ast.FieldList) {
	if fields == nil {
		return
	}
	for _, field := range fields.List {
		metadata := &document.Metadata{
			DocComment: fieldDoc(field),
			Attributes: fieldTag(field),
		}
		if len(field.Names) == 0 {
			name := embeddedName(field.Type)
			metadata.Access = access(name)
			b.add(item.KindField, name, field.Pos(), field.End(), metadata)
			continue
		}
		for _, name := range field.Names {
			nameMetadata := *metadata
			nameMetadata.Access = access(name.Name)
			b.add(item.KindField, name.Name, field.Pos(), field.End(), &nameMetadata)
		}
	}
}

// fieldTag returns the unquoted field tag as the only attribute
func fieldTag(field *ast.Field) []string {
	if field.Tag == nil {
		return nil
	}
	tag, err := strconv.Unquote(field.Tag.Value)
	if err != nil || tag == "" {
		return nil
	}
	return []string{tag}
}

// fieldDoc returns the field doc comment, falling back to the trailing line comment
func fieldDoc(field *ast.Field) string {
	if field.Doc != nil {
		return docText(field.Doc)
	}
	return docText(field.Comment)
}

// embeddedName returns the type name of an embedded field without pointer and package qualifiers
func embeddedName(expr ast.Expr) string {
	switch actual := expr.(type) {
	case *ast.StarExpr:
		return embeddedName(actual.X)
	case *ast.SelectorExpr:
		return actual.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(actual.X)
	case *ast.IndexListExpr:
		return embeddedName(actual.X)
	}
	return types.ExprString(expr)
}
