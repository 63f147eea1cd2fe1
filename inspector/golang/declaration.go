package golang

import (
	"go/ast"
	"go/token"

	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/item"
)

// function handles function and method declarations, functions without receiver are static
func (b *builder) function(decl *ast.FuncDecl) {
	b.add(item.KindMethod, decl.Name.Name, decl.Pos(), decl.End(), &document.Metadata{
		Access:     access(decl.Name.Name),
		Attributes: directives(decl.Doc),
		DocComment: docText(decl.Doc),
		Static:     decl.Recv == nil,
	})
}

// genDecl handles type, const and var declarations
func (b *builder) genDecl(decl *ast.GenDecl) {
	grouped := decl.Lparen.IsValid()
	for _, spec := range decl.Specs {
		// an ungrouped declaration starts at its keyword
		pos, end, doc := spec.Pos(), spec.End(), decl.Doc
		if !grouped {
			pos, end = decl.Pos(), decl.End()
		}
		switch actual := spec.(type) {
		case *ast.TypeSpec:
			if actual.Doc != nil {
				doc = actual.Doc
			}
			b.typeSpec(actual, pos, end, doc)
		case *ast.ValueSpec:
			if grouped {
				doc = actual.Doc
			}
			for _, name := range actual.Names {
				b.add(item.KindField, name.Name, pos, end, &document.Metadata{
					Access:     access(name.Name),
					DocComment: docText(doc),
					Static:     true,
				})
			}
		}
	}
}

// typeSpec handles a type declaration with its fields or interface methods
func (b *builder) typeSpec(spec *ast.TypeSpec, pos, end token.Pos, doc *ast.CommentGroup) {
	metadata := &document.Metadata{
		Access:     access(spec.Name.Name),
		Attributes: directives(doc),
		DocComment: docText(doc),
	}
	switch actual := spec.Type.(type) {
	case *ast.StructType:
		b.add(item.KindStruct, spec.Name.Name, pos, end, metadata)
		b.fields(actual.Fields)
	case *ast.InterfaceType:
		b.add(item.KindInterface, spec.Name.Name, pos, end, metadata)
		b.interfaceMethods(actual.Methods)
	case *ast.FuncType:
		b.add(item.KindDelegate, spec.Name.Name, pos, end, metadata)
	default:
		b.add(item.KindClass, spec.Name.Name, pos, end, metadata)
	}
}

// interfaceMethods handles interface methods, embedded interfaces are skipped
func (b *builder) interfaceMethods(methods *ast.FieldList) {
	if methods == nil {
		return
	}
	for _, method := range methods.List {
		for _, name := range method.Names {
			b.add(item.KindMethod, name.Name, method.Pos(), method.End(), &document.Metadata{
				Access:     access(name.Name),
				DocComment: fieldDoc(method),
			})
		}
	}
}
