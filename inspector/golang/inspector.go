package golang

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/item"
)

// Inspector discovers Go code items
type Inspector struct {
	fset *token.FileSet
}

// NewInspector creates a new Go inspector
func NewInspector() *Inspector {
	return &Inspector{fset: token.NewFileSet()}
}

// IsTest returns true for Go test files
func (i *Inspector) IsTest(name string) bool {
	return strings.HasSuffix(name, "_test.go")
}

// InspectSource parses Go source and returns its items in declaration order
func (i *Inspector) InspectSource(ctx context.Context, doc *document.Document) ([]item.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := parser.ParseFile(i.fset, doc.URL, doc.Content(), parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source %v: %w", doc.URL, err)
	}
	b := &builder{fset: i.fset, doc: doc}
	b.add(item.KindNamespace, file.Name.Name, file.Package, file.Name.End(), &document.Metadata{
		Access:     item.AccessPublic,
		DocComment: docText(file.Doc),
	})
	for _, decl := range file.Decls {
		switch actual := decl.(type) {
		case *ast.FuncDecl:
			b.function(actual)
		case *ast.GenDecl:
			b.genDecl(actual)
		}
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.items, nil
}

// builder binds AST nodes to document nodes and collects items
type builder struct {
	fset  *token.FileSet
	doc   *document.Document
	items []item.Item
	err   error
}

// add registers a node spanning [pos, end) as an item of the given kind
func (b *builder) add(kind item.Kind, name string, pos, end token.Pos, metadata *document.Metadata) {
	if b.err != nil {
		return
	}
	node := document.NewNode(b.doc, name, b.fset.Position(pos).Offset, b.fset.Position(end).Offset)
	node.Metadata = metadata
	anItem, err := item.New(kind, node)
	if err == nil {
		err = anItem.Refresh()
	}
	if err != nil {
		b.err = fmt.Errorf("failed to add %v %v: %w", kind, name, err)
		return
	}
	b.items = append(b.items, anItem)
}
