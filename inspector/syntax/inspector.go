package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/item"
)

// Declaration represents a declaration recognized by a grammar
type Declaration struct {
	Kind     item.Kind
	Name     string
	Metadata *document.Metadata
}

// Grammar recognizes declarations of a tree-sitter language
type Grammar interface {
	// Language returns tree-sitter language
	Language() *sitter.Language

	// Declarations returns declarations of the node, none when node is not a declaration.
	// A node declaring several variables returns one declaration per variable, all spanning the node.
	Declarations(node *sitter.Node, source []byte) []*Declaration
}

// Inspect parses the document with the grammar and returns declared items in document order.
// Syntax errors do not fail inspection, recognizable declarations are still returned.
func Inspect(ctx context.Context, grammar Grammar, doc *document.Document) ([]item.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parser := sitter.NewParser()
	parser.SetLanguage(grammar.Language())

	source := doc.Content()
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source %v: %w", doc.URL, err)
	}
	rootNode := tree.RootNode()

	var items []item.Item
	err = walk(rootNode, func(node *sitter.Node) error {
		for _, declaration := range grammar.Declarations(node, source) {
			aNode := document.NewNode(doc, declaration.Name, int(node.StartByte()), int(node.EndByte()))
			aNode.Metadata = declaration.Metadata
			anItem, err := item.New(declaration.Kind, aNode)
			if err != nil {
				return err
			}
			if err = anItem.Refresh(); err != nil {
				return fmt.Errorf("failed to refresh %v %v: %w", declaration.Kind, declaration.Name, err)
			}
			items = append(items, anItem)
		}
		return nil
	})
	return items, err
}

// walk visits node and its named descendants in document order
func walk(node *sitter.Node, visit func(node *sitter.Node) error) error {
	if err := visit(node); err != nil {
		return err
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if err := walk(node.NamedChild(i), visit); err != nil {
			return err
		}
	}
	return nil
}
