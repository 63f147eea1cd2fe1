package java

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/inspector/syntax"
	"github.com/viant/codeitem/item"
)

// Inspector discovers Java code items
type Inspector struct{}

// NewInspector creates a new Java inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// IsTest returns true for Java test classes
func (i *Inspector) IsTest(name string) bool {
	return strings.HasSuffix(name, "Test.java") || strings.HasSuffix(name, "Tests.java")
}

// InspectSource parses Java source and returns its items in document order
func (i *Inspector) InspectSource(ctx context.Context, doc *document.Document) ([]item.Item, error) {
	return syntax.Inspect(ctx, i, doc)
}

// Language returns Java grammar
func (i *Inspector) Language() *sitter.Language {
	return java.GetLanguage()
}
