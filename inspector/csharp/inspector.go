package csharp

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/inspector/syntax"
	"github.com/viant/codeitem/item"
)

// Inspector discovers C# code items
type Inspector struct{}

// NewInspector creates a new C# inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// IsTest returns true for C# test classes
func (i *Inspector) IsTest(name string) bool {
	return strings.HasSuffix(name, "Test.cs") || strings.HasSuffix(name, "Tests.cs")
}

// InspectSource parses C# source and returns its items in document order
func (i *Inspector) InspectSource(ctx context.Context, doc *document.Document) ([]item.Item, error) {
	return syntax.Inspect(ctx, i, doc)
}

// Language returns C# grammar
func (i *Inspector) Language() *sitter.Language {
	return csharp.GetLanguage()
}
