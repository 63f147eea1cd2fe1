package syntax_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/stretchr/testify/assert"
	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/inspector/syntax"
	"github.com/viant/codeitem/item"
)

func TestCleanComment(t *testing.T) {
	tests := []struct {
		comment string
		want    string
	}{
		{comment: "// Name of the greeter", want: "Name of the greeter"},
		{comment: "/// <summary>", want: "<summary>"},
		{comment: "/* block */", want: "block"},
		{comment: "/**\n * Greets.\n * Twice.\n */", want: "Greets.\nTwice."},
		{comment: "//", want: ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, syntax.CleanComment(tc.comment), tc.comment)
	}
}

// methods declares every Java method with its leading comment as doc
type methods struct{}

func (m methods) Language() *sitter.Language {
	return java.GetLanguage()
}

func (m methods) Declarations(node *sitter.Node, source []byte) []*syntax.Declaration {
	if node.Type() != "method_declaration" {
		return nil
	}
	return []*syntax.Declaration{{
		Kind:     item.KindMethod,
		Name:     syntax.Name(node, source),
		Metadata: &document.Metadata{DocComment: syntax.LeadingComment(node, source)},
	}}
}

func TestInspect(t *testing.T) {
	src := `class A {
    // first
    // second
    void a() {}
    int x; // trailing
    void b() {}
    // detached

    void c() {}
}
`
	items, err := syntax.Inspect(context.Background(), methods{}, document.New("A.java", []byte(src)))
	if !assert.NoError(t, err) || !assert.Len(t, items, 3) {
		return
	}
	var names, docs []string
	for _, anItem := range items {
		names = append(names, anItem.Base().Name)
		docs = append(docs, anItem.DocComment())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, []string{"first\nsecond", "", ""}, docs)

	start, err := items[0].StartPoint()
	assert.NoError(t, err)
	assert.Equal(t, 2, start.Line)
	assert.Equal(t, 4, items[0].Base().StartLine)
}

func TestInspect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := syntax.Inspect(ctx, methods{}, document.New("A.java", []byte("class A { void a() {} }")))
	assert.Error(t, err)
}
