package golang

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/viant/codeitem/item"
)

// access maps Go export rules to access levels
func access(name string) item.Access {
	if token.IsExported(name) {
		return item.AccessPublic
	}
	return item.AccessPrivate
}

// docText returns comment text without markers and directives
func docText(group *ast.CommentGroup) string {
	if group == nil {
		return ""
	}
	return strings.TrimSpace(group.Text())
}

// directives returns //go: style directives of a comment group
func directives(group *ast.CommentGroup) []string {
	if group == nil {
		return nil
	}
	var ret []string
	for _, comment := range group.List {
		text := strings.TrimPrefix(comment.Text, "//")
		if strings.HasPrefix(text, "go:") || strings.HasPrefix(text, "lint:") {
			ret = append(ret, text)
		}
	}
	return ret
}
