package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// LeadingComment returns cleaned text of comments directly preceding node.
// Comments must be adjacent to each other and to the node, and must start their own line.
func LeadingComment(node *sitter.Node, source []byte) string {
	var comments []string
	current := node
	for {
		prev := current.PrevNamedSibling()
		if prev == nil || !isComment(prev) {
			break
		}
		if prev.EndPoint().Row+1 < current.StartPoint().Row || !startsLine(source, prev.StartByte()) {
			break
		}
		comments = append(comments, CleanComment(prev.Content(source)))
		current = prev
	}
	for i, j := 0, len(comments)-1; i < j; i, j = i+1, j-1 {
		comments[i], comments[j] = comments[j], comments[i]
	}
	return strings.TrimSpace(strings.Join(comments, "\n"))
}

// isComment matches comment, line_comment and block_comment nodes
func isComment(node *sitter.Node) bool {
	return strings.HasSuffix(node.Type(), "comment")
}

// startsLine returns true if only whitespace precedes offset on its line
func startsLine(source []byte, offset uint32) bool {
	for i := int(offset) - 1; i >= 0; i-- {
		switch source[i] {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		default:
			return false
		}
	}
	return true
}

// CleanComment removes comment markers from a comment string
func CleanComment(comment string) string {
	comment = strings.TrimSpace(comment)
	if len(comment) >= 4 && strings.HasPrefix(comment, "/*") && strings.HasSuffix(comment, "*/") {
		comment = strings.TrimPrefix(comment[2:len(comment)-2], "*")
	}
	lines := strings.Split(comment, "\n")
	var ret []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "//"):
			line = strings.TrimLeft(line, "/")
		case strings.HasPrefix(line, "*"):
			line = line[1:]
		}
		ret = append(ret, strings.TrimSpace(line))
	}
	return strings.TrimSpace(strings.Join(ret, "\n"))
}
