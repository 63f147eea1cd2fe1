package item

import "regexp"

// whitespace includes unicode separators and NEL
var commentLineExpr = regexp.MustCompile(`^[\s\p{Z}\x{85}]*//`)

// IsCommentLine returns true if text starts with optional whitespace followed by a single line comment opener
func IsCommentLine(text string) bool {
	return commentLineExpr.MatchString(text)
}

// AdjustStartForComments moves original up over contiguous single line comments directly above it.
// It returns the start of the topmost matched line, or original when the line above is not a comment.
// Errors reported by source are returned as is.
func AdjustStartForComments(source LineSource, original Point) (Point, error) {
	point := original
	for point.Line > 1 {
		above := point.Line - 1
		text, err := source.Lines(above, point.Line)
		if err != nil {
			return Point{}, err
		}
		if !IsCommentLine(text) {
			break
		}
		if point, err = source.StartOfLine(above); err != nil {
			return Point{}, err
		}
	}
	return point, nil
}
