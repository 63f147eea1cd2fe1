package item

import "fmt"

// Point represents a position in a text buffer
type Point struct {
	Line   int `json:"line" yaml:"line"`     // 1-based line number
	Offset int `json:"offset" yaml:"offset"` // 1-based absolute character offset
}

// String returns line:offset
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Offset)
}
