package document

import (
	"errors"

	"github.com/viant/codeitem/item"
)

// ErrUnsupported is returned by node metadata accessors when the front end did not capture metadata
var ErrUnsupported = errors.New("metadata not supported")

// Metadata represents optional node metadata captured by a language front end
type Metadata struct {
	Access     item.Access
	Attributes []string
	DocComment string
	Static     bool
}

// Node represents a code element spanning [start, end) bytes of a document
type Node struct {
	doc      *Document
	name     string
	start    int
	end      int
	Metadata *Metadata
}

// NewNode creates a node
func NewNode(doc *Document, name string, start, end int) *Node {
	return &Node{doc: doc, name: name, start: start, end: end}
}

// Name returns node name
func (n *Node) Name() (string, error) {
	return n.name, nil
}

// StartPoint returns node start position
func (n *Node) StartPoint() (item.Point, error) {
	return n.doc.PointAt(n.start)
}

// EndPoint returns node end position
func (n *Node) EndPoint() (item.Point, error) {
	return n.doc.PointAt(n.end)
}

// Lines returns node document
func (n *Node) Lines() item.LineSource {
	return n.doc
}

// Span returns node byte span
func (n *Node) Span() (int, int) {
	return n.start, n.end
}

// Rename changes node name
func (n *Node) Rename(name string) {
	n.name = name
}

// Move changes node byte span
func (n *Node) Move(start, end int) {
	n.start, n.end = start, end
}

func (n *Node) Access() (item.Access, error) {
	if n.Metadata == nil {
		return item.AccessUnspecified, ErrUnsupported
	}
	return n.Metadata.Access, nil
}

func (n *Node) Attributes() ([]string, error) {
	if n.Metadata == nil {
		return nil, ErrUnsupported
	}
	return n.Metadata.Attributes, nil
}

func (n *Node) DocComment() (string, error) {
	if n.Metadata == nil {
		return "", ErrUnsupported
	}
	return n.Metadata.DocComment, nil
}

func (n *Node) IsStatic() (bool, error) {
	if n.Metadata == nil {
		return false, ErrUnsupported
	}
	return n.Metadata.Static, nil
}
