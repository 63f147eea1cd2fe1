package item_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/viant/codeitem/item"
)

// lineSource is a slice backed item.LineSource, every line is terminated with \n
type lineSource struct {
	lines []string
	reads []int
	err   error
}

func newLineSource(lines ...string) *lineSource {
	return &lineSource{lines: lines}
}

func (s *lineSource) Lines(start, end int) (string, error) {
	s.reads = append(s.reads, start)
	if s.err != nil {
		return "", s.err
	}
	if start < 1 || end > len(s.lines)+1 || start > end {
		return "", fmt.Errorf("invalid range [%d, %d)", start, end)
	}
	return strings.Join(s.lines[start-1:end-1], "\n") + "\n", nil
}

func (s *lineSource) StartOfLine(line int) (item.Point, error) {
	if line < 1 || line > len(s.lines) {
		return item.Point{}, fmt.Errorf("invalid line %d", line)
	}
	offset := 1
	for _, text := range s.lines[:line-1] {
		offset += len(text) + 1
	}
	return item.Point{Line: line, Offset: offset}, nil
}

// pointAt returns a point at column (1-based) of line
func (s *lineSource) pointAt(line, column int) item.Point {
	start, _ := s.StartOfLine(line)
	start.Offset += column - 1
	return start
}

// sourceElement is a mutable item.SourceElement
type sourceElement struct {
	name       string
	start, end item.Point
	source     *lineSource
	err        error
}

func (e *sourceElement) Name() (string, error) {
	return e.name, e.err
}

func (e *sourceElement) StartPoint() (item.Point, error) {
	return e.start, e.err
}

func (e *sourceElement) EndPoint() (item.Point, error) {
	return e.end, e.err
}

func (e *sourceElement) Lines() item.LineSource {
	return e.source
}

// describedElement provides optional metadata, fail controls which calls return an error
type describedElement struct {
	sourceElement
	access     item.Access
	attributes []string
	doc        string
	static     bool
	fail       bool
	panics     bool
}

var errUnavailable = errors.New("unavailable")

func (e *describedElement) check() error {
	if e.panics {
		panic("host failure")
	}
	if e.fail {
		return errUnavailable
	}
	return nil
}

func (e *describedElement) Access() (item.Access, error) {
	return e.access, e.check()
}

func (e *describedElement) Attributes() ([]string, error) {
	return e.attributes, e.check()
}

func (e *describedElement) DocComment() (string, error) {
	return e.doc, e.check()
}

func (e *describedElement) IsStatic() (bool, error) {
	return e.static, e.check()
}
