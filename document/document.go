package document

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/viant/codeitem/item"
)

var (
	// ErrLineOutOfRange reports a line outside of the document
	ErrLineOutOfRange = errors.New("line out of range")
	// ErrOffsetOutOfRange reports a byte offset outside of the document
	ErrOffsetOutOfRange = errors.New("offset out of range")
)

// line represents an indexed line, end includes the line terminator
type line struct {
	start int // byte offset of the first character
	end   int // byte offset past the terminator
	chars int // characters before the line
}

// Document represents a line addressable text buffer
type Document struct {
	URL     string
	content []byte
	lines   []line
}

// New creates a document
func New(URL string, content []byte) *Document {
	ret := &Document{URL: URL}
	ret.Update(content)
	return ret
}

// Update replaces document content
func (d *Document) Update(content []byte) {
	d.content = content
	d.lines = d.lines[:0]
	start, chars := 0, 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		d.lines = append(d.lines, line{start: start, end: i + 1, chars: chars})
		chars += utf8.RuneCount(content[start : i+1])
		start = i + 1
	}
	// the last line is always present, possibly empty
	d.lines = append(d.lines, line{start: start, end: len(content), chars: chars})
}

// Content returns document content
func (d *Document) Content() []byte {
	return d.content
}

// LineCount returns number of lines
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Lines returns text of lines [start, end)
func (d *Document) Lines(start, end int) (string, error) {
	if start < 1 || start > end || end > len(d.lines)+1 {
		return "", fmt.Errorf("%w: [%d, %d) in %v", ErrLineOutOfRange, start, end, d.URL)
	}
	if start == end {
		return "", nil
	}
	return string(d.content[d.lines[start-1].start:d.lines[end-2].end]), nil
}

// StartOfLine returns the position of the first character of the line
func (d *Document) StartOfLine(lineNumber int) (item.Point, error) {
	if lineNumber < 1 || lineNumber > len(d.lines) {
		return item.Point{}, fmt.Errorf("%w: %d in %v", ErrLineOutOfRange, lineNumber, d.URL)
	}
	return item.Point{Line: lineNumber, Offset: d.lines[lineNumber-1].chars + 1}, nil
}

// PointAt returns the position of the byte offset, the offset past the last byte is valid
func (d *Document) PointAt(offset int) (item.Point, error) {
	if offset < 0 || offset > len(d.content) {
		return item.Point{}, fmt.Errorf("%w: %d in %v", ErrOffsetOutOfRange, offset, d.URL)
	}
	index := d.lineIndex(offset)
	aLine := d.lines[index]
	chars := aLine.chars + utf8.RuneCount(d.content[aLine.start:offset])
	return item.Point{Line: index + 1, Offset: chars + 1}, nil
}

// lineIndex returns index of the line holding offset
func (d *Document) lineIndex(offset int) int {
	return sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i].start > offset
	}) - 1
}
