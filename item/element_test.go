package item_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/codeitem/item"
)

func newMethodSource() *sourceElement {
	source := newLineSource("// leading A", "// leading B", "public void Foo() {}")
	return &sourceElement{
		name:   "Foo",
		start:  source.pointAt(3, 1),
		end:    source.pointAt(3, 21),
		source: source,
	}
}

func TestElement_Refresh(t *testing.T) {
	source := newMethodSource()
	element := item.NewElement(source)
	assert.Equal(t, item.Element{Source: source}, *element)

	assert.NoError(t, element.Refresh())
	assert.Equal(t, "Foo", element.Name)
	assert.Equal(t, 3, element.StartLine)
	assert.Equal(t, 27, element.StartOffset)
	assert.Equal(t, 3, element.EndLine)
	assert.Equal(t, 47, element.EndOffset)

	// cache is not synced until the next refresh
	source.name = "Bar"
	source.start = source.source.pointAt(2, 1)
	source.end = source.source.pointAt(2, 5)
	assert.Equal(t, "Foo", element.Name)
	assert.Equal(t, 3, element.StartLine)

	assert.NoError(t, element.Refresh())
	assert.Equal(t, "Bar", element.Name)
	assert.Equal(t, 2, element.StartLine)
	assert.Equal(t, 14, element.StartOffset)
	assert.Equal(t, 2, element.EndLine)
	assert.Equal(t, 18, element.EndOffset)
}

func TestElement_RefreshError(t *testing.T) {
	source := newMethodSource()
	element := item.NewElement(source)
	assert.NoError(t, element.Refresh())

	source.err = errors.New("element removed")
	source.name = "Bar"
	err := element.Refresh()
	assert.ErrorIs(t, err, source.err)
	assert.Equal(t, "Foo", element.Name)
}

func TestElement_RefreshWithoutSource(t *testing.T) {
	element := item.NewElement(nil)
	assert.Panics(t, func() {
		_ = element.Refresh()
	})
}

func TestElement_Points(t *testing.T) {
	source := newMethodSource()
	element := item.NewElement(source)

	start, err := element.StartPoint()
	assert.NoError(t, err)
	assert.Equal(t, &item.Point{Line: 1, Offset: 1}, start)

	end, err := element.EndPoint()
	assert.NoError(t, err)
	assert.Equal(t, &item.Point{Line: 3, Offset: 47}, end)

	source.err = errors.New("stale")
	_, err = element.StartPoint()
	assert.ErrorIs(t, err, source.err)
	_, err = element.EndPoint()
	assert.ErrorIs(t, err, source.err)
}

func TestElement_PointsWithoutSource(t *testing.T) {
	element := item.NewElement(nil)

	start, err := element.StartPoint()
	assert.NoError(t, err)
	assert.Nil(t, start)

	end, err := element.EndPoint()
	assert.NoError(t, err)
	assert.Nil(t, end)

	hash, err := element.Hash()
	assert.NoError(t, err)
	assert.Zero(t, hash)
}

func TestElement_Defaults(t *testing.T) {
	element := item.NewElement(newMethodSource())
	assert.Equal(t, item.AccessPublic, element.Access())
	assert.Nil(t, element.Attributes())
	assert.Empty(t, element.DocComment())
	assert.False(t, element.IsStatic())
}

func TestElement_Hash(t *testing.T) {
	source := newMethodSource()
	element := item.NewElement(source)

	hash, err := element.Hash()
	assert.NoError(t, err)
	expected, err := item.HashText("// leading A\n// leading B\npublic void Foo() {}\n")
	assert.NoError(t, err)
	assert.Equal(t, expected, hash)

	source.source.lines[2] = "public void Foo() { return; }"
	changed, err := element.Hash()
	assert.NoError(t, err)
	assert.NotEqual(t, hash, changed)
}
