package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/codeitem/item"
)

func newDescribedElement() *describedElement {
	element := newMethodSource()
	return &describedElement{
		sourceElement: *element,
		access:        item.AccessProtected,
		attributes:    []string{"Obsolete"},
		doc:           "Foo does things.",
		static:        true,
	}
}

func TestNew(t *testing.T) {
	for _, kind := range item.Kinds() {
		it, err := item.New(kind, newMethodSource())
		if !assert.NoError(t, err, kind) {
			continue
		}
		assert.Equal(t, string(kind), it.TypeString())
		assert.NotNil(t, it.Base().Source)
	}

	_, err := item.New("module", newMethodSource())
	assert.Error(t, err)
}

func TestItem_Metadata(t *testing.T) {
	type metadata struct {
		access     item.Access
		attributes []string
		doc        string
		static     bool
	}
	provided := metadata{access: item.AccessProtected, attributes: []string{"Obsolete"}, doc: "Foo does things.", static: true}
	defaults := metadata{access: item.AccessPublic}
	annotated := metadata{access: item.AccessProtected, attributes: []string{"Obsolete"}, doc: "Foo does things."}

	tests := []struct {
		kind item.Kind
		want metadata
	}{
		{kind: item.KindNamespace, want: defaults},
		{kind: item.KindClass, want: provided},
		{kind: item.KindStruct, want: provided},
		{kind: item.KindInterface, want: provided},
		{kind: item.KindMethod, want: provided},
		{kind: item.KindProperty, want: provided},
		{kind: item.KindField, want: provided},
		{kind: item.KindEnum, want: annotated},
		{kind: item.KindEvent, want: annotated},
		{kind: item.KindDelegate, want: annotated},
	}
	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			it, err := item.New(tc.kind, newDescribedElement())
			if !assert.NoError(t, err) {
				return
			}
			actual := metadata{access: it.Access(), attributes: it.Attributes(), doc: it.DocComment(), static: it.IsStatic()}
			assert.Equal(t, tc.want, actual)
		})
	}
}

func TestItem_MetadataFailure(t *testing.T) {
	for _, panics := range []bool{false, true} {
		source := newDescribedElement()
		source.fail = true
		source.panics = panics
		it, err := item.New(item.KindMethod, source)
		if !assert.NoError(t, err) {
			continue
		}
		assert.Equal(t, item.AccessUnspecified, it.Access())
		assert.Nil(t, it.Attributes())
		assert.Empty(t, it.DocComment())
		assert.False(t, it.IsStatic())

		// required reads are not guarded
		assert.NoError(t, it.Refresh())
		assert.Equal(t, "Foo", it.Base().Name)
	}
}

func TestItem_MetadataWithoutProvider(t *testing.T) {
	it, err := item.New(item.KindMethod, newMethodSource())
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, item.AccessPublic, it.Access())
	assert.Nil(t, it.Attributes())
	assert.Empty(t, it.DocComment())
	assert.False(t, it.IsStatic())
}

func TestDescribe(t *testing.T) {
	it, err := item.New(item.KindMethod, newDescribedElement())
	if !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, it.Refresh())
	actual, err := item.Describe(it)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "method", actual.Kind)
	assert.Equal(t, "Foo", actual.Name)
	assert.Equal(t, 3, actual.StartLine)
	assert.Equal(t, &item.Point{Line: 1, Offset: 1}, actual.Adjusted)
	assert.Equal(t, "protected", actual.Access)
	assert.True(t, actual.Static)
	assert.Equal(t, []string{"Obsolete"}, actual.Attributes)
	assert.NotEmpty(t, actual.Hash)
}

func TestParseAccess(t *testing.T) {
	tests := []struct {
		text    string
		want    item.Access
		wantErr bool
	}{
		{text: "public", want: item.AccessPublic},
		{text: "Protected  Internal", want: item.AccessProtectedInternal},
		{text: "internal protected", want: item.AccessProtectedInternal},
		{text: "private protected", want: item.AccessPrivateProtected},
		{text: "friend", wantErr: true},
	}
	for _, tc := range tests {
		actual, err := item.ParseAccess(tc.text)
		if tc.wantErr {
			assert.Error(t, err, tc.text)
			continue
		}
		assert.NoError(t, err, tc.text)
		assert.Equal(t, tc.want, actual, tc.text)
		assert.Equal(t, tc.want, must(item.ParseAccess(actual.String())))
	}
}

func must(access item.Access, err error) item.Access {
	if err != nil {
		panic(err)
	}
	return access
}
