package csharp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/inspector/csharp"
	"github.com/viant/codeitem/item"
)

type expectedItem struct {
	kind      item.Kind
	name      string
	startLine int
	adjusted  int
	access    item.Access
	static    bool
	doc       string
	attrs     []string
}

func TestInspector_InspectSource(t *testing.T) {
	src := `using System;

namespace Demo
{
    /// <summary>
    /// Greets people.
    /// </summary>
    [Serializable]
    public class Greeter
    {
        private static int count;

        // Name of the greeter
        public string Name { get; set; }

        /// Greets the user.
        public void Greet() {}

        void Reset() {}
    }

    interface INamed
    {
        string Name();
    }

    enum Color { Red }
}
`
	want := []expectedItem{
		{kind: item.KindNamespace, name: "Demo", startLine: 3, adjusted: 3, access: item.AccessPublic},
		{kind: item.KindClass, name: "Greeter", startLine: 8, adjusted: 5, access: item.AccessPublic,
			doc: "<summary>\nGreets people.\n</summary>", attrs: []string{"Serializable"}},
		{kind: item.KindField, name: "count", startLine: 11, adjusted: 11, access: item.AccessPrivate, static: true},
		{kind: item.KindProperty, name: "Name", startLine: 14, adjusted: 13, access: item.AccessPublic, doc: "Name of the greeter"},
		{kind: item.KindMethod, name: "Greet", startLine: 17, adjusted: 16, access: item.AccessPublic, doc: "Greets the user."},
		{kind: item.KindMethod, name: "Reset", startLine: 19, adjusted: 19, access: item.AccessPrivate},
		{kind: item.KindInterface, name: "INamed", startLine: 22, adjusted: 22, access: item.AccessInternal},
		{kind: item.KindMethod, name: "Name", startLine: 24, adjusted: 24, access: item.AccessPublic},
		{kind: item.KindEnum, name: "Color", startLine: 27, adjusted: 27, access: item.AccessInternal},
		{kind: item.KindField, name: "Red", startLine: 27, adjusted: 27, access: item.AccessPublic, static: true},
	}

	inspector := csharp.NewInspector()
	items, err := inspector.InspectSource(context.Background(), document.New("Greeter.cs", []byte(src)))
	if !assert.NoError(t, err) {
		return
	}
	var actual []expectedItem
	for _, anItem := range items {
		start, err := anItem.StartPoint()
		if !assert.NoError(t, err) {
			return
		}
		actual = append(actual, expectedItem{
			kind:      item.Kind(anItem.TypeString()),
			name:      anItem.Base().Name,
			startLine: anItem.Base().StartLine,
			adjusted:  start.Line,
			access:    anItem.Access(),
			static:    anItem.IsStatic(),
			doc:       anItem.DocComment(),
			attrs:     anItem.Attributes(),
		})
	}
	assert.Equal(t, want, actual)
}

func TestInspector_IsTest(t *testing.T) {
	inspector := csharp.NewInspector()
	assert.True(t, inspector.IsTest("GreeterTests.cs"))
	assert.False(t, inspector.IsTest("Greeter.cs"))
}

func TestInspector_InspectSource_Declarators(t *testing.T) {
	src := `public struct Money
{
    // amounts
    int a, b;
    public event Action Changed, Reset;

    public static Money operator +(Money x, Money y) { return x; }
}
`
	items, err := csharp.NewInspector().InspectSource(context.Background(), document.New("Money.cs", []byte(src)))
	if !assert.NoError(t, err) {
		return
	}
	var names []string
	for _, anItem := range items {
		names = append(names, anItem.TypeString()+" "+anItem.Base().Name)
	}
	assert.Equal(t, []string{"struct Money", "field a", "field b", "event Changed", "event Reset", "method operator +"}, names)
	if !assert.Len(t, items, 6) {
		return
	}
	for _, anItem := range items[1:3] {
		start, err := anItem.StartPoint()
		assert.NoError(t, err)
		assert.Equal(t, 3, start.Line)
		assert.Equal(t, 4, anItem.Base().StartLine)
		assert.Equal(t, item.AccessPrivate, anItem.Access())
		assert.Equal(t, "amounts", anItem.DocComment())
	}
	assert.Equal(t, item.AccessPublic, items[3].Access())
	assert.True(t, items[5].IsStatic())
}
