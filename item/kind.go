package item

import "fmt"

// Kind represents an item kind, its value is used as the item type string
type Kind string

const (
	KindNamespace Kind = "namespace"
	KindClass     Kind = "class"
	KindStruct    Kind = "struct"
	KindInterface Kind = "interface"
	KindEnum      Kind = "enum"
	KindMethod    Kind = "method"
	KindProperty  Kind = "property"
	KindField     Kind = "field"
	KindEvent     Kind = "event"
	KindDelegate  Kind = "delegate"
)

// Kinds returns all supported kinds
func Kinds() []Kind {
	return []Kind{KindNamespace, KindClass, KindStruct, KindInterface, KindEnum,
		KindMethod, KindProperty, KindField, KindEvent, KindDelegate}
}

// ParseKind parses a kind name
func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds() {
		if string(kind) == name {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unsupported item kind: %q", name)
}

// Item represents a code item backed by a host code element
type Item interface {
	// Base returns the cached element state
	Base() *Element

	// TypeString returns a descriptive kind label, i.e. "class"
	TypeString() string

	StartPoint() (*Point, error)
	EndPoint() (*Point, error)
	Refresh() error
	Hash() (uint64, error)

	Access() Access
	Attributes() []string
	DocComment() string
	IsStatic() bool
}

// New creates an item of the given kind wrapping source
func New(kind Kind, source SourceElement) (Item, error) {
	element := NewElement(source)
	switch kind {
	case KindNamespace:
		return &Namespace{element}, nil
	case KindClass:
		return &Class{member{element}}, nil
	case KindStruct:
		return &Struct{member{element}}, nil
	case KindInterface:
		return &Interface{member{element}}, nil
	case KindEnum:
		return &Enum{annotated{element}}, nil
	case KindMethod:
		return &Method{member{element}}, nil
	case KindProperty:
		return &Property{member{element}}, nil
	case KindField:
		return &Field{member{element}}, nil
	case KindEvent:
		return &Event{annotated{element}}, nil
	case KindDelegate:
		return &Delegate{annotated{element}}, nil
	}
	return nil, fmt.Errorf("unsupported item kind: %q", kind)
}

// annotated reads access, attributes and doc comment from the source when it provides them
type annotated struct{ *Element }

func (a annotated) Access() Access {
	if provider, ok := a.Source.(AccessProvider); ok {
		return TryDefault(provider.Access)
	}
	return a.Element.Access()
}

func (a annotated) Attributes() []string {
	if provider, ok := a.Source.(AttributeProvider); ok {
		return TryDefault(provider.Attributes)
	}
	return a.Element.Attributes()
}

func (a annotated) DocComment() string {
	if provider, ok := a.Source.(DocCommentProvider); ok {
		return TryDefault(provider.DocComment)
	}
	return a.Element.DocComment()
}

// member is annotated and can also be static
type member struct{ *Element }

func (m member) Access() Access       { return annotated(m).Access() }
func (m member) Attributes() []string { return annotated(m).Attributes() }
func (m member) DocComment() string   { return annotated(m).DocComment() }

func (m member) IsStatic() bool {
	if provider, ok := m.Source.(StaticProvider); ok {
		return TryDefault(provider.IsStatic)
	}
	return m.Element.IsStatic()
}

// Namespace represents a namespace or package, it only carries defaults
type Namespace struct{ *Element }

func (n *Namespace) TypeString() string { return string(KindNamespace) }

// Class represents a class
type Class struct{ member }

func (c *Class) TypeString() string { return string(KindClass) }

// Struct represents a struct
type Struct struct{ member }

func (s *Struct) TypeString() string { return string(KindStruct) }

// Interface represents an interface
type Interface struct{ member }

func (i *Interface) TypeString() string { return string(KindInterface) }

// Enum represents an enumeration
type Enum struct{ annotated }

func (e *Enum) TypeString() string { return string(KindEnum) }

// Method represents a method, function or constructor
type Method struct{ member }

func (m *Method) TypeString() string { return string(KindMethod) }

// Property represents a property or indexer
type Property struct{ member }

func (p *Property) TypeString() string { return string(KindProperty) }

// Field represents a field, constant, variable or enum member
type Field struct{ member }

func (f *Field) TypeString() string { return string(KindField) }

// Event represents an event
type Event struct{ annotated }

func (e *Event) TypeString() string { return string(KindEvent) }

// Delegate represents a delegate or function type
type Delegate struct{ annotated }

func (d *Delegate) TypeString() string { return string(KindDelegate) }
