package item

// LineSource represents a line addressable text model
type LineSource interface {
	// Lines returns the literal text of lines [start, end), including line terminators
	Lines(start, end int) (string, error)

	// StartOfLine returns the position of the first character of the line
	StartOfLine(line int) (Point, error)
}

// SourceElement represents a host provided code element. Implementations are read only from the item point of view.
type SourceElement interface {
	// Name returns the element name
	Name() (string, error)

	// StartPoint returns the element start position
	StartPoint() (Point, error)

	// EndPoint returns the element end position
	EndPoint() (Point, error)

	// Lines returns the text model holding the element
	Lines() LineSource
}

// AccessProvider is implemented by source elements that know their access level
type AccessProvider interface {
	Access() (Access, error)
}

// AttributeProvider is implemented by source elements that carry attributes or annotations
type AttributeProvider interface {
	Attributes() ([]string, error)
}

// DocCommentProvider is implemented by source elements that carry a documentation comment
type DocCommentProvider interface {
	DocComment() (string, error)
}

// StaticProvider is implemented by source elements that can be static
type StaticProvider interface {
	IsStatic() (bool, error)
}
