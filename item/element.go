package item

// Element caches name and position of a host code element. It is embedded by every item kind.
// Cached fields reflect the source element as of the last Refresh call only.
type Element struct {
	Source SourceElement // wrapped host element, may be nil

	Name        string
	StartLine   int
	StartOffset int
	EndLine     int
	EndOffset   int
}

// NewElement creates an element wrapping source
func NewElement(source SourceElement) *Element {
	return &Element{Source: source}
}

// Base returns the element itself
func (e *Element) Base() *Element {
	return e
}

// StartPoint returns the start point adjusted for leading comments, or nil when no source is wrapped
func (e *Element) StartPoint() (*Point, error) {
	if e.Source == nil {
		return nil, nil
	}
	start, err := e.Source.StartPoint()
	if err != nil {
		return nil, err
	}
	adjusted, err := AdjustStartForComments(e.Source.Lines(), start)
	if err != nil {
		return nil, err
	}
	return &adjusted, nil
}

// EndPoint returns the end point, or nil when no source is wrapped
func (e *Element) EndPoint() (*Point, error) {
	if e.Source == nil {
		return nil, nil
	}
	end, err := e.Source.EndPoint()
	if err != nil {
		return nil, err
	}
	return &end, nil
}

// Refresh copies name and positions from the wrapped source element into the cached fields.
// It panics when no source element is wrapped.
func (e *Element) Refresh() error {
	if e.Source == nil {
		panic("item: Refresh called without a source element")
	}
	start, err := e.Source.StartPoint()
	if err != nil {
		return err
	}
	end, err := e.Source.EndPoint()
	if err != nil {
		return err
	}
	name, err := e.Source.Name()
	if err != nil {
		return err
	}
	e.StartLine = start.Line
	e.StartOffset = start.Offset
	e.EndLine = end.Line
	e.EndOffset = end.Offset
	e.Name = name
	return nil
}

// Hash returns a hash of the lines spanned from the adjusted start to the end, 0 when no source is wrapped
func (e *Element) Hash() (uint64, error) {
	start, err := e.StartPoint()
	if err != nil || start == nil {
		return 0, err
	}
	end, err := e.EndPoint()
	if err != nil {
		return 0, err
	}
	text, err := e.Source.Lines().Lines(start.Line, end.Line+1)
	if err != nil {
		return 0, err
	}
	return HashText(text)
}

// Access returns the access level, public by default
func (e *Element) Access() Access {
	return AccessPublic
}

// Attributes returns attributes, none by default
func (e *Element) Attributes() []string {
	return nil
}

// DocComment returns the doc comment, empty by default
func (e *Element) DocComment() string {
	return ""
}

// IsStatic returns true if element is static, false by default
func (e *Element) IsStatic() bool {
	return false
}
