package item

import "strconv"

// Description represents a serializable snapshot of an item
type Description struct {
	Kind        string   `json:"kind" yaml:"kind"`
	Name        string   `json:"name" yaml:"name"`
	StartLine   int      `json:"startLine" yaml:"startLine"`
	StartOffset int      `json:"startOffset" yaml:"startOffset"`
	EndLine     int      `json:"endLine" yaml:"endLine"`
	EndOffset   int      `json:"endOffset" yaml:"endOffset"`
	Adjusted    *Point   `json:"adjusted,omitempty" yaml:"adjusted,omitempty"` // start adjusted for leading comments
	Access      string   `json:"access" yaml:"access"`
	Static      bool     `json:"static,omitempty" yaml:"static,omitempty"`
	Attributes  []string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	DocComment  string   `json:"docComment,omitempty" yaml:"docComment,omitempty"`
	Hash        string   `json:"hash,omitempty" yaml:"hash,omitempty"`
}

// Describe creates a description from the item cache and its current source
func Describe(it Item) (*Description, error) {
	base := it.Base()
	ret := &Description{
		Kind:        it.TypeString(),
		Name:        base.Name,
		StartLine:   base.StartLine,
		StartOffset: base.StartOffset,
		EndLine:     base.EndLine,
		EndOffset:   base.EndOffset,
		Access:      it.Access().String(),
		Static:      it.IsStatic(),
		Attributes:  it.Attributes(),
		DocComment:  it.DocComment(),
	}
	adjusted, err := it.StartPoint()
	if err != nil {
		return nil, err
	}
	ret.Adjusted = adjusted
	if adjusted != nil {
		hash, err := it.Hash()
		if err != nil {
			return nil, err
		}
		ret.Hash = strconv.FormatUint(hash, 16)
	}
	return ret, nil
}
