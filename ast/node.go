// Package ast defines the linear syntax tree the converter produces: a
// Program root with an ordered document body, a flat sorted
// token stream, a comment list, and parent back-references on every node.
// JSON field names are fixed by the consuming tooling and must not change.
package ast

import "encoding/json"

// Node type discriminators, stored in every node's Type field.
const (
	TypeProgram   = "Program"
	TypeDocument  = "Document"
	TypeDirective = "Directive"
	TypeMapping   = "Mapping"
	TypePair      = "Pair"
	TypeSequence  = "Sequence"
	TypeScalar    = "Scalar"
	TypeAlias     = "Alias"
	TypeAnchor    = "Anchor"
	TypeTag       = "Tag"
)

// Style distinguishes block from flow collections.
type Style string

const (
	StyleBlock Style = "block"
	StyleFlow  Style = "flow"
)

// ScalarStyle is the lexical presentation of a scalar.
type ScalarStyle string

const (
	StylePlain        ScalarStyle = "plain"
	StyleDoubleQuoted ScalarStyle = "double-quoted"
	StyleSingleQuoted ScalarStyle = "single-quoted"
	StyleLiteral      ScalarStyle = "literal"
	StyleFolded       ScalarStyle = "folded"
)

// Node is implemented by every tree node, the Program root included.
type Node interface {
	NodeType() string
	Bounds() Range
	Location() Location
	Parent() Node
	SetParent(Node)
}

// Content is a node that can appear as document content or inside a
// collection: Mapping, Sequence, Scalar or Alias.
type Content interface {
	Node
	contentNode()
}

// BaseNode carries the fields shared by every node. The parent reference is
// unexported so the tree marshals without cycles; ownership flows strictly
// downward.
type BaseNode struct {
	Type  string   `json:"type"`
	Range Range    `json:"range"`
	Loc   Location `json:"loc"`

	parent Node
}

func (b *BaseNode) NodeType() string   { return b.Type }
func (b *BaseNode) Bounds() Range      { return b.Range }
func (b *BaseNode) Location() Location { return b.Loc }

// Parent returns the owning node, nil for the Program root.
func (b *BaseNode) Parent() Node { return b.parent }

// SetParent records the owning node; a non-owning back-reference.
func (b *BaseNode) SetParent(p Node) { b.parent = p }

// Program is the root node of a converted stream.
type Program struct {
	BaseNode
	Body       []*Document `json:"body"`
	Comments   []*Comment  `json:"comments"`
	Tokens     []*Token    `json:"tokens"`
	SourceType string      `json:"sourceType"`
}

// Document is one `---`-separated document of the stream.
type Document struct {
	BaseNode
	Directives []*Directive `json:"directives"`
	Content    Content      `json:"content"`

	// Anchors maps an anchor name to the last Anchor node converted under
	// that name in this document. Duplicates silently overwrite.
	Anchors map[string]*Anchor `json:"-"`
}

// Anchor returns the registered anchor for name, or nil.
func (d *Document) Anchor(name string) *Anchor {
	return d.Anchors[name]
}

// RegisterAnchor records an anchor definition, overwriting any prior entry
// for the same name.
func (d *Document) RegisterAnchor(a *Anchor) {
	if d.Anchors == nil {
		d.Anchors = make(map[string]*Anchor)
	}
	d.Anchors[a.Name] = a
}

// Directive is one `%` directive line of a document head.
type Directive struct {
	BaseNode
	Value string `json:"value"`
}

// Mapping is an ordered list of pairs, block or flow style.
type Mapping struct {
	BaseNode
	Style  Style   `json:"style"`
	Pairs  []*Pair `json:"pairs"`
	Anchor *Anchor `json:"anchor"`
	Tag    *Tag    `json:"tag"`
}

// Pair is one key/value entry of a mapping. Either side may be nil, e.g.
// `? key` with no value or `: value` with no key.
type Pair struct {
	BaseNode
	Key   Content `json:"key"`
	Value Content `json:"value"`
}

// Sequence is an ordered list of content nodes, block or flow style.
type Sequence struct {
	BaseNode
	Style   Style     `json:"style"`
	Entries []Content `json:"entries"`
	Anchor  *Anchor   `json:"anchor"`
	Tag     *Tag      `json:"tag"`
}

// Alias is a `*name` reference to an anchor defined earlier in the same
// document; it never owns the referenced node.
type Alias struct {
	BaseNode
	Name   string  `json:"name"`
	Anchor *Anchor `json:"anchor"`
	Tag    *Tag    `json:"tag"`
}

// Anchor is a `&name` definition attached to a content node.
type Anchor struct {
	BaseNode
	Name string `json:"name"`
}

// Tag is an explicit `!name`/`!!name` type annotation. Tag holds the
// resolved URI or shorthand; Raw keeps the source spelling for delegation.
type Tag struct {
	BaseNode
	Tag string `json:"tag"`
	Raw string `json:"-"`
}

// Scalar is a scalar content node. StrValue is the raw lexical text, decoded
// for quoted and block forms; the typed value is computed lazily on first
// access and cached permanently.
type Scalar struct {
	BaseNode
	Style    ScalarStyle `json:"style"`
	StrValue string      `json:"strValue"`
	Chomping string      `json:"chomping,omitempty"`
	Indent   int         `json:"indent,omitempty"`
	Anchor   *Anchor     `json:"anchor"`
	Tag      *Tag        `json:"tag"`

	resolver func() interface{}
	value    interface{}
	resolved bool
}

// SetResolver installs the function that computes the typed value. It runs
// at most once.
func (s *Scalar) SetResolver(fn func() interface{}) {
	s.resolver = fn
}

// Value returns the typed value of the scalar, computing it on first read.
func (s *Scalar) Value() interface{} {
	if !s.resolved {
		s.resolved = true
		if s.resolver != nil {
			s.value = s.resolver()
			s.resolver = nil
		}
	}
	return s.value
}

// MarshalJSON includes the resolved value alongside the declared fields.
func (s *Scalar) MarshalJSON() ([]byte, error) {
	type scalar Scalar
	return json.Marshal(struct {
		*scalar
		Value interface{} `json:"value"`
	}{(*scalar)(s), s.Value()})
}

func (*Mapping) contentNode()  {}
func (*Sequence) contentNode() {}
func (*Scalar) contentNode()   {}
func (*Alias) contentNode()    {}
