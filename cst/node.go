// Package cst declares the concrete-syntax-tree contract the converter
// consumes. Trees of this shape are produced by the grammar package, but the
// converter only depends on the types below, so any engine that emits
// position-annotated nodes with these kinds can feed it.
package cst

// Kind identifies an upstream concrete-syntax node kind.
type Kind string

const (
	KindRoot               Kind = "root"
	KindDocument           Kind = "document"
	KindDocumentHead       Kind = "document-head"
	KindDirective          Kind = "directive"
	KindDocumentBody       Kind = "document-body"
	KindMapping            Kind = "mapping"
	KindFlowMapping        Kind = "flow-mapping"
	KindMappingItem        Kind = "mapping-item"
	KindFlowMappingItem    Kind = "flow-mapping-item"
	KindMappingKey         Kind = "mapping-key"
	KindMappingValue       Kind = "mapping-value"
	KindSequence           Kind = "sequence"
	KindFlowSequence       Kind = "flow-sequence"
	KindSequenceItem       Kind = "sequence-item"
	KindFlowSequenceItem   Kind = "flow-sequence-item"
	KindPlainScalar        Kind = "plain-scalar"
	KindDoubleQuotedScalar Kind = "double-quoted-scalar"
	KindSingleQuotedScalar Kind = "single-quoted-scalar"
	KindBlockLiteral       Kind = "block-literal"
	KindBlockFolded        Kind = "block-folded"
	KindAlias              Kind = "alias"
	KindAnchor             Kind = "anchor"
	KindTag                Kind = "tag"
	KindComment            Kind = "comment"
)

// Position locates one end of a node in the source text. Line and Column are
// 1-based, matching what grammar engines report; Offset is the 0-based byte
// offset into the source.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Node is one concrete-syntax node. Content-bearing nodes may expose the
// anchor/tag property sub-nodes the engine attached to them. Comments are
// hoisted onto the root node only.
type Node struct {
	Kind     Kind
	Start    Position
	End      Position
	Children []*Node

	Anchor *Node
	Tag    *Node

	// Comments holds every comment of the stream; populated on the root.
	Comments []*Node
}

// Text returns the source text the node spans.
func (n *Node) Text(src []byte) string {
	return string(src[n.Start.Offset:n.End.Offset])
}

// Child returns the first child of the given kind, or nil.
func (n *Node) Child(kind Kind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}
