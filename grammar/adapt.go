package grammar

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/yamlast/cst"
)

// adapter reshapes a tree-sitter YAML tree into the cst contract:
// document-head/document-body and mapping-key/mapping-value wrappers are
// synthesized, anchor/tag properties are hoisted from block_node/flow_node
// wrappers onto the content node, and comments are hoisted onto the root.
type adapter struct {
	src      []byte
	comments []*cst.Node
}

func adapt(root *sitter.Node, src []byte) *cst.Node {
	a := &adapter{src: src}
	a.collectComments(root)
	stream := a.stream(root)
	stream.Comments = a.comments
	return stream
}

func (a *adapter) position(point sitter.Point, offset uint32) cst.Position {
	return cst.Position{
		Line:   int(point.Row) + 1,
		Column: int(point.Column) + 1,
		Offset: int(offset),
	}
}

// span builds a cst node covering exactly the tree-sitter node.
func (a *adapter) span(kind cst.Kind, n *sitter.Node) *cst.Node {
	return &cst.Node{
		Kind:  kind,
		Start: a.position(n.StartPoint(), n.StartByte()),
		End:   a.position(n.EndPoint(), n.EndByte()),
	}
}

// collectComments sweeps the whole tree once; comments are grammar extras
// and may surface at any depth.
func (a *adapter) collectComments(n *sitter.Node) {
	if n.Type() == "comment" {
		a.comments = append(a.comments, a.span(cst.KindComment, n))
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		a.collectComments(n.Child(i))
	}
}

func (a *adapter) stream(n *sitter.Node) *cst.Node {
	root := a.span(cst.KindRoot, n)
	var last *cst.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "document":
			doc := a.document(child)
			root.Children = append(root.Children, doc)
			last = doc
		case "...":
			// end marker surfaced as a stream child: extend the
			// preceding document to cover it
			if last != nil {
				last.End = a.position(child.EndPoint(), child.EndByte())
			}
		}
	}
	return root
}

func (a *adapter) document(n *sitter.Node) *cst.Node {
	doc := a.span(cst.KindDocument, n)

	var directives []*sitter.Node
	var marker *sitter.Node
	var content *sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "yaml_directive", "tag_directive", "reserved_directive":
			directives = append(directives, child)
		case "---":
			marker = child
		case "...", "comment":
		case "block_node", "flow_node":
			content = child
		default:
			if content == nil && child.IsNamed() {
				content = child
			}
		}
	}

	if len(directives) > 0 || marker != nil {
		head := &cst.Node{Kind: cst.KindDocumentHead}
		if len(directives) > 0 {
			head.Start = a.position(directives[0].StartPoint(), directives[0].StartByte())
		} else {
			head.Start = a.position(marker.StartPoint(), marker.StartByte())
		}
		if marker != nil {
			head.End = a.position(marker.EndPoint(), marker.EndByte())
		} else {
			tail := directives[len(directives)-1]
			head.End = a.position(tail.EndPoint(), tail.EndByte())
		}
		for _, directive := range directives {
			head.Children = append(head.Children, a.span(cst.KindDirective, directive))
		}
		doc.Children = append(doc.Children, head)
	}

	if content != nil {
		if converted := a.node(content); converted != nil {
			body := &cst.Node{
				Kind:     cst.KindDocumentBody,
				Start:    converted.Start,
				End:      converted.End,
				Children: []*cst.Node{converted},
			}
			doc.Children = append(doc.Children, body)
		}
	}
	return doc
}

// node unwraps a block_node/flow_node wrapper, hoisting anchor/tag
// properties onto the converted content node. A wrapper holding only
// properties gets a zero-width plain scalar to carry them; a wrapper with
// neither properties nor content yields nil.
func (a *adapter) node(n *sitter.Node) *cst.Node {
	target := n
	var anchor, tag *cst.Node
	if n.Type() == "block_node" || n.Type() == "flow_node" {
		target = nil
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			switch child.Type() {
			case "anchor":
				anchor = a.span(cst.KindAnchor, child)
			case "tag":
				tag = a.span(cst.KindTag, child)
			case "comment":
			default:
				target = child
			}
		}
		if target == nil {
			if anchor == nil && tag == nil {
				return nil
			}
			// property-only node, e.g. `k: &a` anchoring a null value:
			// synthesize a zero-width plain scalar so the anchor/tag still
			// converts and registers
			end := anchor
			if tag != nil && (end == nil || tag.End.Offset > end.End.Offset) {
				end = tag
			}
			scalar := &cst.Node{Kind: cst.KindPlainScalar, Start: end.End, End: end.End}
			scalar.Anchor = anchor
			scalar.Tag = tag
			return scalar
		}
	}
	converted := a.content(target)
	if converted != nil {
		converted.Anchor = anchor
		converted.Tag = tag
	}
	return converted
}

func (a *adapter) content(n *sitter.Node) *cst.Node {
	switch n.Type() {
	case "plain_scalar":
		return a.span(cst.KindPlainScalar, n)
	case "single_quote_scalar":
		return a.span(cst.KindSingleQuotedScalar, n)
	case "double_quote_scalar":
		return a.span(cst.KindDoubleQuotedScalar, n)
	case "block_scalar":
		kind := cst.KindBlockLiteral
		if int(n.StartByte()) < len(a.src) && a.src[n.StartByte()] == '>' {
			kind = cst.KindBlockFolded
		}
		return a.span(kind, n)
	case "alias":
		return a.span(cst.KindAlias, n)
	case "anchor":
		return a.span(cst.KindAnchor, n)
	case "tag":
		return a.span(cst.KindTag, n)
	case "block_mapping":
		return a.blockMapping(n)
	case "flow_mapping":
		return a.flowMapping(n)
	case "block_sequence":
		return a.blockSequence(n)
	case "flow_sequence":
		return a.flowSequence(n)
	}
	return nil
}

func (a *adapter) blockMapping(n *sitter.Node) *cst.Node {
	mapping := a.span(cst.KindMapping, n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "block_mapping_pair" {
			continue
		}
		mapping.Children = append(mapping.Children, a.pair(child, cst.KindMappingItem))
	}
	return mapping
}

func (a *adapter) flowMapping(n *sitter.Node) *cst.Node {
	mapping := a.span(cst.KindFlowMapping, n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "flow_pair":
			mapping.Children = append(mapping.Children, a.pair(child, cst.KindFlowMappingItem))
		case "flow_node":
			// single-key entry, e.g. {a}: key with no value
			item := a.span(cst.KindFlowMappingItem, child)
			key := a.span(cst.KindMappingKey, child)
			if converted := a.node(child); converted != nil {
				key.Children = []*cst.Node{converted}
			}
			item.Children = []*cst.Node{key}
			mapping.Children = append(mapping.Children, item)
		}
	}
	return mapping
}

// pair converts a key/value pair into an item node holding optional
// mapping-key and mapping-value wrappers.
func (a *adapter) pair(n *sitter.Node, kind cst.Kind) *cst.Node {
	item := a.span(kind, n)
	if key := n.ChildByFieldName("key"); key != nil {
		wrap := a.span(cst.KindMappingKey, key)
		if converted := a.node(key); converted != nil {
			wrap.Children = []*cst.Node{converted}
		}
		item.Children = append(item.Children, wrap)
	}
	if value := n.ChildByFieldName("value"); value != nil {
		wrap := a.span(cst.KindMappingValue, value)
		if converted := a.node(value); converted != nil {
			wrap.Children = []*cst.Node{converted}
		}
		item.Children = append(item.Children, wrap)
	}
	return item
}

func (a *adapter) blockSequence(n *sitter.Node) *cst.Node {
	sequence := a.span(cst.KindSequence, n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "block_sequence_item" {
			continue
		}
		item := a.span(cst.KindSequenceItem, child)
		for j := 0; j < int(child.NamedChildCount()); j++ {
			entry := child.NamedChild(j)
			if entry.Type() == "comment" {
				continue
			}
			if converted := a.node(entry); converted != nil {
				item.Children = append(item.Children, converted)
			}
		}
		sequence.Children = append(sequence.Children, item)
	}
	return sequence
}

func (a *adapter) flowSequence(n *sitter.Node) *cst.Node {
	sequence := a.span(cst.KindFlowSequence, n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "flow_node":
			item := a.span(cst.KindFlowSequenceItem, child)
			if converted := a.node(child); converted != nil {
				item.Children = []*cst.Node{converted}
			}
			sequence.Children = append(sequence.Children, item)
		case "flow_pair":
			// [k: v] shorthand: keep the pair shape, the converter
			// wraps it into a synthetic single-pair mapping
			item := a.span(cst.KindFlowSequenceItem, child)
			item.Children = []*cst.Node{a.pair(child, cst.KindFlowMappingItem)}
			sequence.Children = append(sequence.Children, item)
		}
	}
	return sequence
}
