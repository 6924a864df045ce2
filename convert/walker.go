package convert

import (
	"fmt"
	"strings"

	"github.com/viant/yamlast/ast"
	"github.com/viant/yamlast/cst"
)

// document converts one stream document: directives and the start marker
// from the document head, the optional content tree from the document body,
// and the end marker when the document range closes with one.
func (c *converter) document(n *cst.Node, program *ast.Program) (*ast.Document, error) {
	document := &ast.Document{
		Directives: []*ast.Directive{},
		Anchors:    map[string]*ast.Anchor{},
	}
	document.Type = ast.TypeDocument
	document.Range, document.Loc = nodeLocations(n)
	document.SetParent(program)

	if head := n.Child(cst.KindDocumentHead); head != nil {
		for _, child := range head.Children {
			if child.Kind != cst.KindDirective {
				continue
			}
			directive := &ast.Directive{Value: child.Text(c.src)}
			directive.Type = ast.TypeDirective
			directive.Range, directive.Loc = nodeLocations(child)
			directive.SetParent(document)
			document.Directives = append(document.Directives, directive)
			c.addToken(ast.TokenDirective, child.Start.Offset, child.End.Offset)
		}
		if c.endsWith(head.End.Offset, "---") {
			c.addToken(ast.TokenMarker, head.End.Offset-3, head.End.Offset)
		}
	}

	if body := n.Child(cst.KindDocumentBody); body != nil && len(body.Children) > 0 {
		content, err := c.content(body.Children[0], document, document)
		if err != nil {
			return nil, err
		}
		document.Content = content
	}

	if c.endsWith(n.End.Offset, "...") {
		c.addToken(ast.TokenMarker, n.End.Offset-3, n.End.Offset)
	}
	return document, nil
}

// endsWith reports whether the still-unclaimed text right before end is the
// given marker; checked against the working copy so a marker-looking tail of
// an already emitted token never double-tokenizes.
func (c *converter) endsWith(end int, marker string) bool {
	start := end - len(marker)
	if start < 0 || end > len(c.working) {
		return false
	}
	return string(c.working[start:end]) == marker
}

// content is the walker's kind dispatch. It is exhaustive over the content
// kinds of the upstream contract; anything else is a malformed tree.
func (c *converter) content(n *cst.Node, parent ast.Node, document *ast.Document) (ast.Content, error) {
	switch n.Kind {
	case cst.KindMapping, cst.KindFlowMapping:
		return c.mapping(n, parent, document)
	case cst.KindSequence, cst.KindFlowSequence:
		return c.sequence(n, parent, document)
	case cst.KindPlainScalar, cst.KindDoubleQuotedScalar, cst.KindSingleQuotedScalar,
		cst.KindBlockLiteral, cst.KindBlockFolded:
		return c.scalar(n, parent, document)
	case cst.KindAlias:
		return c.alias(n, parent, document)
	}
	return nil, fmt.Errorf("unsupported node kind: %s", n.Kind)
}

func (c *converter) mapping(n *cst.Node, parent ast.Node, document *ast.Document) (*ast.Mapping, error) {
	mapping := &ast.Mapping{Style: ast.StyleBlock, Pairs: []*ast.Pair{}}
	if n.Kind == cst.KindFlowMapping {
		mapping.Style = ast.StyleFlow
	}
	mapping.Type = ast.TypeMapping
	mapping.Range, mapping.Loc = nodeLocations(n)
	mapping.SetParent(parent)
	c.convertProperties(n, mapping, &mapping.BaseNode, &mapping.Anchor, &mapping.Tag, document)

	for _, item := range n.Children {
		switch item.Kind {
		case cst.KindMappingItem, cst.KindFlowMappingItem:
			pair, err := c.pair(item, mapping, document)
			if err != nil {
				return nil, err
			}
			mapping.Pairs = append(mapping.Pairs, pair)
		default:
			return nil, fmt.Errorf("unsupported node kind: %s", item.Kind)
		}
	}
	return mapping, nil
}

// pair converts one mapping item. Either side may be absent: an empty item
// body produces no key/value node.
func (c *converter) pair(n *cst.Node, parent ast.Node, document *ast.Document) (*ast.Pair, error) {
	pair := &ast.Pair{}
	pair.Type = ast.TypePair
	pair.Range, pair.Loc = nodeLocations(n)
	pair.SetParent(parent)

	if wrap := n.Child(cst.KindMappingKey); wrap != nil && len(wrap.Children) > 0 {
		key, err := c.content(wrap.Children[0], pair, document)
		if err != nil {
			return nil, err
		}
		pair.Key = key
	}
	if wrap := n.Child(cst.KindMappingValue); wrap != nil && len(wrap.Children) > 0 {
		value, err := c.content(wrap.Children[0], pair, document)
		if err != nil {
			return nil, err
		}
		pair.Value = value
	}
	return pair, nil
}

func (c *converter) sequence(n *cst.Node, parent ast.Node, document *ast.Document) (*ast.Sequence, error) {
	sequence := &ast.Sequence{Style: ast.StyleBlock, Entries: []ast.Content{}}
	if n.Kind == cst.KindFlowSequence {
		sequence.Style = ast.StyleFlow
	}
	sequence.Type = ast.TypeSequence
	sequence.Range, sequence.Loc = nodeLocations(n)
	sequence.SetParent(parent)
	c.convertProperties(n, sequence, &sequence.BaseNode, &sequence.Anchor, &sequence.Tag, document)

	for _, item := range n.Children {
		switch item.Kind {
		case cst.KindSequenceItem, cst.KindFlowSequenceItem:
			if len(item.Children) == 0 {
				// empty item, legal and bodiless
				continue
			}
			child := item.Children[0]
			if child.Kind == cst.KindFlowMappingItem {
				// [k: v] shorthand: wrap into a synthetic single-pair
				// mapping so sequences hold content nodes only
				wrapped, err := c.syntheticMapping(child, sequence, document)
				if err != nil {
					return nil, err
				}
				sequence.Entries = append(sequence.Entries, wrapped)
				continue
			}
			entry, err := c.content(child, sequence, document)
			if err != nil {
				return nil, err
			}
			sequence.Entries = append(sequence.Entries, entry)
		default:
			return nil, fmt.Errorf("unsupported node kind: %s", item.Kind)
		}
	}
	return sequence, nil
}

func (c *converter) syntheticMapping(item *cst.Node, parent ast.Node, document *ast.Document) (*ast.Mapping, error) {
	mapping := &ast.Mapping{Style: ast.StyleBlock, Pairs: []*ast.Pair{}}
	mapping.Type = ast.TypeMapping
	mapping.Range, mapping.Loc = nodeLocations(item)
	mapping.SetParent(parent)
	pair, err := c.pair(item, mapping, document)
	if err != nil {
		return nil, err
	}
	mapping.Pairs = append(mapping.Pairs, pair)
	return mapping, nil
}

func (c *converter) alias(n *cst.Node, parent ast.Node, document *ast.Document) (*ast.Alias, error) {
	text := n.Text(c.src)
	alias := &ast.Alias{}
	alias.Type = ast.TypeAlias
	alias.Range, alias.Loc = nodeLocations(n)
	alias.SetParent(parent)
	c.convertProperties(n, alias, &alias.BaseNode, &alias.Anchor, &alias.Tag, document)

	start := n.Start.Offset
	if strings.HasPrefix(text, "*") {
		alias.Name = text[1:]
		c.addToken(ast.TokenPunctuator, start, start+1)
		if n.End.Offset > start+1 {
			c.addToken(ast.TokenIdentifier, start+1, n.End.Offset)
		}
	} else {
		// sigil-less alias text from the engine: whole-range fallback
		alias.Name = text
		c.addToken(ast.TokenIdentifier, start, n.End.Offset)
	}
	return alias, nil
}
