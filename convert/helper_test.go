package convert_test

import (
	"github.com/viant/yamlast/ast"
	"github.com/viant/yamlast/cst"
)

// tree builds cst nodes over a source string, deriving the 1-based line and
// column of every boundary from its byte offset, matching what the grammar
// engine annotates.
type tree struct {
	src string
}

func (t tree) at(offset int) cst.Position {
	line, column := 1, 1
	for i := 0; i < offset && i < len(t.src); i++ {
		if t.src[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return cst.Position{Line: line, Column: column, Offset: offset}
}

func (t tree) node(kind cst.Kind, start, end int, children ...*cst.Node) *cst.Node {
	return &cst.Node{Kind: kind, Start: t.at(start), End: t.at(end), Children: children}
}

func (t tree) withAnchor(n *cst.Node, anchor *cst.Node) *cst.Node {
	n.Anchor = anchor
	return n
}

func (t tree) withTag(n *cst.Node, tag *cst.Node) *cst.Node {
	n.Tag = tag
	return n
}

// tokenAt finds the token starting at the given offset.
func tokenAt(tokens []*ast.Token, offset int) *ast.Token {
	for _, token := range tokens {
		if token.Range[0] == offset {
			return token
		}
	}
	return nil
}
