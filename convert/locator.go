package convert

import (
	"github.com/viant/yamlast/ast"
	"github.com/viant/yamlast/cst"
)

// locator maps byte offsets in the source text to line/column positions, for
// tokens synthesized at offsets the upstream tree never annotated.
type locator struct {
	src        []byte
	lineStarts []int
}

func newLocator(src []byte) *locator {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &locator{src: src, lineStarts: starts}
}

func (l *locator) position(offset int) ast.Position {
	lo, hi := 0, len(l.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return ast.Position{Line: lo + 1, Column: offset - l.lineStarts[lo]}
}

func (l *locator) locations(start, end int) (ast.Range, ast.Location) {
	return ast.Range{start, end}, ast.Location{Start: l.position(start), End: l.position(end)}
}

// normalize converts an upstream position (1-based line, 1-based column)
// into the output convention (1-based line, 0-based column).
func normalize(p cst.Position) ast.Position {
	return ast.Position{Line: p.Line, Column: p.Column - 1}
}

// nodeLocations derives the range/loc pair of an output node from the
// upstream node's annotated boundaries.
func nodeLocations(n *cst.Node) (ast.Range, ast.Location) {
	return ast.Range{n.Start.Offset, n.End.Offset},
		ast.Location{Start: normalize(n.Start), End: normalize(n.End)}
}
