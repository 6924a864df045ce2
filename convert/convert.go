// Package convert turns an upstream concrete syntax tree plus its source
// text into a linear, position-complete syntax tree with a flat sorted token
// stream. It re-derives every lexical token in two phases: tokens known from
// the walk are emitted inline, then a single left-to-right scan over the
// source (with known token and comment ranges blanked to whitespace) emits
// the remaining structural punctuators.
package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/yamlast/ast"
	"github.com/viant/yamlast/cst"
)

// Convert builds the Program for the given source text and upstream root
// tree. The conversion is a pure function of its inputs: converting the same
// pair twice yields structurally identical trees and token streams.
func Convert(src []byte, root *cst.Node) (*ast.Program, error) {
	if root.Kind != cst.KindRoot {
		return nil, fmt.Errorf("unsupported node kind: %s", root.Kind)
	}
	c := &converter{
		src:     src,
		working: append([]byte(nil), src...),
		locator: newLocator(src),
	}

	program := &ast.Program{
		Body:       []*ast.Document{},
		Comments:   []*ast.Comment{},
		Tokens:     []*ast.Token{},
		SourceType: "module",
	}
	program.Type = ast.TypeProgram
	program.Range, program.Loc = nodeLocations(root)

	// comments first: their ranges must be invisible to the token scan
	for _, comment := range root.Comments {
		text := comment.Text(src)
		rng, loc := nodeLocations(comment)
		program.Comments = append(program.Comments, &ast.Comment{
			Type:  ast.TokenBlock,
			Value: strings.TrimPrefix(text, "#"),
			Range: rng,
			Loc:   loc,
		})
		c.blank(rng)
	}

	for _, child := range root.Children {
		if child.Kind != cst.KindDocument {
			return nil, fmt.Errorf("unsupported node kind: %s", child.Kind)
		}
		document, err := c.document(child, program)
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, document)
	}

	c.scanPunctuators()
	sort.SliceStable(c.tokens, func(i, j int) bool {
		return c.tokens[i].Range[0] < c.tokens[j].Range[0]
	})
	if c.tokens != nil {
		program.Tokens = c.tokens
	}
	return program, nil
}

// converter threads the shared token buffer and the blanked working copy of
// the source through the recursive walk.
type converter struct {
	src     []byte
	working []byte
	locator *locator
	tokens  []*ast.Token
}

// addToken emits a phase-1 token for [start, end) and blanks its range in
// the working copy so the phase-2 scan never revisits it.
func (c *converter) addToken(tokenType ast.TokenType, start, end int) *ast.Token {
	rng, loc := c.locator.locations(start, end)
	token := &ast.Token{
		Type:  tokenType,
		Value: string(c.src[start:end]),
		Range: rng,
		Loc:   loc,
	}
	c.tokens = append(c.tokens, token)
	c.blank(rng)
	return token
}

// blank rewrites a range of the working copy to spaces, preserving newlines
// so the scan's line accounting stays intact.
func (c *converter) blank(r ast.Range) {
	for i := r[0]; i < r[1] && i < len(c.working); i++ {
		if c.working[i] != '\n' {
			c.working[i] = ' '
		}
	}
}

// scanPunctuators is the phase-2 gap fill: every structural character left
// in the working copy becomes a single-character Punctuator; any other
// residue is skipped.
func (c *converter) scanPunctuators() {
	line, column := 1, 0
	for i := 0; i < len(c.working); i++ {
		b := c.working[i]
		if b == '\n' {
			line++
			column = 0
			continue
		}
		switch b {
		case ':', '-', ',', '{', '}', '[', ']', '?':
			c.tokens = append(c.tokens, &ast.Token{
				Type:  ast.TokenPunctuator,
				Value: string(b),
				Range: ast.Range{i, i + 1},
				Loc: ast.Location{
					Start: ast.Position{Line: line, Column: column},
					End:   ast.Position{Line: line, Column: column + 1},
				},
			})
		}
		column++
	}
}
