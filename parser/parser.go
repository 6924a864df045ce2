// Package parser is the front door: it runs the grammar engine over source
// text and converts the resulting tree into the linear syntax tree.
package parser

import (
	"context"
	"fmt"
	"os"

	"github.com/viant/afs"
	"github.com/viant/yamlast/ast"
	"github.com/viant/yamlast/convert"
	"github.com/viant/yamlast/grammar"
)

// Parser parses YAML source into a Program.
type Parser struct {
	fs         afs.Service
	cache      *cache
	sourceType string
}

// New creates a new Parser with the provided options.
func New(options ...Option) *Parser {
	parser := &Parser{fs: afs.New()}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// ParseSource parses YAML source from a byte slice.
func (p *Parser) ParseSource(src []byte) (*ast.Program, error) {
	if p.cache != nil {
		if program, ok := p.cache.lookup(src); ok {
			return program, nil
		}
	}
	root, err := grammar.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	program, err := convert.Convert(src, root)
	if err != nil {
		return nil, err
	}
	if p.sourceType != "" {
		program.SourceType = p.sourceType
	}
	if p.cache != nil {
		p.cache.store(src, program)
	}
	return program, nil
}

// ParseFile parses a YAML source file.
func (p *Parser) ParseFile(filename string) (*ast.Program, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return p.ParseSource(src)
}

// ParseURL downloads the source from any afs-addressable location (file,
// s3, gs, mem, ...) and parses it.
func (p *Parser) ParseURL(ctx context.Context, URL string) (*ast.Program, error) {
	src, err := p.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", URL, err)
	}
	return p.ParseSource(src)
}
