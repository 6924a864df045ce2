package parser

import "github.com/viant/afs"

type Option func(*Parser)

// WithCache enables content-hash memoization: parsing byte-identical source
// returns the previously built Program.
func WithCache() Option {
	return func(p *Parser) {
		p.cache = newCache()
	}
}

// WithFS sets the file-system service used to resolve URLs.
func WithFS(fs afs.Service) Option {
	return func(p *Parser) {
		p.fs = fs
	}
}

// WithSourceType overrides the sourceType recorded on parsed programs.
func WithSourceType(sourceType string) Option {
	return func(p *Parser) {
		p.sourceType = sourceType
	}
}
