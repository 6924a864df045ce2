// Package grammar adapts the tree-sitter YAML grammar engine to the cst
// contract the converter consumes.
package grammar

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/yaml"
	"github.com/viant/yamlast/cst"
)

// Parse parses YAML source text and returns the reshaped concrete syntax
// tree. The grammar engine is assumed to reject malformed input; this
// package only reshapes what it emits.
func Parse(src []byte) (*cst.Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(yaml.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return adapt(tree.RootNode(), src), nil
}
