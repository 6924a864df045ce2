package parser_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/yamlast/ast"
	"github.com/viant/yamlast/parser"
)

func TestParseSource(t *testing.T) {
	src := []byte("name: demo\nitems:\n  - 1\n  - 2\n")
	program, err := parser.New().ParseSource(src)
	if !assert.NoError(t, err) {
		return
	}
	if !assert.Len(t, program.Body, 1) {
		return
	}
	mapping, ok := program.Body[0].Content.(*ast.Mapping)
	if !assert.True(t, ok) {
		return
	}
	if !assert.Len(t, mapping.Pairs, 2) {
		return
	}
	assert.Equal(t, "name", mapping.Pairs[0].Key.(*ast.Scalar).StrValue)
	assert.Equal(t, "demo", mapping.Pairs[0].Value.(*ast.Scalar).Value())

	sequence, ok := mapping.Pairs[1].Value.(*ast.Sequence)
	if assert.True(t, ok) && assert.Len(t, sequence.Entries, 2) {
		assert.Equal(t, 1, sequence.Entries[0].(*ast.Scalar).Value())
		assert.Equal(t, 2, sequence.Entries[1].(*ast.Scalar).Value())
	}
	assert.NotEmpty(t, program.Tokens)
	for _, token := range program.Tokens {
		assert.Equal(t, string(src[token.Range[0]:token.Range[1]]), token.Value)
	}
}

func TestParseSourceCached(t *testing.T) {
	src := []byte("a: 1\n")
	p := parser.New(parser.WithCache())

	first, err := p.ParseSource(src)
	if !assert.NoError(t, err) {
		return
	}
	second, err := p.ParseSource(append([]byte(nil), src...))
	if !assert.NoError(t, err) {
		return
	}
	assert.Same(t, first, second)

	uncached := parser.New()
	third, err := uncached.ParseSource(src)
	if !assert.NoError(t, err) {
		return
	}
	fourth, err := uncached.ParseSource(src)
	if !assert.NoError(t, err) {
		return
	}
	assert.NotSame(t, third, fourth)
}

func TestParseSourceAnchorWithoutContent(t *testing.T) {
	program, err := parser.New().ParseSource([]byte("k: &a\nref: *a\n"))
	if !assert.NoError(t, err) {
		return
	}
	document := program.Body[0]
	anchor := document.Anchor("a")
	if !assert.NotNil(t, anchor) {
		return
	}
	assert.Equal(t, "a", anchor.Name)

	mapping := document.Content.(*ast.Mapping)
	alias, ok := mapping.Pairs[1].Value.(*ast.Alias)
	if assert.True(t, ok) {
		assert.Equal(t, "a", alias.Name)
	}

	var values []string
	for _, token := range program.Tokens {
		values = append(values, token.Value)
	}
	assert.Contains(t, values, "&")
	assert.Contains(t, values, "*")
}

func TestWithSourceType(t *testing.T) {
	program, err := parser.New(parser.WithSourceType("script")).ParseSource([]byte("a: 1\n"))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "script", program.SourceType)

	program, err = parser.New().ParseSource([]byte("a: 1\n"))
	if assert.NoError(t, err) {
		assert.Equal(t, "module", program.SourceType)
	}
}

func TestParseFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	if !assert.NoError(t, os.WriteFile(filename, []byte("key: value\n"), 0o644)) {
		return
	}
	program, err := parser.New().ParseFile(filename)
	if !assert.NoError(t, err) {
		return
	}
	mapping := program.Body[0].Content.(*ast.Mapping)
	assert.Equal(t, "value", mapping.Pairs[0].Value.(*ast.Scalar).Value())

	_, err = parser.New().ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseURL(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "doc.yaml")
	if !assert.NoError(t, os.WriteFile(filename, []byte("- one\n- two\n"), 0o644)) {
		return
	}
	program, err := parser.New().ParseURL(context.Background(), "file://"+filename)
	if !assert.NoError(t, err) {
		return
	}
	sequence, ok := program.Body[0].Content.(*ast.Sequence)
	if assert.True(t, ok) {
		assert.Len(t, sequence.Entries, 2)
	}
}
