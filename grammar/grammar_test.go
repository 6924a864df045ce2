package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/yamlast/cst"
	"github.com/viant/yamlast/grammar"
)

func TestParseMapping(t *testing.T) {
	root, err := grammar.Parse([]byte("a: 1\n"))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, cst.KindRoot, root.Kind)
	if !assert.Len(t, root.Children, 1) {
		return
	}
	document := root.Children[0]
	assert.Equal(t, cst.KindDocument, document.Kind)

	body := document.Child(cst.KindDocumentBody)
	if !assert.NotNil(t, body) {
		return
	}
	mapping := body.Children[0]
	assert.Equal(t, cst.KindMapping, mapping.Kind)
	if !assert.Len(t, mapping.Children, 1) {
		return
	}
	item := mapping.Children[0]
	assert.Equal(t, cst.KindMappingItem, item.Kind)

	key := item.Child(cst.KindMappingKey)
	if assert.NotNil(t, key) && assert.Len(t, key.Children, 1) {
		assert.Equal(t, cst.KindPlainScalar, key.Children[0].Kind)
		assert.Equal(t, "a", key.Children[0].Text([]byte("a: 1\n")))
	}
	value := item.Child(cst.KindMappingValue)
	if assert.NotNil(t, value) && assert.Len(t, value.Children, 1) {
		assert.Equal(t, cst.KindPlainScalar, value.Children[0].Kind)
	}
}

func TestParseSequenceAndStyles(t *testing.T) {
	src := []byte("- plain\n- \"double\"\n- 'single'\n- [1, 2]\n")
	root, err := grammar.Parse(src)
	if !assert.NoError(t, err) {
		return
	}
	body := root.Children[0].Child(cst.KindDocumentBody)
	if !assert.NotNil(t, body) {
		return
	}
	sequence := body.Children[0]
	assert.Equal(t, cst.KindSequence, sequence.Kind)
	if !assert.Len(t, sequence.Children, 4) {
		return
	}
	kinds := make([]cst.Kind, 0, 4)
	for _, item := range sequence.Children {
		assert.Equal(t, cst.KindSequenceItem, item.Kind)
		if assert.Len(t, item.Children, 1) {
			kinds = append(kinds, item.Children[0].Kind)
		}
	}
	assert.Equal(t, []cst.Kind{
		cst.KindPlainScalar,
		cst.KindDoubleQuotedScalar,
		cst.KindSingleQuotedScalar,
		cst.KindFlowSequence,
	}, kinds)
}

func TestParseAnchorHoisted(t *testing.T) {
	src := []byte("k: &a val\nref: *a\n")
	root, err := grammar.Parse(src)
	if !assert.NoError(t, err) {
		return
	}
	mapping := root.Children[0].Child(cst.KindDocumentBody).Children[0]
	if !assert.Len(t, mapping.Children, 2) {
		return
	}
	value := mapping.Children[0].Child(cst.KindMappingValue)
	if !assert.NotNil(t, value) || !assert.Len(t, value.Children, 1) {
		return
	}
	scalar := value.Children[0]
	assert.Equal(t, cst.KindPlainScalar, scalar.Kind)
	if assert.NotNil(t, scalar.Anchor) {
		assert.Equal(t, cst.KindAnchor, scalar.Anchor.Kind)
		assert.Equal(t, "&a", scalar.Anchor.Text(src))
	}

	ref := mapping.Children[1].Child(cst.KindMappingValue)
	if assert.NotNil(t, ref) && assert.Len(t, ref.Children, 1) {
		assert.Equal(t, cst.KindAlias, ref.Children[0].Kind)
	}
}

func TestParseAnchorWithoutContent(t *testing.T) {
	src := []byte("k: &a\nref: *a\n")
	root, err := grammar.Parse(src)
	if !assert.NoError(t, err) {
		return
	}
	mapping := root.Children[0].Child(cst.KindDocumentBody).Children[0]
	if !assert.Len(t, mapping.Children, 2) {
		return
	}
	value := mapping.Children[0].Child(cst.KindMappingValue)
	if !assert.NotNil(t, value) || !assert.Len(t, value.Children, 1) {
		return
	}
	scalar := value.Children[0]
	assert.Equal(t, cst.KindPlainScalar, scalar.Kind)
	assert.Equal(t, scalar.Start.Offset, scalar.End.Offset)
	if assert.NotNil(t, scalar.Anchor) {
		assert.Equal(t, "&a", scalar.Anchor.Text(src))
	}
}

func TestParseCommentsOnRoot(t *testing.T) {
	src := []byte("# leading\na: 1 # trailing\n")
	root, err := grammar.Parse(src)
	if !assert.NoError(t, err) {
		return
	}
	if !assert.Len(t, root.Comments, 2) {
		return
	}
	assert.Equal(t, "# leading", root.Comments[0].Text(src))
	assert.Equal(t, "# trailing", root.Comments[1].Text(src))
}

func TestParseBlockScalarKinds(t *testing.T) {
	src := []byte("a: |\n  x\nb: >\n  y\n")
	root, err := grammar.Parse(src)
	if !assert.NoError(t, err) {
		return
	}
	mapping := root.Children[0].Child(cst.KindDocumentBody).Children[0]
	if !assert.Len(t, mapping.Children, 2) {
		return
	}
	literal := mapping.Children[0].Child(cst.KindMappingValue).Children[0]
	folded := mapping.Children[1].Child(cst.KindMappingValue).Children[0]
	assert.Equal(t, cst.KindBlockLiteral, literal.Kind)
	assert.Equal(t, cst.KindBlockFolded, folded.Kind)
}

func TestParseMultipleDocuments(t *testing.T) {
	src := []byte("---\nfirst\n---\nsecond\n")
	root, err := grammar.Parse(src)
	if !assert.NoError(t, err) {
		return
	}
	if !assert.Len(t, root.Children, 2) {
		return
	}
	for _, document := range root.Children {
		assert.NotNil(t, document.Child(cst.KindDocumentHead))
		assert.NotNil(t, document.Child(cst.KindDocumentBody))
	}
}
