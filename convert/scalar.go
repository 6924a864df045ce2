package convert

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/viant/yamlast/ast"
	"github.com/viant/yamlast/cst"
)

// Core-schema lexical forms for plain scalars. Token classification and
// default value resolution both run against these, but classification is
// computed before any tag override is considered.
var (
	octalPattern    = regexp.MustCompile(`^0o[0-7]+$`)
	decimalPattern  = regexp.MustCompile(`^[-+]?[0-9]+$`)
	hexPattern      = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
	infNanPattern   = regexp.MustCompile(`^[-+]?\.(?i:inf|nan)$`)
	exponentPattern = regexp.MustCompile(`^[-+]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)[eE][-+]?[0-9]+$`)
	floatPattern    = regexp.MustCompile(`^[-+]?(?:[0-9]+\.[0-9]*|\.[0-9]+)$`)
	unsignedPattern = regexp.MustCompile(`^(?:0|[1-9][0-9]*)$`)
)

func (c *converter) scalar(n *cst.Node, parent ast.Node, document *ast.Document) (*ast.Scalar, error) {
	text := n.Text(c.src)
	scalar := &ast.Scalar{}
	scalar.Type = ast.TypeScalar
	scalar.Range, scalar.Loc = nodeLocations(n)
	scalar.SetParent(parent)
	c.convertProperties(n, scalar, &scalar.BaseNode, &scalar.Anchor, &scalar.Tag, document)

	switch n.Kind {
	case cst.KindPlainScalar:
		scalar.Style = ast.StylePlain
		scalar.StrValue = text
		// a zero-width scalar carries only its anchor/tag, no primary token
		if n.End.Offset > n.Start.Offset {
			c.addToken(classifyPlain(text), n.Start.Offset, n.End.Offset)
		}
	case cst.KindDoubleQuotedScalar:
		scalar.Style = ast.StyleDoubleQuoted
		scalar.StrValue = decodeQuoted(text)
		c.addToken(ast.TokenString, n.Start.Offset, n.End.Offset)
	case cst.KindSingleQuotedScalar:
		scalar.Style = ast.StyleSingleQuoted
		scalar.StrValue = decodeQuoted(text)
		c.addToken(ast.TokenString, n.Start.Offset, n.End.Offset)
	case cst.KindBlockLiteral, cst.KindBlockFolded:
		c.blockScalar(n, scalar, text)
	}

	raw := text
	scalar.SetResolver(func() interface{} { return resolveValue(scalar, raw) })
	return scalar, nil
}

// blockScalar splits a literal/folded scalar into its header punctuator (the
// `|`/`>` plus chomping/indent modifiers) and a body token, and records the
// header's indicators on the node.
func (c *converter) blockScalar(n *cst.Node, scalar *ast.Scalar, text string) {
	bodyType := ast.TokenBlockLiteral
	sigil := byte('|')
	scalar.Style = ast.StyleLiteral
	if n.Kind == cst.KindBlockFolded {
		bodyType = ast.TokenBlockFolded
		sigil = '>'
		scalar.Style = ast.StyleFolded
	}

	start := n.Start.Offset
	if len(text) == 0 || text[0] != sigil {
		// header-less block scalar text from the engine: whole-range fallback
		scalar.StrValue = text
		if n.End.Offset > start {
			c.addToken(bodyType, start, n.End.Offset)
		}
		return
	}
	scalar.StrValue = decodeBlock(text)

	header := 1
headerLoop:
	for header < len(text) {
		switch b := text[header]; {
		case b == '+' || b == '-':
			scalar.Chomping = string(b)
		case b >= '0' && b <= '9':
			scalar.Indent = scalar.Indent*10 + int(b-'0')
		default:
			break headerLoop
		}
		header++
	}
	c.addToken(ast.TokenPunctuator, start, start+header)

	body := strings.IndexByte(text, '\n')
	if body < 0 {
		return
	}
	for body < len(text) && (text[body] == ' ' || text[body] == '\t' || text[body] == '\n' || text[body] == '\r') {
		body++
	}
	end := len(text)
	for end > body && (text[end-1] == '\n' || text[end-1] == '\r') {
		end--
	}
	if end > body {
		c.addToken(bodyType, start+body, start+end)
	}
}

// classifyPlain derives the token type of a plain scalar from its literal
// text alone. An explicit tag never changes the token type, only the value.
func classifyPlain(text string) ast.TokenType {
	switch {
	case isBooleanLiteral(text):
		return ast.TokenBoolean
	case isNullLiteral(text):
		return ast.TokenNull
	case isNumeric(text):
		return ast.TokenNumeric
	}
	return ast.TokenIdentifier
}

func isBooleanLiteral(text string) bool {
	switch text {
	case "true", "True", "TRUE", "false", "False", "FALSE":
		return true
	}
	return false
}

func booleanValue(text string) bool {
	switch text {
	case "true", "True", "TRUE":
		return true
	}
	return false
}

func isNullLiteral(text string) bool {
	switch text {
	case "null", "Null", "NULL", "~":
		return true
	}
	return false
}

func isNumeric(text string) bool {
	return octalPattern.MatchString(text) ||
		decimalPattern.MatchString(text) ||
		hexPattern.MatchString(text) ||
		infNanPattern.MatchString(text) ||
		exponentPattern.MatchString(text) ||
		floatPattern.MatchString(text)
}

// resolveValue computes the typed value of a scalar under core-schema rules
// or an explicit tag override. Every path has a defined fallback; resolution
// never fails.
func resolveValue(s *ast.Scalar, raw string) interface{} {
	if s.Tag != nil {
		return resolveTagged(s.Tag, s.StrValue, raw)
	}
	if s.Style == ast.StylePlain {
		return resolvePlain(s.StrValue)
	}
	// quoting and block styles force string
	return s.StrValue
}

func resolvePlain(text string) interface{} {
	switch {
	case isBooleanLiteral(text):
		return booleanValue(text)
	case isNullLiteral(text):
		return nil
	case isNumeric(text):
		value, err := parseScalar(text)
		if err != nil || isFalsy(value) {
			return text
		}
		return value
	}
	return text
}

// resolveTagged re-runs resolution against an explicit tag. Core-schema tags
// that match their lexical form resolve directly; everything else delegates
// to the full value parser with the tag applied.
func resolveTagged(tag *ast.Tag, text, raw string) interface{} {
	switch tag.Tag {
	case "tag:yaml.org,2002:str":
		return text
	case "tag:yaml.org,2002:int":
		if unsignedPattern.MatchString(text) {
			if value, err := strconv.Atoi(text); err == nil {
				return value
			}
		}
	case "tag:yaml.org,2002:bool":
		if isBooleanLiteral(text) {
			return booleanValue(text)
		}
	case "tag:yaml.org,2002:null":
		if text == "" || isNullLiteral(text) {
			return nil
		}
	}
	value, err := parseWithTag(tag.Raw, raw)
	if err != nil {
		return raw
	}
	return value
}

// parseWithTag parses a synthetic one-line document applying the explicit
// tag to the node's original source text. This is the delegation boundary to
// the full value parser.
func parseWithTag(tagText, sourceText string) (interface{}, error) {
	var value interface{}
	if err := yaml.Unmarshal([]byte(tagText+" "+sourceText), &value); err != nil {
		return nil, err
	}
	return value, nil
}

func parseScalar(text string) (interface{}, error) {
	var value interface{}
	if err := yaml.Unmarshal([]byte(text), &value); err != nil {
		return nil, err
	}
	return value, nil
}

func isFalsy(value interface{}) bool {
	switch actual := value.(type) {
	case nil:
		return true
	case bool:
		return !actual
	case string:
		return actual == ""
	case int:
		return actual == 0
	case int64:
		return actual == 0
	case uint64:
		return actual == 0
	case float64:
		return actual == 0
	}
	return false
}

// decodeQuoted resolves a quoted scalar's escape sequences by handing the
// raw lexical text to the value parser; quoting already forces string type.
func decodeQuoted(text string) string {
	var value string
	if err := yaml.Unmarshal([]byte(text), &value); err != nil {
		if len(text) >= 2 {
			return text[1 : len(text)-1]
		}
		return text
	}
	return value
}

// decodeBlock applies chomping, folding and indentation stripping to a block
// scalar by parsing its raw text (header included) as a standalone document.
func decodeBlock(text string) string {
	var value string
	if err := yaml.Unmarshal([]byte(text), &value); err != nil {
		return text
	}
	return value
}
