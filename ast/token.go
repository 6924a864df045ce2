package ast

// TokenType classifies a lexical token.
type TokenType string

const (
	TokenBlock        TokenType = "Block"
	TokenMarker       TokenType = "Marker"
	TokenDirective    TokenType = "Directive"
	TokenBoolean      TokenType = "Boolean"
	TokenNumeric      TokenType = "Numeric"
	TokenNull         TokenType = "Null"
	TokenIdentifier   TokenType = "Identifier"
	TokenString       TokenType = "String"
	TokenBlockLiteral TokenType = "BlockLiteral"
	TokenBlockFolded  TokenType = "BlockFolded"
	TokenPunctuator   TokenType = "Punctuator"
)

// Token is one lexical token of the source text. Value always equals the
// source slice the range covers.
type Token struct {
	Type  TokenType `json:"type"`
	Value string    `json:"value"`
	Range Range     `json:"range"`
	Loc   Location  `json:"loc"`
}

// Comment is a `#` comment. Value excludes the leading `#`; the range
// includes it.
type Comment struct {
	Type  TokenType `json:"type"`
	Value string    `json:"value"`
	Range Range     `json:"range"`
	Loc   Location  `json:"loc"`
}
