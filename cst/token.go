package cst

import "github.com/strager/cprog/diag"

// TokenType is the type of token (identifier, operator, literal, etc.).
type TokenType string

// Definition of token types
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers + literals
	IDENTIFIER   TokenType = "IDENTIFIER"   // main, foo, _bar
	INT_LITERAL  TokenType = "INT_LITERAL"  // 12345
	CHAR_LITERAL TokenType = "CHAR_LITERAL" // 'a'

	// Operators
	OP_ASGN  TokenType = "="
	OP_PLUS  TokenType = "+"
	OP_MINUS TokenType = "-"
	OP_MUL   TokenType = "*"
	OP_DIV   TokenType = "/"
	OP_MOD   TokenType = "%"
	OP_BAND  TokenType = "&"
	OP_BOR   TokenType = "|"
	OP_BXOR  TokenType = "^"
	OP_BNOT  TokenType = "~"
	OP_NOT   TokenType = "!"
	OP_PP    TokenType = "++"
	OP_MM    TokenType = "--"

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"

	// Keywords
	RETURN           TokenType = "RETURN"
	CHAR_TYPE_NAME   TokenType = "CHAR_TYPE_NAME"
	INT_16_TYPE_NAME TokenType = "INT_16_TYPE_NAME"
	INT_32_TYPE_NAME TokenType = "INT_32_TYPE_NAME"
	INT_64_TYPE_NAME TokenType = "INT_64_TYPE_NAME"
	INT_TYPE_NAME    TokenType = "INT_TYPE_NAME"
	VOID_TYPE_NAME   TokenType = "VOID_TYPE_NAME"
)

var keywords = map[string]TokenType{
	"return": RETURN,
	"char":   CHAR_TYPE_NAME,
	"int16":  INT_16_TYPE_NAME,
	"int32":  INT_32_TYPE_NAME,
	"int64":  INT_64_TYPE_NAME,
	"int":    INT_TYPE_NAME,
	"void":   VOID_TYPE_NAME,
}

// IsTypeKeyword reports whether t is one of the builtin type name keywords.
func (t TokenType) IsTypeKeyword() bool {
	switch t {
	case CHAR_TYPE_NAME, INT_16_TYPE_NAME, INT_32_TYPE_NAME, INT_64_TYPE_NAME, INT_TYPE_NAME, VOID_TYPE_NAME:
		return true
	}
	return false
}

// Token is a terminal of the concrete syntax tree.
type Token struct {
	Type TokenType
	Text string
	Pos  diag.Pos
}

// GetText returns the token text, or "" for a nil token.
func (t *Token) GetText() string {
	if t == nil {
		return ""
	}
	return t.Text
}
