package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	// Literals
	IDENTIFIER TokenType = iota // variable / function name
	CONSTANT                    // decimal integer literal

	// Keywords
	INT    // "int"
	VOID   // "void"
	RETURN // "return"

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Punctuation
	SEMICOLON // ;
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	IDENTIFIER: "IDENTIFIER",
	CONSTANT:   "CONSTANT",
	INT:        "INT",
	VOID:       "VOID",
	RETURN:     "RETURN",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	SEMICOLON:  "SEMICOLON",
}

// spellings holds the implied source text of every kind without a payload.
var spellings = [...]string{
	INT:       "int",
	VOID:      "void",
	RETURN:    "return",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	SEMICOLON: ";",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// HasPayload reports whether tokens of this type carry their matched text.
func (tt TokenType) HasPayload() bool {
	return tt == IDENTIFIER || tt == CONSTANT
}

// Token is a single lexical unit produced by the Tokenizer.
type Token struct {
	Type   TokenType
	Lexeme string // matched text; empty unless Type.HasPayload()
	Line   int    // 1-based source line
}

// Text returns the source text the token stands for.
func (t Token) Text() string {
	if t.Type.HasPayload() {
		return t.Lexeme
	}
	if int(t.Type) >= 0 && int(t.Type) < len(spellings) {
		return spellings[t.Type]
	}
	return ""
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Text(), t.Line)
}
