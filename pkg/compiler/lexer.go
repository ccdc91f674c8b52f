package compiler

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// keywords maps source text to its keyword TokenType. A word that is not
// listed here is an IDENTIFIER.
var keywords = map[string]TokenType{
	"int":    INT,
	"void":   VOID,
	"return": RETURN,
}

// punctuation maps single-character punctuation to its TokenType.
var punctuation = map[string]TokenType{
	"(": LPAREN,
	")": RPAREN,
	"{": LBRACE,
	"}": RBRACE,
	";": SEMICOLON,
}

// Rule names in rules.
const (
	ruleWord       = "Word"
	ruleConstant   = "Constant"
	rulePunct      = "Punct"
	ruleWhitespace = "Whitespace"
)

// rules is tried in order at every position and the first match wins.
// Alphanumeric rules end in \b so that "12ab" is rejected as a whole
// instead of splitting into a constant and an identifier.
var rules = []lexer.SimpleRule{
	{Name: ruleWord, Pattern: `[A-Za-z_][A-Za-z0-9_]*\b`},
	{Name: ruleConstant, Pattern: `[0-9]+\b`},
	{Name: rulePunct, Pattern: `[(){};]`},
	{Name: ruleWhitespace, Pattern: `[\s\v\x{85}\p{Z}]+`},
}

// LexError reports text that matches no rule.
type LexError struct {
	Remainder string // unconsumed input from the failure point on
	Line      int
	Column    int
	Err       error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character sequence on line %d: %s", e.Line, e.Remainder)
}

func (e *LexError) Unwrap() error { return e.Err }

// Tokenizer converts source text into tokens. It holds no per-call state,
// so one Tokenizer may be shared by concurrent callers.
type Tokenizer struct {
	def   *lexer.StatefulDefinition
	names map[lexer.TokenType]string
}

// NewTokenizer builds a Tokenizer over the fixed rule list.
func NewTokenizer() *Tokenizer {
	def := lexer.MustSimple(rules)
	names := make(map[lexer.TokenType]string)
	for name, tt := range def.Symbols() {
		names[tt] = name
	}
	return &Tokenizer{def: def, names: names}
}

// Tokenize scans src and returns every token in source order. On failure
// it returns the tokens scanned before the failure point and a *LexError.
func (t *Tokenizer) Tokenize(src string) ([]Token, error) {
	lex, err := t.def.LexString("", src)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	consumed := 0
	for {
		tok, err := lex.Next()
		if err != nil {
			return tokens, newLexError(src, consumed, err)
		}
		if tok.Type == lexer.EOF {
			return tokens, nil
		}
		consumed = tok.Pos.Offset + len(tok.Value)

		switch t.names[tok.Type] {
		case ruleWord:
			tokens = append(tokens, classifyWord(tok.Value, tok.Pos.Line))
		case ruleConstant:
			tokens = append(tokens, Token{Type: CONSTANT, Lexeme: tok.Value, Line: tok.Pos.Line})
		case rulePunct:
			tokens = append(tokens, Token{Type: punctuation[tok.Value], Line: tok.Pos.Line})
		}
	}
}

// classifyWord resolves a scanned word to a keyword or an identifier.
func classifyWord(word string, line int) Token {
	if kw, ok := keywords[word]; ok {
		return Token{Type: kw, Line: line}
	}
	return Token{Type: IDENTIFIER, Lexeme: word, Line: line}
}

func newLexError(src string, offset int, err error) *LexError {
	before := src[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return &LexError{
		Remainder: strings.TrimRightFunc(src[offset:], unicode.IsSpace),
		Line:      strings.Count(before, "\n") + 1,
		Column:    utf8.RuneCountInString(before[lineStart:]) + 1,
		Err:       err,
	}
}

var defaultTokenizer = NewTokenizer()

// Lex tokenises src with a shared Tokenizer.
func Lex(src string) ([]Token, error) {
	return defaultTokenizer.Tokenize(src)
}
