/*
File    : lox/token/token.go
Package : token

Package token defines the lexical categories of the lox language and the
Token value the lexer produces for each lexeme it recognizes.
*/
package token

import "fmt"

// Type identifies the lexical category of a Token. It is defined as a
// string so that token kinds are self-describing in debug output and in
// the `tokenize` CLI sub-command's uppercase-kind listing.
type Type string

// Token kind constants, grouped the way the grammar in spec.md groups them:
// single-character punctuation, one/two-character operators, literals,
// keywords, and the two illegal variants.
const (
	// Single-character tokens.
	LEFT_PAREN  Type = "LEFT_PAREN"
	RIGHT_PAREN Type = "RIGHT_PAREN"
	LEFT_BRACE  Type = "LEFT_BRACE"
	RIGHT_BRACE Type = "RIGHT_BRACE"
	COMMA       Type = "COMMA"
	DOT         Type = "DOT"
	MINUS       Type = "MINUS"
	PLUS        Type = "PLUS"
	SEMICOLON   Type = "SEMICOLON"
	SLASH       Type = "SLASH"
	STAR        Type = "STAR"

	// One or two character tokens.
	BANG          Type = "BANG"
	BANG_EQUAL    Type = "BANG_EQUAL"
	EQUAL         Type = "EQUAL"
	EQUAL_EQUAL   Type = "EQUAL_EQUAL"
	GREATER       Type = "GREATER"
	GREATER_EQUAL Type = "GREATER_EQUAL"
	LESS          Type = "LESS"
	LESS_EQUAL    Type = "LESS_EQUAL"

	// Literals.
	IDENTIFIER Type = "IDENTIFIER"
	STRING     Type = "STRING"
	NUMBER     Type = "NUMBER"

	// Keywords.
	AND    Type = "AND"
	CLASS  Type = "CLASS"
	ELSE   Type = "ELSE"
	FALSE  Type = "FALSE"
	FOR    Type = "FOR"
	FUN    Type = "FUN"
	IF     Type = "IF"
	NIL    Type = "NIL"
	OR     Type = "OR"
	PRINT  Type = "PRINT"
	RETURN Type = "RETURN"
	SUPER  Type = "SUPER"
	THIS   Type = "THIS"
	TRUE   Type = "TRUE"
	VAR    Type = "VAR"
	WHILE  Type = "WHILE"

	// Illegal token variants. The lexer still emits one of these rather
	// than silently dropping the offending bytes — see spec.md §8's
	// totality invariant.
	UNEXPECTED_CHARACTER Type = "UNEXPECTED_CHARACTER"
	UNTERMINATED_STRING  Type = "UNTERMINATED_STRING"

	// EOF marks the end of input for display purposes only (the
	// `tokenize` CLI sub-command's trailing "EOF  null" line); the
	// lexer's own token stream never contains one, see lexer.Tokenize.
	EOF Type = "EOF"
)

// Keywords maps reserved identifier spellings to their keyword Type.
// Any identifier lexeme absent from this table is an ordinary IDENTIFIER.
var Keywords = map[string]Type{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// LookupIdentifier classifies an identifier-shaped lexeme as a keyword
// Type when it matches an entry in Keywords, or IDENTIFIER otherwise.
func LookupIdentifier(ident string) Type {
	if t, ok := Keywords[ident]; ok {
		return t
	}
	return IDENTIFIER
}

// Token is a single lexical unit: its kind, the exact source text it was
// scanned from, a parsed literal value for strings and numbers, and the
// line/column at which it starts.
//
// Number literals carry their float64 value in Literal so the parser and
// interpreter never re-parse the lexeme text.
type Token struct {
	Type    Type
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

// New builds a Token with no literal value and no position metadata; it
// is mainly useful in tests that only care about kind and lexeme.
func New(typ Type, lexeme string) Token {
	return Token{Type: typ, Lexeme: lexeme}
}

// NewAt builds a fully-populated Token as the lexer does, with literal
// value and source position.
func NewAt(typ Type, lexeme string, literal interface{}, line, column int) Token {
	return Token{Type: typ, Lexeme: lexeme, Literal: literal, Line: line, Column: column}
}

// String renders the token the way the `tokenize` CLI sub-command does:
// "<KIND> <LEXEME> <LITERAL>", with LITERAL as "null" for anything other
// than strings and numbers.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.literalText())
}

// literalText renders the Literal field per the CLI contract in
// spec.md §6: raw text for strings, decimal form (always with at least
// one fractional digit) for numbers, "null" otherwise.
func (t Token) literalText() string {
	switch v := t.Literal.(type) {
	case string:
		return v
	case float64:
		return FormatNumber(v)
	default:
		return "null"
	}
}

// FormatNumber renders a float64 the way the lox CLI contract requires:
// integral values print with exactly one fractional digit (42 -> "42.0"),
// non-integral values print their natural decimal form. Shared by the
// token's own literal display and the `parse` pretty-printer; the
// interpreter's value display starts from it and drops the ".0" of
// integral values.
func FormatNumber(v float64) string {
	s := fmt.Sprintf("%g", v)
	if isIntegral(v) {
		return fmt.Sprintf("%.1f", v)
	}
	return s
}

// isIntegral reports whether v has no fractional part.
func isIntegral(v float64) bool {
	return v == float64(int64(v))
}
