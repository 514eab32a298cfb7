package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lox/token"
)

func kinds(tokens []token.Token) []token.Type {
	out := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestTokenizePunctuationAndOperators(t *testing.T) {
	lx := New(`(){},.-+;*/ ! != = == < <= > >=`)
	tokens := lx.Tokenize()
	assert.Empty(t, lx.Errors)
	assert.Equal(t, []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
		token.STAR, token.SLASH,
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
	}, kinds(tokens))
}

func TestTokenizeKeywordsVsIdentifiers(t *testing.T) {
	lx := New(`class fun var counter if else printMe`)
	tokens := lx.Tokenize()
	assert.Equal(t, []token.Type{
		token.CLASS, token.FUN, token.VAR, token.IDENTIFIER,
		token.IF, token.ELSE, token.IDENTIFIER,
	}, kinds(tokens))
	assert.Equal(t, "counter", tokens[3].Lexeme)
}

func TestTokenizeNumberLiteral(t *testing.T) {
	lx := New(`123 45.67`)
	tokens := lx.Tokenize()
	assert.Len(t, tokens, 2)
	assert.Equal(t, float64(123), tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
}

func TestTokenizeStringLiteral(t *testing.T) {
	lx := New(`"hello world"`)
	tokens := lx.Tokenize()
	assert.Len(t, tokens, 1)
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestTokenizeSkipsCommentsAndWhitespace(t *testing.T) {
	lx := New("// a comment\n  var x = 1; // trailing\n")
	tokens := lx.Tokenize()
	assert.Equal(t, []token.Type{token.VAR, token.IDENTIFIER, token.EQUAL, token.NUMBER, token.SEMICOLON}, kinds(tokens))
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	lx := New(`var x = @;`)
	tokens := lx.Tokenize()
	require := assert.New(t)
	require.Len(lx.Errors, 1)
	require.Contains(lx.Errors[0].Error(), "Unexpected character")
	found := false
	for _, tok := range tokens {
		if tok.Type == token.UNEXPECTED_CHARACTER {
			found = true
		}
	}
	require.True(found, "illegal token must still appear in the stream")
}

func TestTokenizeUnterminatedString(t *testing.T) {
	lx := New(`"never closed`)
	tokens := lx.Tokenize()
	assert.Len(t, lx.Errors, 1)
	assert.Contains(t, lx.Errors[0].Error(), "Unterminated string")
	assert.Equal(t, token.UNTERMINATED_STRING, tokens[0].Type)
}

func TestTokenizeLineAndColumnTracking(t *testing.T) {
	lx := New("var x\n= 1;")
	tokens := lx.Tokenize()
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[2].Line) // the '=' is on line 2
}
