/*
File    : lox/lexer/lexer.go
Package : lexer

Package lexer performs lexical analysis of lox source text, turning it
into a token sequence with source-position metadata. It is a
single-pass scanner with one character of lookahead: no token in the
returned slice is ever revisited once produced.
*/
package lexer

import (
	"strconv"

	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/token"
)

// Lexer holds scanning state over a single source string. Line starts
// at 1 and Column starts at 1; Column resets to 1 on every '\n'.
type Lexer struct {
	src     string
	start   int // start of the lexeme currently being scanned
	current int // index of the next unread byte
	line    int
	column  int // initial column (1); token positions come from curLine/curColumn

	curLine   int // running line counter as bytes are consumed
	curColumn int // running column counter as bytes are consumed

	// Errors collects lexical errors (unexpected character, unterminated
	// string). Each NextToken call (and so each Tokenize pass) returns
	// the illegal token inline and also records its error here for
	// batch reporting, mirroring the parser's error-collection style.
	Errors []*loxerr.LexError
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{
		src:       src,
		line:      1,
		column:    1,
		curLine:   1,
		curColumn: 1,
	}
}

// Tokenize scans the entire source and returns every token produced,
// in order. No EOF token is included in the slice — the sequence
// simply ends; callers that need an EOF sentinel (the CLI's `tokenize`
// sub-command) append it themselves.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok, ok := l.NextToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// NextToken scans and returns the next token. The second return value
// is false once the source is exhausted, signaling end of input; it is
// true for every token, legal or illegal — illegal tokens are returned
// inline rather than causing NextToken to stop, so a single malformed
// byte never truncates the rest of the scan (spec.md §8's totality
// invariant).
func (l *Lexer) NextToken() (token.Token, bool) {
	l.skipWhitespaceAndComments()
	if l.atEnd() {
		return token.Token{}, false
	}

	l.start = l.current
	line, column := l.curLine, l.curColumn
	c := l.advance()

	switch c {
	case '(':
		return l.make(token.LEFT_PAREN, line, column), true
	case ')':
		return l.make(token.RIGHT_PAREN, line, column), true
	case '{':
		return l.make(token.LEFT_BRACE, line, column), true
	case '}':
		return l.make(token.RIGHT_BRACE, line, column), true
	case ',':
		return l.make(token.COMMA, line, column), true
	case '.':
		return l.make(token.DOT, line, column), true
	case '-':
		return l.make(token.MINUS, line, column), true
	case '+':
		return l.make(token.PLUS, line, column), true
	case ';':
		return l.make(token.SEMICOLON, line, column), true
	case '*':
		return l.make(token.STAR, line, column), true
	case '/':
		return l.make(token.SLASH, line, column), true
	case '!':
		if l.match('=') {
			return l.make(token.BANG_EQUAL, line, column), true
		}
		return l.make(token.BANG, line, column), true
	case '=':
		if l.match('=') {
			return l.make(token.EQUAL_EQUAL, line, column), true
		}
		return l.make(token.EQUAL, line, column), true
	case '<':
		if l.match('=') {
			return l.make(token.LESS_EQUAL, line, column), true
		}
		return l.make(token.LESS, line, column), true
	case '>':
		if l.match('=') {
			return l.make(token.GREATER_EQUAL, line, column), true
		}
		return l.make(token.GREATER, line, column), true
	case '"':
		return l.scanString(line, column), true
	default:
		switch {
		case isDigit(c):
			return l.scanNumber(line, column), true
		case isAlpha(c):
			return l.scanIdentifier(line, column), true
		default:
			err := &loxerr.LexError{Line: line, Message: "Unexpected character: " + string(c)}
			l.Errors = append(l.Errors, err)
			return token.NewAt(token.UNEXPECTED_CHARACTER, string(c), nil, line, column), true
		}
	}
}

// make builds a Token of typ whose lexeme is the text scanned since
// l.start, at the given starting line/column.
func (l *Lexer) make(typ token.Type, line, column int) token.Token {
	return token.NewAt(typ, l.src[l.start:l.current], nil, line, column)
}

// skipWhitespaceAndComments advances past runs of whitespace and `//`
// line comments, which carry no token of their own.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '/':
			if l.peekNext() == '/' {
				for !l.atEnd() && l.peek() != '\n' {
					l.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// scanString consumes a string literal starting after the opening `"`.
// Embedded newlines are permitted (and tracked). An unterminated string
// reports the position of the opening quote, per spec.md §4.1.
func (l *Lexer) scanString(line, column int) token.Token {
	for !l.atEnd() && l.peek() != '"' {
		l.advance()
	}
	if l.atEnd() {
		err := &loxerr.LexError{Line: line, Message: "Unterminated string."}
		l.Errors = append(l.Errors, err)
		return token.NewAt(token.UNTERMINATED_STRING, l.src[l.start:l.current], nil, line, column)
	}
	l.advance() // consume closing '"'
	raw := l.src[l.start:l.current]
	value := raw[1 : len(raw)-1]
	return token.NewAt(token.STRING, raw, value, line, column)
}

// scanNumber consumes an integer or floating-point literal: a greedy
// run of digits, optionally followed by '.' and a further run of
// digits. The parsed float64 value is stored as the token's Literal.
func (l *Lexer) scanNumber(line, column int) token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // consume '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	text := l.src[l.start:l.current]
	value, _ := strconv.ParseFloat(text, 64)
	return token.NewAt(token.NUMBER, text, value, line, column)
}

// scanIdentifier consumes a run of letters, digits, and underscores,
// then classifies it as a keyword or a plain identifier.
func (l *Lexer) scanIdentifier(line, column int) token.Token {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := l.src[l.start:l.current]
	return token.NewAt(token.LookupIdentifier(text), text, nil, line, column)
}

// atEnd reports whether the scan has consumed the entire source.
func (l *Lexer) atEnd() bool {
	return l.current >= len(l.src)
}

// advance consumes and returns the current byte, updating line/column.
func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++
	if c == '\n' {
		l.curLine++
		l.curColumn = 1
	} else {
		l.curColumn++
	}
	return c
}

// peek returns the current unread byte without consuming it, or 0 at
// end of input.
func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.current]
}

// peekNext returns the byte after the current one without consuming
// anything, or 0 if that would be past the end of input.
func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

// match consumes the current byte and returns true if it equals
// expected; otherwise leaves the position unchanged and returns false.
func (l *Lexer) match(expected byte) bool {
	if l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
