/*
File    : lox/parser/parser.go
Package : parser

Package parser implements a recursive-descent parser for lox, per the
grammar in spec.md §4.2. It consumes a token slice produced by the
lexer and produces either a single Expr (for the `parse`/`evaluate` CLI
entry points) or a []ast.Stmt (for `run`).

Like the teacher's Parser in go-mix's parser/parser.go, this parser
collects errors into a slice instead of panicking on the first one, so
that Errors()/HasErrors() can report every syntax problem found in one
pass. synchronize() implements the panic-mode recovery described in
spec.md §4.2: discard tokens until a statement boundary is reached so
parsing can continue after an error.
*/
package parser

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/token"
)

const maxArgs = 255

// Parser holds the token stream and error-collection state for one
// parse of one program.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []*loxerr.ParseError
}

// New creates a Parser over an already-tokenized source.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns every parse error collected during the most recent
// Parse/ParseExpression call.
func (p *Parser) Errors() []*loxerr.ParseError { return p.errors }

// HasErrors reports whether any parse error was collected.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Parse consumes the entire token stream and returns the program as a
// list of statements. On error it still returns whatever statements it
// managed to recover after synchronizing; callers must check
// HasErrors() before trusting the result.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s, ok := p.declaration(); ok {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// ParseExpression parses a single expression; it backs the `parse` and
// `evaluate` CLI sub-commands, which each operate on one bare
// expression rather than a full program.
func (p *Parser) ParseExpression() ast.Expr {
	return p.expression()
}

// declaration parses one top-level-or-block declaration, dispatching
// on the leading keyword. The bool result is false when a syntax error
// forced a synchronize(); the caller should skip the (possibly nil)
// statement in that case.
func (p *Parser) declaration() (ast.Stmt, bool) {
	mark := len(p.errors)
	var stmt ast.Stmt
	switch {
	case p.match(token.CLASS):
		stmt = p.classDeclaration()
	case p.match(token.FUN):
		stmt = p.function("function")
	case p.match(token.VAR):
		stmt = p.varDeclaration()
	default:
		stmt = p.statement()
	}
	if len(p.errors) > mark {
		p.synchronize()
		return nil, false
	}
	return stmt, true
}

// synchronize discards tokens until it finds a `;` (consuming it) or a
// token that plausibly begins the next statement, per spec.md §4.2.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// --- token-stream primitives ---

// atEnd reports whether every token has been consumed.
func (p *Parser) atEnd() bool { return p.current >= len(p.tokens) }

// peek returns the current token without consuming it.
func (p *Parser) peek() token.Token {
	if p.atEnd() {
		return token.Token{Type: tokenEOFSentinel}
	}
	return p.tokens[p.current]
}

// tokenEOFSentinel is used internally when peek() runs past the end of
// the token slice; it never matches a real grammar production.
const tokenEOFSentinel token.Type = "__EOF__"

// previous returns the most recently consumed token.
func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

// check reports whether the current token has the given type, without
// consuming it.
func (p *Parser) check(t token.Type) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

// match consumes and returns true if the current token is any of the
// given types; otherwise it leaves the position unchanged.
func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has type t; otherwise
// it records a parse error (at the current token) and returns the zero
// Token with ok=false.
func (p *Parser) consume(t token.Type, message string) (token.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.fail(message)
	return token.Token{}, false
}

// fail records a parse error positioned at the current token (or, at
// end of input, as an unexpected-EOF error carrying the previous
// token's line).
func (p *Parser) fail(message string) {
	if p.atEnd() {
		line := 0
		if p.current > 0 {
			line = p.previous().Line
		}
		p.errors = append(p.errors, &loxerr.ParseError{Line: line, Message: "Unexpected end of input. " + message})
		return
	}
	tok := p.peek()
	p.errors = append(p.errors, &loxerr.ParseError{Line: tok.Line, Lexeme: tok.Lexeme, Message: message})
}
