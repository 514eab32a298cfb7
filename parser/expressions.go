/*
File    : lox/parser/expressions.go
Package : parser

Expression parsing, following the precedence chain from spec.md §4.2,
low to high: assignment, logic_or, logic_and, equality, comparison,
term, factor, unary, call, primary.
*/
package parser

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/token"
)

// expression is the entry point of the precedence chain.
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses `target = value` (right-associative) or falls
// through to logic_or. The left-hand side is parsed as an ordinary
// expression first and only reinterpreted as an assignment target
// (Variable or Get) once `=` is seen; anything else is a parse error
// reported at the `=` token, per spec.md §4.2's binding rules.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errors = append(p.errors, &loxerr.ParseError{Line: equals.Line, Lexeme: equals.Lexeme, Message: "Invalid assignment target."})
		}
	}
	return expr
}

// or parses left-associative `and`-chains joined by `or`.
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// and parses left-associative equality-chains joined by `and`.
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// equality parses left-associative `==`/`!=` chains.
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.EQUAL_EQUAL, token.BANG_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// comparison parses left-associative `<`, `<=`, `>`, `>=` chains.
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// term parses left-associative `+`/`-` chains.
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.PLUS, token.MINUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// factor parses left-associative `*`/`/` chains.
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.STAR, token.SLASH) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// unary parses a prefix `!`/`-` applied to another unary, or falls
// through to call.
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Operator: op, Right: right}
	}
	return p.call()
}

// call parses a primary expression followed by any number of call
// `(...)` or property `.name` suffixes, left to right.
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name, ok := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			if !ok {
				return expr
			}
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

// finishCall parses the comma-separated argument list of a call whose
// opening `(` has already been consumed, enforcing the 255-argument
// limit from spec.md §4.2.
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.fail("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, _ := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

// primary parses the leaves of the expression grammar: literals,
// `this`, `super.method`, identifiers, and parenthesized groups.
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.LiteralExpr{Value: false}
	case p.match(token.TRUE):
		return &ast.LiteralExpr{Value: true}
	case p.match(token.NIL):
		return &ast.LiteralExpr{Value: nil}
	case p.match(token.NUMBER, token.STRING):
		return &ast.LiteralExpr{Value: p.previous().Literal}
	case p.match(token.SUPER):
		keyword := p.previous()
		if _, ok := p.consume(token.DOT, "Expect '.' after 'super'."); !ok {
			return &ast.SuperExpr{Keyword: keyword}
		}
		method, _ := p.consume(token.IDENTIFIER, "Expect superclass method name.")
		return &ast.SuperExpr{Keyword: keyword, Method: method}
	case p.match(token.THIS):
		return &ast.ThisExpr{Keyword: p.previous()}
	case p.match(token.IDENTIFIER):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		inner := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.GroupExpr{Inner: inner}
	default:
		p.fail("Expect expression.")
		return &ast.LiteralExpr{Value: nil}
	}
}
