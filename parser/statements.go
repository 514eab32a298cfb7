/*
File    : lox/parser/statements.go
Package : parser

Statement parsing: the `statement` production and everything it
dispatches to, per spec.md §4.2.
*/
package parser

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/token"
)

// statement dispatches on the leading keyword to one of the statement
// forms, falling through to a bare expression statement.
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

// printStatement parses `print expression ;`.
func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Expr: value}
}

// expressionStatement parses `expression ;`.
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExprStmt{Expr: expr}
}

// varDeclaration parses `var IDENT ( = expression )? ;`, with the
// leading `var` already consumed by the caller.
func (p *Parser) varDeclaration() ast.Stmt {
	name, ok := p.consume(token.IDENTIFIER, "Expect variable name.")
	if !ok {
		return nil
	}
	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: init}
}

// block parses the statement list between an already-consumed `{` and
// its matching `}`.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		if s, ok := p.declaration(); ok {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

// ifStatement parses `if ( cond ) then ( else stmt )?`.
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBranch}
}

// whileStatement parses `while ( cond ) body`.
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after while condition.")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

// forStatement parses the C-style `for (init; cond; incr) body` form,
// retaining it as a dedicated ast.ForStmt node (spec.md's Open
// Question (b)) rather than desugaring to a WhileStmt.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.VAR):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var incr ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		incr = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()
	return &ast.ForStmt{Init: init, Cond: cond, Incr: incr, Body: body}
}

// returnStatement parses `return expression? ;`.
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// function parses `IDENT ( params? ) block`, used for both top-level
// function declarations and method declarations inside a class body;
// kind is "function" or "method" and only affects error messages.
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name, ok := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	if !ok {
		return nil
	}
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")
	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.fail("Can't have more than 255 parameters.")
			}
			param, ok := p.consume(token.IDENTIFIER, "Expect parameter name.")
			if ok {
				params = append(params, param)
			}
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// classDeclaration parses `class IDENT ( < IDENT )? { method* }`.
func (p *Parser) classDeclaration() ast.Stmt {
	name, ok := p.consume(token.IDENTIFIER, "Expect class name.")
	if !ok {
		return nil
	}

	var superclass *ast.VariableExpr
	if p.match(token.LESS) {
		if _, ok := p.consume(token.IDENTIFIER, "Expect superclass name."); ok {
			superclass = &ast.VariableExpr{Name: p.previous()}
		}
	}

	p.consume(token.LEFT_BRACE, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		if m := p.function("method"); m != nil {
			methods = append(methods, m)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after class body.")
	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}
