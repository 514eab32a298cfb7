/*
File    : lox/ast/stmt.go
Package : ast
*/
package ast

import "github.com/akashmaji946/lox/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	Accept(v StmtVisitor) (interface{}, error)
}

// StmtVisitor is implemented once by the resolver and once by the
// interpreter; each Visit* method handles exactly one Stmt variant.
type StmtVisitor interface {
	VisitExprStmt(s *ExprStmt) (interface{}, error)
	VisitPrintStmt(s *PrintStmt) (interface{}, error)
	VisitVarStmt(s *VarStmt) (interface{}, error)
	VisitBlockStmt(s *BlockStmt) (interface{}, error)
	VisitIfStmt(s *IfStmt) (interface{}, error)
	VisitWhileStmt(s *WhileStmt) (interface{}, error)
	VisitForStmt(s *ForStmt) (interface{}, error)
	VisitFunctionStmt(s *FunctionStmt) (interface{}, error)
	VisitReturnStmt(s *ReturnStmt) (interface{}, error)
	VisitClassStmt(s *ClassStmt) (interface{}, error)
}

// ExprStmt evaluates Expr for its side effects and discards the value.
// The `evaluate` CLI sub-command does not use it: it parses a bare
// expression and prints that expression's value.
type ExprStmt struct {
	Expr Expr
}

// Accept implements Stmt.
func (s *ExprStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitExprStmt(s) }

// PrintStmt evaluates Expr and writes its display form followed by a
// newline to the interpreter's configured output.
type PrintStmt struct {
	Expr Expr
}

// Accept implements Stmt.
func (s *PrintStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitPrintStmt(s) }

// VarStmt declares a variable named Name, optionally initialized.
// A nil Initializer binds the variable to nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

// Accept implements Stmt.
func (s *VarStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	Statements []Stmt
}

// Accept implements Stmt.
func (s *BlockStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitBlockStmt(s) }

// IfStmt executes Then when Cond is truthy, otherwise Else if present.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if there is no else branch
}

// Accept implements Stmt.
func (s *IfStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitIfStmt(s) }

// WhileStmt repeatedly executes Body while Cond is truthy.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// Accept implements Stmt.
func (s *WhileStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitWhileStmt(s) }

// ForStmt is kept as its own node rather than desugared to WhileStmt
// (spec.md's Open Question (b)), so that the resolver can open exactly
// one scope spanning Init, Cond, Body, and Incr. Any of Init, Cond, or
// Incr may be nil.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Incr Expr
	Body Stmt
}

// Accept implements Stmt.
func (s *ForStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitForStmt(s) }

// FunctionStmt declares a named function, or a class method parsed by
// the same grammar rule (Name is then the method's name).
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// Accept implements Stmt.
func (s *FunctionStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds the enclosing function call, carrying Value (nil
// for a bare `return;`).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil for a bare return
}

// Accept implements Stmt.
func (s *ReturnStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitReturnStmt(s) }

// ClassStmt declares a class named Name with an optional Superclass
// (referenced by a VariableExpr so the resolver/interpreter can look
// it up like any other variable) and a list of method declarations.
type ClassStmt struct {
	Name       token.Token
	Superclass *VariableExpr // nil if there is no superclass
	Methods    []*FunctionStmt
}

// Accept implements Stmt.
func (s *ClassStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitClassStmt(s) }
