/*
File    : lox/ast/expr.go
Package : ast

Package ast defines the expression and statement node types produced
by the parser, consumed by the resolver (which annotates scope depth
in place) and by the interpreter. Every node type implements the
visitor pattern rather than exposing a type switch, matching the
teacher's `parser/node.go` convention of an `Accept(Visitor)` method on
every node.
*/
package ast

import "github.com/akashmaji946/lox/token"

// Expr is implemented by every expression node. Visit* methods on the
// visitor return an arbitrary value and an error, since the same
// interface is used by both the resolver (no meaningful return value)
// and the interpreter (the evaluated Value).
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor is implemented by the resolver, the interpreter, and
// parser.Printer; each Visit* method handles exactly one Expr variant.
type ExprVisitor interface {
	VisitLiteralExpr(e *LiteralExpr) (interface{}, error)
	VisitUnaryExpr(e *UnaryExpr) (interface{}, error)
	VisitBinaryExpr(e *BinaryExpr) (interface{}, error)
	VisitLogicalExpr(e *LogicalExpr) (interface{}, error)
	VisitGroupExpr(e *GroupExpr) (interface{}, error)
	VisitVariableExpr(e *VariableExpr) (interface{}, error)
	VisitAssignExpr(e *AssignExpr) (interface{}, error)
	VisitCallExpr(e *CallExpr) (interface{}, error)
	VisitGetExpr(e *GetExpr) (interface{}, error)
	VisitSetExpr(e *SetExpr) (interface{}, error)
	VisitThisExpr(e *ThisExpr) (interface{}, error)
	VisitSuperExpr(e *SuperExpr) (interface{}, error)
}

// LiteralExpr is a constant value baked into the source text: a
// number, string, boolean, or nil.
type LiteralExpr struct {
	Value interface{} // float64, string, bool, or nil
}

// Accept implements Expr.
func (e *LiteralExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// UnaryExpr applies a prefix operator (`-` or `!`) to Right.
type UnaryExpr struct {
	Operator token.Token
	Right    Expr
}

// Accept implements Expr.
func (e *UnaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// BinaryExpr applies an arithmetic or comparison operator between Left
// and Right. Both operands are always evaluated, left before right.
type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Accept implements Expr.
func (e *BinaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// LogicalExpr implements `and`/`or` with short-circuit evaluation; it
// is kept distinct from BinaryExpr because unlike Binary, Right is not
// always evaluated.
type LogicalExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Accept implements Expr.
func (e *LogicalExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// GroupExpr is a parenthesized sub-expression, kept as its own node so
// the pretty-printer can render `(group inner)`.
type GroupExpr struct {
	Inner Expr
}

// Accept implements Expr.
func (e *GroupExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupExpr(e) }

// VariableExpr reads a variable by name. Depth is filled in by the
// resolver: nil means "look in the global environment", otherwise it
// is the number of enclosing local scopes to walk before reading.
type VariableExpr struct {
	Name  token.Token
	Depth *int
}

// Accept implements Expr.
func (e *VariableExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// AssignExpr assigns Value to the variable Name. Depth is filled in by
// the resolver exactly as for VariableExpr.
type AssignExpr struct {
	Name  token.Token
	Value Expr
	Depth *int
}

// Accept implements Expr.
func (e *AssignExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// CallExpr invokes Callee with Args, evaluated left to right. Paren is
// the closing `)` token, kept for accurate error-line reporting on
// arity mismatches.
type CallExpr struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

// Accept implements Expr.
func (e *CallExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// GetExpr reads a property (field or method) named Name off Object.
type GetExpr struct {
	Object Expr
	Name   token.Token
}

// Accept implements Expr.
func (e *GetExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGetExpr(e) }

// SetExpr assigns Value to the field named Name on Object.
type SetExpr struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

// Accept implements Expr.
func (e *SetExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSetExpr(e) }

// ThisExpr refers to the instance a method is bound to. Depth is
// filled in by the resolver just as for VariableExpr.
type ThisExpr struct {
	Keyword token.Token
	Depth   *int
}

// Accept implements Expr.
func (e *ThisExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitThisExpr(e) }

// SuperExpr looks up Method on the enclosing class's declared
// superclass. Depth locates the implicit `super` binding the resolver
// threads through an extra scope around every subclass method.
type SuperExpr struct {
	Keyword token.Token
	Method  token.Token
	Depth   *int
}

// Accept implements Expr.
func (e *SuperExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSuperExpr(e) }
