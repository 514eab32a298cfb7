/*
File    : lox/parser/printer.go
Package : parser

Printer renders an expression in the canonical parenthesized form
required by the `parse` CLI sub-command (spec.md §6): "(op operand)"
for unary, "(op left right)" for binary, "(group inner)" for grouping,
and the literal's own display form otherwise.
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/token"
)

// Printer implements ast.ExprVisitor to produce the canonical
// pretty-print string for a single expression tree.
type Printer struct{}

// NewPrinter creates a Printer. It carries no state of its own.
func NewPrinter() *Printer { return &Printer{} }

// Print renders expr as its canonical parenthesized string.
func (pr *Printer) Print(expr ast.Expr) string {
	result, _ := expr.Accept(pr)
	return result.(string)
}

func (pr *Printer) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	return literalText(e.Value), nil
}

func (pr *Printer) VisitGroupExpr(e *ast.GroupExpr) (interface{}, error) {
	return pr.parenthesize("group", e.Inner), nil
}

func (pr *Printer) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	return pr.parenthesize(e.Operator.Lexeme, e.Right), nil
}

func (pr *Printer) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	return pr.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (pr *Printer) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	return pr.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (pr *Printer) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (pr *Printer) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	return pr.parenthesize("= "+e.Name.Lexeme, e.Value), nil
}

func (pr *Printer) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	return pr.parenthesize("call", append([]ast.Expr{e.Callee}, e.Args...)...), nil
}

func (pr *Printer) VisitGetExpr(e *ast.GetExpr) (interface{}, error) {
	return pr.parenthesize("."+e.Name.Lexeme, e.Object), nil
}

func (pr *Printer) VisitSetExpr(e *ast.SetExpr) (interface{}, error) {
	return pr.parenthesize("="+e.Name.Lexeme, e.Object, e.Value), nil
}

func (pr *Printer) VisitThisExpr(e *ast.ThisExpr) (interface{}, error) {
	return "this", nil
}

func (pr *Printer) VisitSuperExpr(e *ast.SuperExpr) (interface{}, error) {
	return "super." + e.Method.Lexeme, nil
}

// parenthesize joins name and the printed form of each expr inside
// parentheses: "(name expr1 expr2 ...)".
func (pr *Printer) parenthesize(name string, exprs ...ast.Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		result, _ := e.Accept(pr)
		b.WriteString(result.(string))
	}
	b.WriteByte(')')
	return b.String()
}

// literalText renders a literal value the way the pretty-printer
// requires: numbers always show at least one fractional digit, strings
// print raw, nil prints "nil".
func literalText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return fmt.Sprintf("%t", val)
	case string:
		return val
	case float64:
		return token.FormatNumber(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
