/*
File    : lox/resolver/expr.go
Package : resolver

Implements ast.ExprVisitor. Most expression kinds have no scope effect
of their own and simply recurse into their children; Variable, Assign,
This, and Super are the ones that actually consult the scope stack and
write a Depth back onto the node.
*/
package resolver

import "github.com/akashmaji946/lox/ast"

func (r *Resolver) resolveExpr(e ast.Expr) {
	if e == nil {
		return
	}
	e.Accept(r)
}

func (r *Resolver) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) { return nil, nil }

func (r *Resolver) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitGroupExpr(e *ast.GroupExpr) (interface{}, error) {
	r.resolveExpr(e.Inner)
	return nil, nil
}

func (r *Resolver) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	r.resolveLocal(e.Name.Line, e.Name.Lexeme, &e.Depth)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocalAlways(e.Name.Lexeme, &e.Depth)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, a := range e.Args {
		r.resolveExpr(a)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.GetExpr) (interface{}, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *ast.SetExpr) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *ast.ThisExpr) (interface{}, error) {
	if r.currentClass == classNone {
		r.fail(e.Keyword.Line, "Cannot use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocalAlways("this", &e.Depth)
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(e *ast.SuperExpr) (interface{}, error) {
	if r.currentClass == classNone {
		r.fail(e.Keyword.Line, "Cannot use 'super' outside of a class.")
	} else if r.currentClass != classSubclass {
		r.fail(e.Keyword.Line, "Cannot use 'super' in a class with no superclass.")
	}
	r.resolveLocalAlways("super", &e.Depth)
	return nil, nil
}
