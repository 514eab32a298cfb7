/*
File    : lox/resolver/stmt.go
Package : resolver

Implements ast.StmtVisitor: the per-statement scope effects described
in spec.md §4.3. The resolver's Visit* methods never return a
meaningful value — the first result is always nil — since their only
job is to mutate scope state and annotate nodes in place.
*/
package resolver

import "github.com/akashmaji946/lox/ast"

func (r *Resolver) resolveStmt(s ast.Stmt) {
	if s == nil {
		return
	}
	s.Accept(r)
}

func (r *Resolver) VisitExprStmt(s *ast.ExprStmt) (interface{}, error) {
	r.resolveExpr(s.Expr)
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) (interface{}, error) {
	r.resolveExpr(s.Expr)
	return nil, nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) (interface{}, error) {
	r.declare(s.Name.Line, s.Name.Lexeme)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) (interface{}, error) {
	r.beginScope()
	for _, stmt := range s.Statements {
		r.resolveStmt(stmt)
	}
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) (interface{}, error) {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) (interface{}, error) {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Body)
	return nil, nil
}

// VisitForStmt opens exactly one scope spanning Init, Cond, Body, and
// Incr, in that evaluation order, per spec.md §4.3, so that a `var`
// initializer is scoped to the loop rather than leaking out.
func (r *Resolver) VisitForStmt(s *ast.ForStmt) (interface{}, error) {
	r.beginScope()
	if s.Init != nil {
		r.resolveStmt(s.Init)
	}
	if s.Cond != nil {
		r.resolveExpr(s.Cond)
	}
	r.resolveStmt(s.Body)
	if s.Incr != nil {
		r.resolveExpr(s.Incr)
	}
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) (interface{}, error) {
	r.declare(s.Name.Line, s.Name.Lexeme)
	r.define(s.Name.Lexeme)
	r.resolveFunctionBody(s, funcFunction)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) (interface{}, error) {
	if r.currentFunction == funcNone {
		r.fail(s.Keyword.Line, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == funcInitializer {
			r.fail(s.Keyword.Line, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil, nil
}

// VisitClassStmt implements the scope nesting spec.md §4.3 requires:
// declare+define the class name, resolve the superclass reference (if
// any) as an ordinary variable, open a scope binding `super` when
// there is a superclass, open a further scope binding `this`, resolve
// each method with the right function kind, then close everything in
// reverse order.
func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) (interface{}, error) {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name.Line, s.Name.Lexeme)
	r.define(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.fail(s.Superclass.Name.Line, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := funcMethod
		if method.Name.Lexeme == "init" {
			kind = funcInitializer
		}
		r.resolveFunctionBody(method, kind)
	}
	r.endScope()

	return nil, nil
}
