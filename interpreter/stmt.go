/*
File    : lox/interpreter/stmt.go
Package : interpreter

Implements ast.StmtVisitor: the per-statement execution rules of
spec.md §4.4. Every method's first return value is unused by
Interpret/executeBlock — it exists only because ast.StmtVisitor gives
every implementation, this one and the resolver's, the same
(interface{}, error) shape.
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/loxerr"
)

func (interp *Interpreter) VisitExprStmt(s *ast.ExprStmt) (interface{}, error) {
	_, err := interp.evaluate(s.Expr)
	return nil, err
}

func (interp *Interpreter) VisitPrintStmt(s *ast.PrintStmt) (interface{}, error) {
	v, err := interp.evaluate(s.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(interp.Out, stringify(v))
	return nil, nil
}

func (interp *Interpreter) VisitVarStmt(s *ast.VarStmt) (interface{}, error) {
	var value interface{}
	if s.Initializer != nil {
		v, err := interp.evaluate(s.Initializer)
		if err != nil {
			return nil, err
		}
		value = v
	}
	interp.env.Define(s.Name.Lexeme, value)
	return nil, nil
}

func (interp *Interpreter) VisitBlockStmt(s *ast.BlockStmt) (interface{}, error) {
	err := interp.executeBlock(s.Statements, NewEnclosedEnvironment(interp.env))
	return nil, err
}

func (interp *Interpreter) VisitIfStmt(s *ast.IfStmt) (interface{}, error) {
	cond, err := interp.evaluate(s.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return interp.execute(s.Then)
	}
	if s.Else != nil {
		return interp.execute(s.Else)
	}
	return nil, nil
}

func (interp *Interpreter) VisitWhileStmt(s *ast.WhileStmt) (interface{}, error) {
	for {
		cond, err := interp.evaluate(s.Cond)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}
		if _, err := interp.execute(s.Body); err != nil {
			return nil, err
		}
	}
}

// VisitForStmt runs Init once in a single environment that spans the
// whole statement, then repeats Cond/Body/Incr — matching the one
// scope the resolver opens around the same four parts (see
// resolver.VisitForStmt), so the depths it wrote line up with exactly
// one enclosing environment here, not one per iteration.
func (interp *Interpreter) VisitForStmt(s *ast.ForStmt) (interface{}, error) {
	previous := interp.env
	interp.env = NewEnclosedEnvironment(previous)
	defer func() { interp.env = previous }()

	if s.Init != nil {
		if _, err := interp.execute(s.Init); err != nil {
			return nil, err
		}
	}

	for {
		if s.Cond != nil {
			cond, err := interp.evaluate(s.Cond)
			if err != nil {
				return nil, err
			}
			if !isTruthy(cond) {
				return nil, nil
			}
		}

		if _, err := interp.execute(s.Body); err != nil {
			return nil, err
		}

		if s.Incr != nil {
			if _, err := interp.evaluate(s.Incr); err != nil {
				return nil, err
			}
		}
	}
}

func (interp *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) (interface{}, error) {
	fn := NewFunction(s, interp.env, false)
	interp.env.Define(s.Name.Lexeme, fn)
	return nil, nil
}

func (interp *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) (interface{}, error) {
	var value interface{}
	if s.Value != nil {
		v, err := interp.evaluate(s.Value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return nil, &returnSignal{Value: value}
}

// VisitClassStmt builds a Class from its declaration: resolves the
// superclass reference (must evaluate to a *Class, per spec.md §7's
// "undefined superclass" runtime error), opens the same `super`
// environment the resolver's matching scope expects when there is
// one, then builds each method closing over the class's defining
// environment.
func (interp *Interpreter) VisitClassStmt(s *ast.ClassStmt) (interface{}, error) {
	var superclass *Class
	if s.Superclass != nil {
		v, err := interp.evaluate(s.Superclass)
		if err != nil {
			return nil, err
		}
		sc, ok := v.(*Class)
		if !ok {
			return nil, &loxerr.RuntimeError{Line: s.Superclass.Name.Line, Message: "Superclass must be a class."}
		}
		superclass = sc
	}

	interp.env.Define(s.Name.Lexeme, nil)

	classEnv := interp.env
	if superclass != nil {
		classEnv = NewEnclosedEnvironment(interp.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, classEnv, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	if err := interp.env.Assign(s.Name, class); err != nil {
		return nil, err
	}
	return nil, nil
}
