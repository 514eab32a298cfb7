/*
File    : lox/interpreter/function.go
Package : interpreter

Function is the runtime counterpart of the teacher's function.Function
(name, parameters, body, captured scope), generalized from go-mix's
struct-method binding (eval/eval_structs.go's callFunctionOnObject,
which opens a fresh scope.Scope and binds "this"/"self" into it before
evaluating the body) into a Bind method that produces a new Function
closing over an environment with "this" defined — the mechanism
spec.md §4.4 calls a bound method.
*/
package interpreter

import (
	"github.com/akashmaji946/lox/ast"
)

// Function is a user-defined function or method: its declaration,
// the environment it closes over, and whether it is a class's `init`
// method (which special-cases the value a call produces).
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func NewFunction(decl *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{Declaration: decl, Closure: closure, IsInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) String() string { return "<fn " + f.Declaration.Name.Lexeme + ">" }

// Bind produces a copy of f whose closure is a fresh environment,
// enclosing f's original closure, with "this" bound to instance. This
// is what turns a class method into the bound method spec.md's
// Get/Property-access contract requires.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}

// Call executes the function body in a fresh environment enclosing
// its closure, with parameters bound by position. A `return`
// surfaces here as a *returnSignal rather than a runtime error; Call
// unwraps it into the function's result, special-casing an
// initializer so that `return;` (or falling off the end) still yields
// `this`, per spec.md §4.4.
func (f *Function) Call(interp *Interpreter, args []interface{}) (interface{}, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.Declaration.Body, env)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			if f.IsInitializer {
				return f.Closure.GetAt(0, "this"), nil
			}
			return ret.Value, nil
		}
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}
