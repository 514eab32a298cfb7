/*
File    : lox/interpreter/environment.go
Package : interpreter

Environment is the runtime counterpart of the resolver's scope stack:
a chain of variable bindings linked to an enclosing parent. Unlike the
teacher's scope.Scope, which is explicitly copied at closure-creation
time (scope.Copy), an Environment here is always captured and shared
by reference — a function's closure is a pointer to the live
environment, not a snapshot of it, which is what spec.md §8's closure
test ("mutating the outer variable after capture is observed by later
calls") requires.
*/
package interpreter

import (
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/token"
)

// Environment holds one lexical scope's variable bindings.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

// NewEnvironment creates a scope with no parent: the global scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]interface{})}
}

// NewEnclosedEnvironment creates a scope nested inside enclosing.
func NewEnclosedEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]interface{})}
}

// Define binds name to value in this environment, always — redeclaring
// an existing name in the same environment simply overwrites it
// (the resolver is what rejects redeclaration; the environment does
// not need to).
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get reads name by walking outward from this environment to the
// root, used for unresolved (global) references.
func (e *Environment) Get(name token.Token) (interface{}, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, &loxerr.RuntimeError{Line: name.Line, Message: "Undefined variable '" + name.Lexeme + "'."}
}

// Assign updates name in the nearest enclosing environment that
// defines it, walking outward from this environment to the root.
func (e *Environment) Assign(name token.Token, value interface{}) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}
	return &loxerr.RuntimeError{Line: name.Line, Message: "Undefined variable '" + name.Lexeme + "'."}
}

// ancestor walks exactly depth enclosing links out from e. The
// resolver guarantees depth never overruns the chain, so an
// out-of-range depth is a bug in the resolver rather than a condition
// this interpreter needs to handle gracefully.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name after walking exactly depth enclosing links; the
// resolver has already proven the binding exists there.
func (e *Environment) GetAt(depth int, name string) interface{} {
	return e.ancestor(depth).values[name]
}

// AssignAt writes value after walking exactly depth enclosing links.
func (e *Environment) AssignAt(depth int, name string, value interface{}) {
	e.ancestor(depth).values[name] = value
}
