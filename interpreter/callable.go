/*
File    : lox/interpreter/callable.go
Package : interpreter

Per spec.md §9 ("Dynamic dispatch over callables"), functions, native
functions, bound methods, and classes all share one small Callable
interface rather than an open type hierarchy — the set of things a
lox program can invoke is closed.
*/
package interpreter

// Callable is implemented by every value that a CallExpr may invoke:
// user-defined functions and methods, bound methods, classes
// (construction), and native functions such as clock.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// NativeFunction wraps a host-provided function as a Callable, the
// mechanism the built-in clock() uses.
type NativeFunction struct {
	Name     string
	ArityVal int
	Fn       func(interp *Interpreter, args []interface{}) (interface{}, error)
}

func (f *NativeFunction) Arity() int { return f.ArityVal }

func (f *NativeFunction) Call(interp *Interpreter, args []interface{}) (interface{}, error) {
	return f.Fn(interp, args)
}

func (f *NativeFunction) String() string { return "<native fn " + f.Name + ">" }
