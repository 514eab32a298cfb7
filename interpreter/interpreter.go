/*
File    : lox/interpreter/interpreter.go
Package : interpreter

Package interpreter implements the recursive evaluator described in
spec.md §4.4: given a resolved statement list, it walks the tree once,
threading a chain of Environments, and prints via Out rather than
directly to os.Stdout so that both the CLI front-end and tests can
redirect output.

Its shape is grounded on the teacher's eval.Evaluator (one struct
holding the live scope plus whatever ambient state a visitor-style
walk needs), generalized from go-mix's many statement/expression kinds
down to lox's smaller grammar, and from GoMixObject's ToString/ToObject
interface down to a plain interface{} Value domain — fitting, since
spec.md §9 explicitly calls the callable set "closed and small" and
the same is true of lox's whole value domain (number, string,
boolean, nil, callable, instance).
*/
package interpreter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/token"
)

// Interpreter executes a resolved program against a chain of
// Environments rooted at Globals.
type Interpreter struct {
	Globals *Environment
	env     *Environment
	Out     io.Writer
}

// New creates an Interpreter whose global environment contains the
// single built-in clock() native function, writing print output to
// out.
func New(out io.Writer) *Interpreter {
	globals := NewEnvironment()
	interp := &Interpreter{Globals: globals, env: globals, Out: out}
	globals.Define("clock", &NativeFunction{
		Name:     "clock",
		ArityVal: 0,
		Fn: func(interp *Interpreter, args []interface{}) (interface{}, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	})
	return interp
}

// Interpret executes every statement in order, stopping at the first
// runtime error. A *returnSignal should never reach this top level —
// the resolver rejects top-level `return` — so one surfacing here
// would indicate a resolver bug rather than a program error.
func (interp *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if _, err := interp.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateExpression evaluates a single standalone expression, the
// entry point the `evaluate` CLI sub-command uses.
func (interp *Interpreter) EvaluateExpression(expr ast.Expr) (interface{}, error) {
	return interp.evaluate(expr)
}

// Stringify renders a Value the way `print` and the `evaluate`
// sub-command display it.
func (interp *Interpreter) Stringify(v interface{}) string {
	return stringify(v)
}

func (interp *Interpreter) execute(s ast.Stmt) (interface{}, error) {
	return s.Accept(interp)
}

func (interp *Interpreter) evaluate(e ast.Expr) (interface{}, error) {
	return e.Accept(interp)
}

// executeBlock runs stmts against env, restoring the interpreter's
// previous environment afterward regardless of how execution ends —
// normal completion, a runtime error, or a return signal unwinding
// through it.
func (interp *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := interp.env
	interp.env = env
	defer func() { interp.env = previous }()

	for _, s := range stmts {
		if _, err := interp.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return fmt.Sprintf("%t", val)
	case string:
		return val
	case float64:
		// Integral numbers display without a fractional part (7, not 7.0).
		return strings.TrimSuffix(token.FormatNumber(val), ".0")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func isTruthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	default:
		return true
	}
}

// isEqual implements spec.md §4.4's equality rule directly: nil only
// equals nil, numbers/strings/booleans compare by Go's native ==,
// values of different dynamic types are simply unequal rather than an
// error.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

func runtimeErr(line int, format string, args ...interface{}) error {
	return &loxerr.RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

func checkNumberOperand(line int, operator string, v interface{}) (float64, error) {
	if n, ok := v.(float64); ok {
		return n, nil
	}
	if operator == "-" {
		return 0, runtimeErr(line, "Operand must be a number.")
	}
	return 0, runtimeErr(line, "Operand must be a number.")
}

func checkNumberOperands(line int, left, right interface{}) (float64, float64, bool) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	return l, r, lok && rok
}
