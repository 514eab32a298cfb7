/*
File    : lox/interpreter/expr.go
Package : interpreter

Implements ast.ExprVisitor: the evaluation rules of spec.md §4.4 for
every expression kind. Operand type checks live here rather than in a
shared helper per operator, matching the teacher's eval_expressions.go
style of one function per AST shape.
*/
package interpreter

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/token"
)

func (interp *Interpreter) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	return e.Value, nil
}

func (interp *Interpreter) VisitGroupExpr(e *ast.GroupExpr) (interface{}, error) {
	return interp.evaluate(e.Inner)
}

func (interp *Interpreter) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		n, err := checkNumberOperand(e.Operator.Line, "-", right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	case token.BANG:
		return !isTruthy(right), nil
	}
	return nil, nil
}

func (interp *Interpreter) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	line := e.Operator.Line

	switch e.Operator.Type {
	case token.PLUS:
		if l, r, ok := checkNumberOperands(line, left, right); ok {
			return l + r, nil
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErr(line, "Operands must be two numbers or two strings.")
	case token.MINUS:
		l, r, ok := checkNumberOperands(line, left, right)
		if !ok {
			return nil, runtimeErr(line, "Operands must be numbers.")
		}
		return l - r, nil
	case token.STAR:
		l, r, ok := checkNumberOperands(line, left, right)
		if !ok {
			return nil, runtimeErr(line, "Operands must be numbers.")
		}
		return l * r, nil
	case token.SLASH:
		l, r, ok := checkNumberOperands(line, left, right)
		if !ok {
			return nil, runtimeErr(line, "Operands must be numbers.")
		}
		return l / r, nil
	case token.GREATER:
		l, r, ok := checkNumberOperands(line, left, right)
		if !ok {
			return nil, runtimeErr(line, "Operands must be numbers.")
		}
		return l > r, nil
	case token.GREATER_EQUAL:
		l, r, ok := checkNumberOperands(line, left, right)
		if !ok {
			return nil, runtimeErr(line, "Operands must be numbers.")
		}
		return l >= r, nil
	case token.LESS:
		l, r, ok := checkNumberOperands(line, left, right)
		if !ok {
			return nil, runtimeErr(line, "Operands must be numbers.")
		}
		return l < r, nil
	case token.LESS_EQUAL:
		l, r, ok := checkNumberOperands(line, left, right)
		if !ok {
			return nil, runtimeErr(line, "Operands must be numbers.")
		}
		return l <= r, nil
	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	}
	return nil, nil
}

func (interp *Interpreter) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return interp.evaluate(e.Right)
}

func (interp *Interpreter) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	return interp.lookUpVariable(e.Name, e.Depth)
}

func (interp *Interpreter) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	value, err := interp.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if e.Depth != nil {
		interp.env.AssignAt(*e.Depth, e.Name.Lexeme, value)
		return value, nil
	}
	if err := interp.Globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (interp *Interpreter) lookUpVariable(name token.Token, depth *int) (interface{}, error) {
	if depth != nil {
		return interp.env.GetAt(*depth, name.Lexeme), nil
	}
	return interp.Globals.Get(name)
}

func (interp *Interpreter) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	callee, err := interp.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(e.Args))
	for i, a := range e.Args {
		v, err := interp.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErr(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErr(e.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(interp, args)
}

func (interp *Interpreter) VisitGetExpr(e *ast.GetExpr) (interface{}, error) {
	obj, err := interp.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErr(e.Name.Line, "Only instances have properties.")
	}
	return inst.Get(e.Name.Lexeme, e.Name.Line)
}

func (interp *Interpreter) VisitSetExpr(e *ast.SetExpr) (interface{}, error) {
	obj, err := interp.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErr(e.Name.Line, "Only instances have fields.")
	}
	value, err := interp.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, value)
	return value, nil
}

func (interp *Interpreter) VisitThisExpr(e *ast.ThisExpr) (interface{}, error) {
	if e.Depth == nil {
		return nil, runtimeErr(e.Keyword.Line, "Undefined variable 'this'.")
	}
	return interp.env.GetAt(*e.Depth, "this"), nil
}

// VisitSuperExpr finds the method on the statically-known superclass
// and binds it to the enclosing method's `this`. The superclass sits
// one scope further out than `this` because VisitClassStmt opens the
// `super` scope before the `this` scope around every subclass method.
func (interp *Interpreter) VisitSuperExpr(e *ast.SuperExpr) (interface{}, error) {
	if e.Depth == nil {
		return nil, runtimeErr(e.Keyword.Line, "Undefined variable 'super'.")
	}
	distance := *e.Depth
	superclass, _ := interp.env.GetAt(distance, "super").(*Class)
	instance, _ := interp.env.GetAt(distance-1, "this").(*Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, runtimeErr(e.Method.Line, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(instance), nil
}
