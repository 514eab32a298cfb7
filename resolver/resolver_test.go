package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
)

func resolveSource(t *testing.T, src string) ([]ast.Stmt, *Resolver) {
	t.Helper()
	lx := lexer.New(src)
	tokens := lx.Tokenize()
	require.Empty(t, lx.Errors)

	p := parser.New(tokens)
	stmts := p.Parse()
	require.False(t, p.HasErrors(), p.Errors())

	r := New()
	r.Resolve(stmts)
	return stmts, r
}

func TestResolveLocalVariableDepth(t *testing.T) {
	stmts, r := resolveSource(t, `
	var a = 1;
	{
		var b = 2;
		print a + b;
	}
	`)
	require.False(t, r.HasErrors(), r.Errors())

	block := stmts[1].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	binary := printStmt.Expr.(*ast.BinaryExpr)

	aRef := binary.Left.(*ast.VariableExpr)
	assert.Nil(t, aRef.Depth, "global reference must resolve as nil depth")

	bRef := binary.Right.(*ast.VariableExpr)
	require.NotNil(t, bRef.Depth)
	assert.Equal(t, 0, *bRef.Depth)
}

func TestResolveClosureCapturesOuterScopeDepth(t *testing.T) {
	stmts, r := resolveSource(t, `
	fun makeCounter() {
		var count = 0;
		fun inc() {
			count = count + 1;
			return count;
		}
		return inc;
	}
	`)
	require.False(t, r.HasErrors(), r.Errors())

	outer := stmts[0].(*ast.FunctionStmt)
	inner := outer.Body[1].(*ast.FunctionStmt)
	assignStmt := inner.Body[0].(*ast.ExprStmt)
	assign := assignStmt.Expr.(*ast.AssignExpr)
	require.NotNil(t, assign.Depth)
	assert.Equal(t, 1, *assign.Depth)
}

func TestResolveSelfReferenceInInitializerIsError(t *testing.T) {
	_, r := resolveSource(t, `{ var a = a; }`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors()[0].Message, "own initializer")
}

func TestResolveRedeclarationInSameScopeIsError(t *testing.T) {
	_, r := resolveSource(t, `{ var a = 1; var a = 2; }`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors()[0].Message, "Already a variable")
}

func TestResolveTopLevelReturnIsError(t *testing.T) {
	_, r := resolveSource(t, `return 1;`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors()[0].Message, "top-level code")
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	_, r := resolveSource(t, `
	class Foo {
		init() { return 1; }
	}
	`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors()[0].Message, "return a value from an initializer")
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	_, r := resolveSource(t, `print this;`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors()[0].Message, "'this' outside of a class")
}

func TestResolveSuperWithoutSuperclassIsError(t *testing.T) {
	_, r := resolveSource(t, `
	class Foo {
		bar() { return super.bar(); }
	}
	`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors()[0].Message, "class with no superclass")
}

func TestResolveClassCannotInheritFromItself(t *testing.T) {
	_, r := resolveSource(t, `class Foo < Foo {}`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors()[0].Message, "can't inherit from itself")
}

func TestResolveForStmtSingleScope(t *testing.T) {
	stmts, r := resolveSource(t, `
	for (var i = 0; i < 10; i = i + 1) {
		print i;
	}
	`)
	require.False(t, r.HasErrors(), r.Errors())

	forStmt := stmts[0].(*ast.ForStmt)
	cond := forStmt.Cond.(*ast.BinaryExpr)
	iInCond := cond.Left.(*ast.VariableExpr)
	require.NotNil(t, iInCond.Depth)
	assert.Equal(t, 0, *iInCond.Depth, "the loop variable lives in the single scope opened around the whole ForStmt")
}
