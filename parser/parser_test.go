package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	lx := lexer.New(src)
	tokens := lx.Tokenize()
	require.Empty(t, lx.Errors)
	p := New(tokens)
	expr := p.ParseExpression()
	require.False(t, p.HasErrors(), p.Errors())
	return expr
}

func TestPrintExpressionPrecedence(t *testing.T) {
	expr := parseExpr(t, `-123 * (45.67 + 1)`)
	assert.Equal(t, "(* (- 123.0) (group (+ 45.67 1.0)))", NewPrinter().Print(expr))
}

func TestPrintComparisonAndEquality(t *testing.T) {
	expr := parseExpr(t, `1 < 2 == true`)
	assert.Equal(t, "(== (< 1.0 2.0) true)", NewPrinter().Print(expr))
}

func TestPrintLogicalAndAssignment(t *testing.T) {
	expr := parseExpr(t, `a = b or c`)
	assert.Equal(t, "(= a (or b c))", NewPrinter().Print(expr))
}

func TestPrintCallAndProperty(t *testing.T) {
	expr := parseExpr(t, `obj.method(1, 2)`)
	assert.Equal(t, "(call (.method obj) 1.0 2.0)", NewPrinter().Print(expr))
}

func TestParseProgramStatements(t *testing.T) {
	src := `
	var a = 1;
	class Foo < Bar {
		init(x) { this.x = x; }
	}
	fun add(a, b) { return a + b; }
	for (var i = 0; i < 3; i = i + 1) print i;
	`
	lx := lexer.New(src)
	tokens := lx.Tokenize()
	require.Empty(t, lx.Errors)

	p := New(tokens)
	stmts := p.Parse()
	require.False(t, p.HasErrors(), p.Errors())
	require.Len(t, stmts, 4)

	_, ok := stmts[0].(*ast.VarStmt)
	assert.True(t, ok)

	class, ok := stmts[1].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "Foo", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "Bar", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "init", class.Methods[0].Name.Lexeme)

	fn, ok := stmts[2].(*ast.FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)

	forStmt, ok := stmts[3].(*ast.ForStmt)
	require.True(t, ok)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Incr)
}

func TestParseErrorRecoveryCollectsMultiple(t *testing.T) {
	src := `var = 1; print "ok" var y = 2;`
	lx := lexer.New(src)
	tokens := lx.Tokenize()
	require.Empty(t, lx.Errors)

	p := New(tokens)
	p.Parse()
	assert.True(t, p.HasErrors())
	assert.GreaterOrEqual(t, len(p.Errors()), 2)
}

func TestInvalidAssignmentTarget(t *testing.T) {
	lx := lexer.New(`1 + 2 = 3;`)
	tokens := lx.Tokenize()
	p := New(tokens)
	p.Parse()
	require.True(t, p.HasErrors())
	assert.Contains(t, p.Errors()[0].Message, "Invalid assignment target.")
}
