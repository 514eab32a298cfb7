package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/resolver"
)

// run lexes, parses, resolves, and interprets src, returning everything
// printed to stdout and any runtime error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	lx := lexer.New(src)
	tokens := lx.Tokenize()
	require.Empty(t, lx.Errors)

	p := parser.New(tokens)
	stmts := p.Parse()
	require.False(t, p.HasErrors(), p.Errors())

	r := resolver.New()
	r.Resolve(stmts)
	require.False(t, r.HasErrors(), r.Errors())

	var buf bytes.Buffer
	interp := New(&buf)
	err := interp.Interpret(stmts)
	return buf.String(), err
}

func lines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestArithmeticAndStringConcatenation(t *testing.T) {
	out, err := run(t, `
	print 1 + 2 * 3;
	print "foo" + "bar";
	print (1 + 2) * 3;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "foobar", "9"}, lines(out))
}

func TestVariablesAndAssignment(t *testing.T) {
	out, err := run(t, `
	var a = 1;
	var b = 2;
	a = a + b;
	print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, lines(out))
}

func TestBlockScopingShadowsOuterVariable(t *testing.T) {
	out, err := run(t, `
	var a = "outer";
	{
		var a = "inner";
		print a;
	}
	print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"inner", "outer"}, lines(out))
}

func TestIfElseBranching(t *testing.T) {
	out, err := run(t, `
	if (1 < 2) print "yes"; else print "no";
	if (1 > 2) print "yes"; else print "no";
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"yes", "no"}, lines(out))
}

func TestWhileAndForLoops(t *testing.T) {
	out, err := run(t, `
	var i = 0;
	while (i < 3) {
		print i;
		i = i + 1;
	}
	for (var j = 0; j < 3; j = j + 1) print j;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "0", "1", "2"}, lines(out))
}

func TestLogicalOperatorsShortCircuitAndReturnOperand(t *testing.T) {
	out, err := run(t, `
	print false or "fallback";
	print "first" and "second";
	print nil or false;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"fallback", "second", "false"}, lines(out))
}

func TestFunctionsAndRecursion(t *testing.T) {
	out, err := run(t, `
	fun fib(n) {
		if (n < 2) return n;
		return fib(n - 1) + fib(n - 2);
	}
	print fib(8);
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"21"}, lines(out))
}

// TestClosuresCaptureByReference is the scenario spec.md describes: a
// variable captured by a closure is shared, not copied, so mutating it
// after capture is observed by later calls.
func TestClosuresCaptureByReference(t *testing.T) {
	out, err := run(t, `
	fun makeCounter() {
		var count = 0;
		fun inc() {
			count = count + 1;
			return count;
		}
		return inc;
	}
	var counter = makeCounter();
	print counter();
	print counter();
	print counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines(out))
}

func TestClassesFieldsAndMethods(t *testing.T) {
	out, err := run(t, `
	class Greeter {
		init(name) {
			this.name = name;
		}
		greet() {
			print "Hello, " + this.name + "!";
		}
	}
	var g = Greeter("world");
	g.greet();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello, world!"}, lines(out))
}

func TestSingleInheritanceAndSuperCalls(t *testing.T) {
	out, err := run(t, `
	class Animal {
		speak() {
			print "Some noise.";
		}
	}
	class Dog < Animal {
		speak() {
			super.speak();
			print "Woof!";
		}
	}
	Dog().speak();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Some noise.", "Woof!"}, lines(out))
}

func TestInitializerBareReturnYieldsThis(t *testing.T) {
	out, err := run(t, `
	class Box {
		init(v) {
			this.v = v;
			return;
		}
	}
	var b = Box(5);
	print b.v;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, lines(out))
}

func TestNativeClockIsCallable(t *testing.T) {
	out, err := run(t, `print clock() > 0;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, lines(out))
}

// --- negative / runtime-error scenarios ---

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print nope;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'nope'.")
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `
	var x = 1;
	x();
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes.")
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
	fun one(a) { return a; }
	one(1, 2);
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 1 arguments but got 2.")
}

func TestUndefinedPropertyIsRuntimeError(t *testing.T) {
	_, err := run(t, `
	class Empty {}
	var e = Empty();
	print e.missing;
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined property 'missing'.")
}

func TestOperandTypeErrorsForArithmetic(t *testing.T) {
	_, err := run(t, `print "a" - 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operands must be numbers.")

	_, err = run(t, `print 1 + true;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operands must be two numbers or two strings.")
}

func TestOnlyInstancesHaveProperties(t *testing.T) {
	_, err := run(t, `print (1).x;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Only instances have properties.")
}

func TestEqualityAcrossDifferentTypesIsFalse(t *testing.T) {
	out, err := run(t, `
	print 1 == "1";
	print nil == false;
	print 1 == 1;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"false", "false", "true"}, lines(out))
}

func TestStringifyFormatsNumbersWithTrailingZero(t *testing.T) {
	var buf bytes.Buffer
	interp := New(&buf)
	assert.Equal(t, "42.0", interp.Stringify(float64(42)))
	assert.Equal(t, "3.5", interp.Stringify(3.5))
	assert.Equal(t, "nil", interp.Stringify(nil))
	assert.Equal(t, "true", interp.Stringify(true))
}
