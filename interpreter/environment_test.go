package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/token"
)

func nameTok(lexeme string) token.Token {
	return token.Token{Type: token.IDENTIFIER, Lexeme: lexeme, Line: 1}
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", float64(1))

	v, err := env.Get(nameTok("a"))
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)
}

func TestEnvironmentGetWalksToEnclosing(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", "outer-value")
	inner := NewEnclosedEnvironment(outer)

	v, err := inner.Get(nameTok("a"))
	require.NoError(t, err)
	assert.Equal(t, "outer-value", v)
}

func TestEnvironmentGetUndefinedIsError(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Get(nameTok("nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'nope'.")
}

func TestEnvironmentAssignUpdatesNearestDefiningScope(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", float64(1))
	inner := NewEnclosedEnvironment(outer)

	require.NoError(t, inner.Assign(nameTok("a"), float64(2)))

	v, err := outer.Get(nameTok("a"))
	require.NoError(t, err)
	assert.Equal(t, float64(2), v)
}

func TestEnvironmentAssignUndefinedIsError(t *testing.T) {
	env := NewEnvironment()
	err := env.Assign(nameTok("nope"), float64(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'nope'.")
}

func TestEnvironmentGetAtAndAssignAtUseExactDepth(t *testing.T) {
	global := NewEnvironment()
	global.Define("a", "global")
	middle := NewEnclosedEnvironment(global)
	middle.Define("a", "middle")
	inner := NewEnclosedEnvironment(middle)

	assert.Equal(t, "middle", inner.GetAt(1, "a"))
	assert.Equal(t, "global", inner.GetAt(2, "a"))

	inner.AssignAt(1, "a", "middle-updated")
	v, _ := middle.Get(nameTok("a"))
	assert.Equal(t, "middle-updated", v)
}
