package loxerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	lex := &LexError{Line: 3, Message: "Unexpected character: @"}
	assert.Equal(t, "[line 3] Error: Unexpected character: @", lex.Error())
	assert.Equal(t, KindLex, lex.Kind())

	parseWithLexeme := &ParseError{Line: 4, Lexeme: ")", Message: "Expect expression."}
	assert.Equal(t, "[line 4] Error at ')': Expect expression.", parseWithLexeme.Error())

	parseNoLexeme := &ParseError{Line: 5, Message: "Unexpected end of input."}
	assert.Equal(t, "[line 5] Error: Unexpected end of input.", parseNoLexeme.Error())
	assert.Equal(t, KindParse, parseNoLexeme.Kind())

	resolve := &ResolveError{Line: 6, Message: "Can't return from top-level code."}
	assert.Equal(t, "[line 6] Error: Can't return from top-level code.", resolve.Error())
	assert.Equal(t, KindResolve, resolve.Kind())

	runtime := &RuntimeError{Line: 7, Message: "Undefined variable 'x'."}
	assert.Equal(t, "Undefined variable 'x'.\n[line 7]", runtime.Error())
	assert.Equal(t, KindRuntime, runtime.Kind())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 65, ExitCode(KindLex))
	assert.Equal(t, 65, ExitCode(KindParse))
	assert.Equal(t, 65, ExitCode(KindResolve))
	assert.Equal(t, 70, ExitCode(KindRuntime))
}
