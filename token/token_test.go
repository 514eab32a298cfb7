package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42, "42.0"},
		{0, "0.0"},
		{-3, "-3.0"},
		{3.14, "3.14"},
		{1.5, "1.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestLookupIdentifier(t *testing.T) {
	assert.Equal(t, CLASS, LookupIdentifier("class"))
	assert.Equal(t, WHILE, LookupIdentifier("while"))
	assert.Equal(t, IDENTIFIER, LookupIdentifier("notAKeyword"))
}

func TestTokenString(t *testing.T) {
	tok := NewAt(NUMBER, "42", float64(42), 1, 1)
	assert.Equal(t, "NUMBER 42 42.0", tok.String())

	tok = NewAt(STRING, `"hi"`, "hi", 1, 1)
	assert.Equal(t, "STRING \"hi\" hi", tok.String())

	tok = New(LEFT_PAREN, "(")
	assert.Equal(t, "LEFT_PAREN ( null", tok.String())
}
