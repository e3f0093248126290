package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, TokenPrint, LookupIdent("print"))
	assert.Equal(t, TokenVar, LookupIdent("var"))
	assert.Equal(t, TokenWhile, LookupIdent("while"))

	// Lookup is case-sensitive and exact
	assert.Equal(t, TokenIdent, LookupIdent("Print"))
	assert.Equal(t, TokenIdent, LookupIdent("variable"))
	assert.Equal(t, TokenIdent, LookupIdent("x"))
	assert.Equal(t, TokenIdent, LookupIdent(""))
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `STRING("hi")`, Token{Type: TokenString, Literal: "hi"}.String())
	assert.Equal(t, "NUMBER(1.5)", Token{Type: TokenNumber, Number: 1.5}.String())
	assert.Equal(t, "IDENT(x)", Token{Type: TokenIdent, Literal: "x"}.String())
	assert.Equal(t, "PRINT", Token{Type: TokenPrint, Literal: "print"}.String())
	assert.Equal(t, "EOF", Token{Type: TokenEOF}.String())
}
