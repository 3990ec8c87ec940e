package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizerAdvancePeekAtEnd(t *testing.T) {
	tz, err := NewTokenizer(`(+ 1 2)`)
	assert.NoError(t, err)
	assert.NotNil(t, tz)

	var got []TokenType
	for !tz.AtEnd() {
		got = append(got, tz.Peek().Type())
		assert.NoError(t, tz.Advance())
	}
	got = append(got, tz.Peek().Type())

	assert.Equal(t, []TokenType{
		TokenOpenParen,
		TokenSymbol,
		TokenNumber,
		TokenNumber,
		TokenCloseParen,
		TokenEOF,
	}, got)
}

func TestTokenizerLookaheadBeforeFirstAdvance(t *testing.T) {
	tz, err := NewTokenizer(`42`)
	assert.NoError(t, err)

	assert.Equal(t, TokenNumber, tz.Peek().Type())
	assert.Equal(t, "42", tz.Peek().Text())
}

func TestTokenizerSyntaxError(t *testing.T) {
	_, err := NewTokenizer(`(foo @)`)
	assert.Error(t, err)
}

func TestTokenizerEmptyInput(t *testing.T) {
	tz, err := NewTokenizer(``)
	assert.NoError(t, err)
	assert.True(t, tz.AtEnd())
}
