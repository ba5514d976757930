package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isNativeForTest(name string) bool {
	_, ok := nativeToOpcode[name]
	return ok
}

func tokenizeAll(t *testing.T, src string) []Token {
	t.Helper()
	tok := NewTokenizer(newStringCursor(src), isNativeForTest)
	var toks []Token
	for {
		tk, err := tok.Next()
		require.NoError(t, err)
		if tk.Kind == TokEnd {
			return toks
		}
		toks = append(toks, tk)
	}
}

func TestTokenizerBasics(t *testing.T) {
	toks := tokenizeAll(t, `0x1 0xFF + "hi\n" ( dup )`)
	kinds := make([]TokenKind, len(toks))
	for i, tk := range toks {
		kinds[i] = tk.Kind
	}
	assert.Equal(t, []TokenKind{
		TokInteger, TokInteger, TokSymbol, TokString,
		TokQuotationStart, TokSymbol, TokQuotationEnd,
	}, kinds)
	assert.Equal(t, `hi\n`, toks[3].Lexeme, "raw escape sequence preserved for Decode")
}

func TestTokenizerComments(t *testing.T) {
	toks := tokenizeAll(t, "; line comment\n#| block |# dup")
	require.Len(t, toks, 3)
	assert.Equal(t, TokComment, toks[0].Kind)
	assert.Equal(t, TokComment, toks[1].Kind)
	assert.Equal(t, TokSymbol, toks[2].Kind)
}

func TestTokenizerUnterminatedString(t *testing.T) {
	toks := tokenizeAll(t, `"unterminated`)
	require.Len(t, toks, 1)
	assert.Equal(t, TokInvalid, toks[0].Kind)
}

func TestTokenizerInvalidSymbol(t *testing.T) {
	toks := tokenizeAll(t, "1bad-hex-ish")
	require.Len(t, toks, 1)
	assert.Equal(t, TokInvalid, toks[0].Kind)
}

func TestTokenizerPositionTracksLineStart(t *testing.T) {
	tok := NewTokenizer(newStringCursor("dup\ndup"), isNativeForTest)
	first, err := tok.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, first.Position.Line)

	second, err := tok.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, second.Position.Line)
	assert.Equal(t, 1, second.Position.Column)
}

func TestParseHexLiteralRoundTrip(t *testing.T) {
	for _, word := range []string{"0x0", "0xFF", "0xffffffff", "0x80000000"} {
		n, err := ParseHexLiteral(word)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(word), formatHexInt(n))
	}
}

func TestIsHexLiteral(t *testing.T) {
	assert.True(t, isHexLiteral("0x1"))
	assert.True(t, isHexLiteral("0XAB"))
	assert.False(t, isHexLiteral("0x"))
	assert.False(t, isHexLiteral("dup"))
	assert.False(t, isHexLiteral(strings.Repeat("0x1", 1)+"z"))
}
