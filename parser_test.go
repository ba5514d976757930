package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAll(t *testing.T, src string) []Value {
	t.Helper()
	tok := NewTokenizer(newStringCursor(src), isNativeForTest)
	p := NewBareParser(tok, isNativeForTest)
	var values []Value
	for {
		tk, err := tok.Next()
		require.NoError(t, err)
		if tk.Kind == TokEnd {
			return values
		}
		v, skip, err := p.parseOne(tk)
		require.NoError(t, err)
		if skip {
			continue
		}
		values = append(values, v)
	}
}

func TestParserTopLevelValues(t *testing.T) {
	values := parseAll(t, `0x1 "s" ( 0x2 dup ) myword`)
	require.Len(t, values, 4)
	assert.Equal(t, KindInt, values[0].Kind)
	assert.Equal(t, KindString, values[1].Kind)
	assert.Equal(t, KindQuotation, values[2].Kind)
	require.Len(t, values[2].Items, 2)
	assert.Equal(t, KindNativeSymbol, values[2].Items[1].Kind)
	assert.Equal(t, KindUserSymbol, values[3].Kind)
}

func TestParserNestedQuotation(t *testing.T) {
	values := parseAll(t, `( ( 0x1 ) ( 0x2 ) )`)
	require.Len(t, values, 1)
	outer := values[0]
	require.Len(t, outer.Items, 2)
	assert.Equal(t, int32(1), outer.Items[0].Items[0].Int)
	assert.Equal(t, int32(2), outer.Items[1].Items[0].Int)
}

func TestParserUnbalancedQuotation(t *testing.T) {
	tok := NewTokenizer(newStringCursor(`( 0x1 0x2`), isNativeForTest)
	p := NewBareParser(tok, isNativeForTest)
	open, err := tok.Next()
	require.NoError(t, err)
	_, err = p.ParseQuotation(open)
	assert.Error(t, err)
}

func TestParserUnexpectedCloseParen(t *testing.T) {
	tok := NewTokenizer(newStringCursor(`)`), isNativeForTest)
	p := NewBareParser(tok, isNativeForTest)
	tk, err := tok.Next()
	require.NoError(t, err)
	_, _, err = p.parseOne(tk)
	assert.Error(t, err)
}
