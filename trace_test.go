package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceRingBufferExactlyLastN(t *testing.T) {
	tr := NewTrace(16)
	for i := 0; i < 20; i++ {
		tr.Record(Token{Kind: TokSymbol, Lexeme: string(rune('a' + i))})
	}
	recent := tr.Recent()
	assert.Len(t, recent, 16)
	// newest first: dispatch 19 ('a'+19) was recorded last
	assert.Equal(t, string(rune('a'+19)), recent[0].Lexeme)
	assert.Equal(t, string(rune('a'+4)), recent[15].Lexeme, "oldest surviving entry is dispatch #4")
}

func TestTraceBelowCapacity(t *testing.T) {
	tr := NewTrace(16)
	tr.Record(Token{Lexeme: "only"})
	recent := tr.Recent()
	assert.Len(t, recent, 1)
	assert.Equal(t, "only", recent[0].Lexeme)
}
