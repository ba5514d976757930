package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLenCanonical(t *testing.T) {
	assert.Equal(t, []byte{0x00}, encodeLen(0))
	assert.Equal(t, []byte{0x7F}, encodeLen(0x7F))
	assert.Equal(t, []byte{0x80, 0x00, 0x80}, encodeLen(0x80))
	assert.Equal(t, []byte{0x80, 0xFF, 0xFF}, encodeLen(0xFFFF))
	assert.Equal(t, []byte{0x81, 0x00, 0x01, 0x00, 0x00}, encodeLen(0x10000))
}

func TestDecodeLenRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 0x7F, 0x80, 0x1234, 0xFFFF, 0x10000, 0x123456} {
		enc := encodeLen(n)
		got, pos, err := decodeLen(enc, 0)
		require.NoError(t, err)
		assert.Equal(t, n, got)
		assert.Equal(t, len(enc), pos)
	}
}

func TestCompileRunsViaBothPaths(t *testing.T) {
	const program = `0x1 0x2 +`
	runViaInterpreter := func() Value {
		var out bytes.Buffer
		eng := New(WithOutput(&out), WithInput(strings.NewReader(program)))
		require.NoError(t, NewInterpreter(eng).Run())
		v, err := eng.Stack.Peek()
		require.NoError(t, err)
		return v
	}
	runViaVM := func() Value {
		buf, err := Compile(program)
		require.NoError(t, err)
		eng := New()
		require.NoError(t, RunBytecode(eng, buf))
		v, err := eng.Stack.Peek()
		require.NoError(t, err)
		return v
	}

	interpreted := runViaInterpreter()
	compiled := runViaVM()
	assert.True(t, interpreted.Equal(compiled), "interpreting S must produce the same result as compiling S and running the VM")
	assert.Equal(t, int32(3), compiled.Int)
}

func TestCompileRoundTripWithQuotationsAndStrings(t *testing.T) {
	const program = `( 0x1 "two" ( 0x3 ) ) "q" : q`
	buf, err := Compile(program)
	require.NoError(t, err)

	eng := New()
	require.NoError(t, RunBytecode(eng, buf))
	v, err := eng.Stack.Peek()
	require.NoError(t, err)
	require.Equal(t, KindQuotation, v.Kind)
	require.Len(t, v.Items, 3)
	assert.Equal(t, int32(1), v.Items[0].Int)
	assert.Equal(t, "two", v.Items[1].Str)
	assert.Equal(t, int32(3), v.Items[2].Items[0].Int)
}

func TestCompileHeaderMagic(t *testing.T) {
	buf, err := Compile(`0x1`)
	require.NoError(t, err)
	require.True(t, len(buf) >= 8)
	assert.Equal(t, []byte{0x01, 'H', 'E', 'x', 0x01, 0x02}, buf[:6])
}

func TestRunBytecodeRejectsBadMagic(t *testing.T) {
	err := RunBytecode(New(), []byte{0, 0, 0, 0, 0, 0, 0, 0})
	assert.Error(t, err)
}

func TestRunBytecodeRejectsOutOfRangeLookup(t *testing.T) {
	buf := append([]byte{}, header[:]...)
	buf = append(buf, 0x00)       // empty symbol table
	buf = append(buf, opLookup)   // LOOKUP
	buf = append(buf, 0x05)       // index 5, but table is empty
	err := RunBytecode(New(), buf)
	assert.Error(t, err)
}
