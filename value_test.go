package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueDeepCopyIndependence(t *testing.T) {
	orig := Quotation(Str("a"), Quotation(Int32(1), Int32(2)))
	cp := orig.DeepCopy()
	assert.True(t, orig.Equal(cp))

	cp.Items[0].Str = "mutated"
	cp.Items[1].Items[0].Int = 99
	assert.Equal(t, "a", orig.Items[0].Str)
	assert.Equal(t, int32(1), orig.Items[1].Items[0].Int)
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Int32(5).Equal(Int32(5)))
	assert.False(t, Int32(5).Equal(Int32(6)))
	assert.True(t, Str("x").Equal(Str("x")))
	assert.False(t, Str("x").Equal(Int32(1)))

	a := Quotation(Int32(1), Str("y"))
	b := Quotation(Int32(1), Str("y"))
	c := Quotation(Int32(1), Str("z"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	nsym := NativeSymbol("dup", Token{})
	usym := UserSymbol("dup", Token{})
	assert.True(t, nsym.Equal(usym), "symbols compare equal by identifier regardless of native/user origin")
}

func TestValueLess(t *testing.T) {
	assert.True(t, Int32(1).Less(Int32(2)))
	assert.False(t, Int32(2).Less(Int32(1)))
	assert.True(t, Str("a").Less(Str("b")))

	short := Quotation(Int32(1))
	long := Quotation(Int32(1), Int32(2))
	assert.True(t, short.Less(long), "shorter is less on a shared prefix")

	assert.False(t, Int32(1).Less(Str("a")), "mismatched kinds are never less")
}

func TestFormatHexIntNoSign(t *testing.T) {
	assert.Equal(t, "0x1", Int32(1).Display())
	assert.Equal(t, "0xffffffff", Int32(-1).Display())
	n, err := ParseHexLiteral("0xffffffff")
	assertNoError(t, err)
	assert.Equal(t, int32(-1), n)
	assert.Equal(t, "0xffffffff", Int32(n).Display(), "round-trips without ever emitting a minus sign")
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValueDisplayQuotationAndString(t *testing.T) {
	q := Quotation(Int32(1), Str("hi\n"))
	assert.Equal(t, `(0x1 "hi\n")`, q.Display())
}

func TestValueTruthy(t *testing.T) {
	assert.True(t, Int32(1).Truthy())
	assert.False(t, Int32(0).Truthy())
	assert.False(t, Int32(-1).Truthy())
	assert.False(t, Str("1").Truthy())
}
