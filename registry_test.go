package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySetGetRoundTrip(t *testing.T) {
	r := NewRegistry(8)
	v := Quotation(Int32(1), Int32(2))
	require.NoError(t, r.Set("foo", v))

	got, ok := r.Get("foo")
	require.True(t, ok)
	assert.True(t, v.Equal(got))
}

func TestRegistryGetReturnsDeepCopy(t *testing.T) {
	r := NewRegistry(8)
	require.NoError(t, r.Set("foo", Quotation(Int32(1))))

	got, ok := r.Get("foo")
	require.True(t, ok)
	got.Items[0].Int = 99

	again, _ := r.Get("foo")
	assert.Equal(t, int32(1), again.Items[0].Int, "mutating a returned copy must not affect the stored entry")
}

func TestRegistryRejectsNativeClash(t *testing.T) {
	r := NewRegistry(8)
	r.SetNative("+", NativeSymbol("+", Token{}))

	err := r.Set("+", Int32(0))
	assert.Error(t, err)

	// the native binding itself must be unchanged
	assert.True(t, r.ContainsNative("+"))
	err = r.Delete("+")
	assert.Error(t, err)
}

func TestRegistryRejectsInvalidIdentifier(t *testing.T) {
	r := NewRegistry(8)
	err := r.Set("0bad", Int32(1))
	assert.Error(t, err)
}

func TestRegistryCapacity(t *testing.T) {
	r := NewRegistry(2)
	require.NoError(t, r.Set("a", Int32(1)))
	require.NoError(t, r.Set("b", Int32(2)))
	assert.ErrorIs(t, r.Set("c", Int32(3)), ErrRegistryFull)

	// overwriting an existing key doesn't consume capacity
	require.NoError(t, r.Set("a", Int32(4)))
}

func TestRegistryDelete(t *testing.T) {
	r := NewRegistry(8)
	require.NoError(t, r.Set("a", Int32(1)))
	require.NoError(t, r.Delete("a"))
	_, ok := r.Get("a")
	assert.False(t, ok)
}
