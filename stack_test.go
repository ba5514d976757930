package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPopHeight(t *testing.T) {
	s := NewStack(4)
	require.NoError(t, s.Push(Int32(1)))
	require.NoError(t, s.Push(Int32(2)))
	assert.Equal(t, 2, s.Len())

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, int32(2), v.Int)
	assert.Equal(t, 1, s.Len())
}

func TestStackOverflow(t *testing.T) {
	s := NewStack(1)
	require.NoError(t, s.Push(Int32(1)))
	assert.ErrorIs(t, s.Push(Int32(2)), ErrOverflow)
}

func TestStackUnderflow(t *testing.T) {
	s := NewStack(4)
	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestStackPushCopies(t *testing.T) {
	s := NewStack(4)
	v := Quotation(Int32(1))
	require.NoError(t, s.Push(v))
	v.Items[0].Int = 99

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, int32(1), top.Items[0].Int, "pushed value must not alias the caller's copy")
}

func TestStackItemsSnapshot(t *testing.T) {
	s := NewStack(4)
	require.NoError(t, s.Push(Int32(1)))
	require.NoError(t, s.Push(Int32(2)))
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int32(1), items[0].Int)
	assert.Equal(t, int32(2), items[1].Int)
}

func TestStackClear(t *testing.T) {
	s := NewStack(4)
	require.NoError(t, s.Push(Int32(1)))
	s.Clear()
	assert.Equal(t, 0, s.Len())
}
