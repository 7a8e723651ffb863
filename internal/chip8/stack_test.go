package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack()

	require.NoError(t, s.Push(0x202))
	require.Equal(t, 1, s.Depth())

	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, uint16(0x202), v)
	require.Equal(t, 0, s.Depth())
}

func TestStackOverflow(t *testing.T) {
	s := NewStack()
	for i := 0; i < StackDepth; i++ {
		require.NoError(t, s.Push(uint16(i)))
	}
	require.ErrorIs(t, s.Push(0x999), ErrStackOverflow)
}

func TestStackUnderflow(t *testing.T) {
	s := NewStack()
	_, err := s.Pop()
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestStackRoundTrip(t *testing.T) {
	// Any sequence of pushes not exceeding depth 16 followed by an equal
	// number of pops returns every address in LIFO order.
	s := NewStack()
	addrs := []uint16{0x202, 0x400, 0x600, 0x800}

	for _, a := range addrs {
		require.NoError(t, s.Push(a))
	}
	for i := len(addrs) - 1; i >= 0; i-- {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, addrs[i], v)
	}
	require.Equal(t, 0, s.Depth())
}
