package chip8

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeypadIsPressed(t *testing.T) {
	k := NewKeypad()
	require.False(t, k.IsPressed(0x5))

	k.SetPressed(0x5, true)
	require.True(t, k.IsPressed(0x5))

	k.SetPressed(0x5, false)
	require.False(t, k.IsPressed(0x5))
}

func TestKeypadWaitForPress(t *testing.T) {
	k := NewKeypad()

	go func() {
		time.Sleep(10 * time.Millisecond)
		k.SetPressed(0xA, true)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	key, err := k.WaitForPress(ctx)
	require.NoError(t, err)
	require.Equal(t, byte(0xA), key)
}

func TestKeypadWaitForPressCancelled(t *testing.T) {
	k := NewKeypad()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := k.WaitForPress(ctx)
	require.Error(t, err)
}
