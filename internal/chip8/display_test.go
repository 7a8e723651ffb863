package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplayDrawSetsPixels(t *testing.T) {
	d := NewDisplay()

	// The '0' font glyph: 0xF0 0x90 0x90 0x90 0xF0.
	collision := d.Draw(0, 0, []byte{0xF0, 0x90, 0x90, 0x90, 0xF0})
	require.False(t, collision)
	require.True(t, d.At(0, 0))
	require.True(t, d.At(3, 0))
	require.False(t, d.At(4, 0))
}

func TestDisplayXORIsInvolution(t *testing.T) {
	d := NewDisplay()
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}

	before := d.Frame()
	d.Draw(10, 10, sprite)
	collision := d.Draw(10, 10, sprite)

	require.True(t, collision)
	require.Equal(t, before, d.Frame())
}

func TestDisplayWraparoundX(t *testing.T) {
	d := NewDisplay()

	d.Draw(63, 0, []byte{0x80})
	require.True(t, d.At(63, 0))

	d2 := NewDisplay()
	d2.Draw(64, 0, []byte{0x80})
	require.True(t, d2.At(0, 0))
}

func TestDisplayWraparoundY(t *testing.T) {
	d := NewDisplay()
	d.Draw(0, 32, []byte{0x80})
	require.True(t, d.At(0, 0))
}

func TestDisplayClear(t *testing.T) {
	d := NewDisplay()
	d.Draw(0, 0, []byte{0xFF})
	d.Clear()

	for i := range d.Frame() {
		require.False(t, d.Frame()[i])
	}
}
