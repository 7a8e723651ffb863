// Package pixel polls a *pixelgl.Window for key events and feeds them into
// a chip8.Keypad, sharing the window opened by internal/display/pixel.
package pixel

import (
	"github.com/bhamilton/chippy8/internal/chip8"
	"github.com/faiface/pixel/pixelgl"
)

// keyMap follows the conventional 4x4 CHIP-8 keypad layout remapped onto
// the left side of a QWERTY keyboard:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keyMap = map[byte]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// Poller reads pixelgl.Window key state and reflects it onto a
// chip8.Keypad. Call Poll once per Run iteration, after the window's event
// queue has been updated.
type Poller struct {
	win    *pixelgl.Window
	keypad *chip8.Keypad
}

// NewPoller returns a Poller driving keypad from win's input state.
func NewPoller(win *pixelgl.Window, keypad *chip8.Keypad) *Poller {
	return &Poller{win: win, keypad: keypad}
}

// Poll reflects the window's current button state onto every CHIP-8 key.
func (p *Poller) Poll() {
	for key, button := range keyMap {
		switch {
		case p.win.JustPressed(button):
			p.keypad.SetPressed(key, true)
		case p.win.JustReleased(button):
			p.keypad.SetPressed(key, false)
		}
	}
}
