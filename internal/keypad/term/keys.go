// Package term maps termbox-go keyboard events onto a chip8.Keypad. It
// shares the termbox session internal/display/term.Screen.Init opens.
package term

import (
	"time"

	"github.com/bhamilton/chippy8/internal/chip8"
	termbox "github.com/nsf/termbox-go"
)

// keyMap mirrors the layout used by internal/keypad/pixel, substituting
// termbox key runes for pixelgl buttons.
var keyMap = map[rune]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// releaseDelay is how long a key is considered "down" after a keypress
// event, since termbox has no native key-up event for regular keys.
const releaseDelay = 150 * time.Millisecond

// Poller pumps termbox.PollEvent in the background and reflects presses
// onto a chip8.Keypad, auto-releasing each key after releaseDelay.
type Poller struct {
	keypad *chip8.Keypad
	quit   chan struct{}
}

// NewPoller starts the background termbox event pump. Call Stop to end it.
func NewPoller(keypad *chip8.Keypad) *Poller {
	p := &Poller{keypad: keypad, quit: make(chan struct{})}
	go p.pump()
	return p
}

func (p *Poller) pump() {
	events := make(chan termbox.Event)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	for {
		select {
		case <-p.quit:
			return
		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			key, ok := keyMap[ev.Ch]
			if !ok {
				continue
			}
			p.keypad.SetPressed(key, true)
			go p.release(key)
		}
	}
}

func (p *Poller) release(key byte) {
	select {
	case <-time.After(releaseDelay):
		p.keypad.SetPressed(key, false)
	case <-p.quit:
	}
}

// Stop ends the background event pump. It does not close the termbox
// session; that's internal/display/term.Screen.Close's job.
func (p *Poller) Stop() {
	close(p.quit)
}
