// Package term renders a chip8.Frame to a termbox-go terminal screen, one
// cell per pixel. internal/keypad/term shares the termbox session this
// package initializes.
package term

import (
	"fmt"

	"github.com/bhamilton/chippy8/internal/chip8"
	termbox "github.com/nsf/termbox-go"
)

// Screen renders to the terminal via termbox-go. Init must be called
// before the first Render and Close once the VM stops.
type Screen struct {
	fg, bg termbox.Attribute
}

// NewScreen returns a Screen that fills "on" pixels with the foreground
// attribute and clears "off" pixels with the background attribute.
func NewScreen(fg, bg termbox.Attribute) *Screen {
	return &Screen{fg: fg, bg: bg}
}

// Init initializes the termbox session. Callers must pair this with Close.
func (s *Screen) Init() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("term: init: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	return nil
}

// Close tears down the termbox session.
func (s *Screen) Close() {
	termbox.Close()
}

// Render draws one cell per display pixel: ' ' with the background
// attribute off, and a solid block with the foreground attribute on.
func (s *Screen) Render(frame chip8.Frame) error {
	termbox.Clear(s.bg, s.bg)
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if !frame[y*chip8.DisplayWidth+x] {
				continue
			}
			termbox.SetCell(x, y, ' ', s.fg, s.fg)
		}
	}
	return termbox.Flush()
}
