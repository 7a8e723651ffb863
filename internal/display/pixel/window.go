// Package pixel renders a chip8.Frame to a pixelgl window and doubles as
// the keyboard source for internal/keypad/pixel, which shares the same
// *pixelgl.Window.
package pixel

import (
	"fmt"

	"github.com/bhamilton/chippy8/internal/chip8"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  float64 = 1024
	screenHeight float64 = 768
)

// Window embeds a pixelgl window and renders a chip8.Frame as a grid of
// filled rectangles, flipping the Y axis to account for pixel's
// bottom-left origin versus the display's top-left row 0.
type Window struct {
	*pixelgl.Window
}

// NewWindow opens a pixelgl window sized for the CHIP-8's 64x32 display.
func NewWindow(title string) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("pixel: new window: %w", err)
	}
	return &Window{Window: w}, nil
}

// Render draws every set pixel in frame as a rectangle and flips the
// window's buffer.
func (w *Window) Render(frame chip8.Frame) error {
	if w.Window.Closed() {
		return fmt.Errorf("pixel: window closed")
	}

	w.Clear(colornames.Black)
	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)

	cellW := screenWidth / chip8.DisplayWidth
	cellH := screenHeight / chip8.DisplayHeight

	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if !frame[y*chip8.DisplayWidth+x] {
				continue
			}
			flippedY := chip8.DisplayHeight - 1 - y
			draw.Push(pixel.V(cellW*float64(x), cellH*float64(flippedY)))
			draw.Push(pixel.V(cellW*float64(x)+cellW, cellH*float64(flippedY)+cellH))
			draw.Rectangle(0)
		}
	}

	draw.Draw(w)
	w.Update()
	return nil
}
