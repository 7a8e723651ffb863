package main

import (
	"github.com/bhamilton/chippy8/cmd"
	"github.com/faiface/pixel/pixelgl"
)

func main() {
	// pixelgl needs access to the main thread for windowed display
	// backends, so every run (including the terminal backend) goes
	// through it.
	pixelgl.Run(cmd.Execute)
}
