// Package audio plays a beep whenever the VM's sound timer transitions
// from zero to nonzero. It intentionally does not synthesize anything
// beyond "play the clip" — the CHIP-8 sound timer has no pitch or
// waveform of its own to model.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Beeper decodes an mp3 clip once and replays it from the start each time
// a signal arrives on the channel it watches.
type Beeper struct {
	streamer beep.StreamSeeker
	format   beep.Format
	file     *os.File
}

// NewBeeper opens and decodes the mp3 at path and initializes the speaker
// for playback at the clip's sample rate.
func NewBeeper(path string) (*Beeper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	return &Beeper{streamer: streamer, format: format, file: f}, nil
}

// Watch plays the clip once for every value received on signals, until
// signals is closed.
func (b *Beeper) Watch(signals <-chan struct{}) {
	for range signals {
		if err := b.streamer.Seek(0); err != nil {
			continue
		}
		speaker.Play(b.streamer)
	}
}

// Close releases the underlying mp3 file.
func (b *Beeper) Close() error {
	return b.file.Close()
}
