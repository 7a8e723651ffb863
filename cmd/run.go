package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bhamilton/chippy8/internal/audio"
	"github.com/bhamilton/chippy8/internal/chip8"
	displaypixel "github.com/bhamilton/chippy8/internal/display/pixel"
	displayterm "github.com/bhamilton/chippy8/internal/display/term"
	keypadpixel "github.com/bhamilton/chippy8/internal/keypad/pixel"
	keypadterm "github.com/bhamilton/chippy8/internal/keypad/term"
	"github.com/bhamilton/chippy8/internal/rom"
	"github.com/bhamilton/chippy8/internal/vmlog"
	termbox "github.com/nsf/termbox-go"
	"github.com/spf13/cobra"
)

var (
	flagDisplay string
	flagIPS     int
	flagDebug   bool
	flagBeep    string
	flagHalt    bool
)

// runCmd runs the chippy8 interpreter and waits for a shutdown signal to exit.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run the chippy8 interpreter",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().StringVar(&flagDisplay, "display", "term", "display backend: term or pixel")
	runCmd.Flags().IntVar(&flagIPS, "ips", chip8.DefaultInstructionsPerSecond, "instructions executed per second")
	runCmd.Flags().BoolVar(&flagDebug, "debug", false, "log a register trace before every instruction")
	runCmd.Flags().StringVar(&flagBeep, "beep", "", "path to an mp3 clip to play on sound-timer transitions")
	runCmd.Flags().BoolVar(&flagHalt, "halt-on-spin", false, "exit cleanly when the program reaches a JP-to-self")
}

func runChippy(cmd *cobra.Command, args []string) {
	logger := vmlog.New(flagDebug)

	program, err := rom.Load(args[0])
	if err != nil {
		logger.Error("loading rom", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sink, keys, teardown, err := buildPeripherals(flagDisplay)
	if err != nil {
		logger.Error("initializing display", "error", err)
		os.Exit(1)
	}
	defer teardown()

	vm := chip8.NewVM(sink, keys, chip8.Options{
		InstructionsPerSecond: flagIPS,
		HaltOnSpinJump:        flagHalt,
	})
	if flagDebug {
		vm.Logger = logger
	}
	if err := vm.LoadProgram(program); err != nil {
		teardown()
		logger.Error("loading program", "error", err)
		os.Exit(1)
	}

	closeAudio := func() {}
	if flagBeep != "" {
		beeper, err := audio.NewBeeper(flagBeep)
		if err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			closeAudio = func() { beeper.Close() }
			defer closeAudio()
			go beeper.Watch(vm.SoundChan)
		}
	}

	if err := vm.Run(ctx); err != nil && err != context.Canceled {
		closeAudio()
		teardown()
		logger.Error("vm halted", "error", err)
		os.Exit(1)
	}
}

// buildPeripherals assembles the display sink, keyboard source, and a
// teardown func to run on exit for the chosen backend.
func buildPeripherals(backend string) (chip8.DisplaySink, chip8.KeySource, func(), error) {
	keypad := chip8.NewKeypad()

	switch backend {
	case "pixel":
		win, err := displaypixel.NewWindow("chippy8")
		if err != nil {
			return nil, nil, nil, err
		}
		poller := keypadpixel.NewPoller(win.Window, keypad)
		return &pixelSink{win: win, poller: poller}, keypad, func() {}, nil

	case "term":
		screen := displayterm.NewScreen(termbox.ColorWhite, termbox.ColorBlack)
		if err := screen.Init(); err != nil {
			return nil, nil, nil, err
		}
		poller := keypadterm.NewPoller(keypad)
		return screen, keypad, func() {
			poller.Stop()
			screen.Close()
		}, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown display backend %q", backend)
	}
}

// pixelSink couples rendering and key polling: a pixelgl window only pumps
// its event queue during Update, which Render calls, so the keypad poller
// must run right after each frame — and on the same (main) thread pixelgl
// requires for all window calls.
type pixelSink struct {
	win    *displaypixel.Window
	poller *keypadpixel.Poller
}

func (s *pixelSink) Render(frame chip8.Frame) error {
	if err := s.win.Render(frame); err != nil {
		return err
	}
	s.poller.Poll()
	return nil
}
