package chip8

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultInstructionsPerSecond is the instruction rate used when Options
// doesn't specify one. 700 IPS sits comfortably in the 500-1000 range most
// CHIP-8 ROMs were tuned against.
const DefaultInstructionsPerSecond = 700

const timerHz = 60

// DisplaySink renders a Frame produced by Display. Implementations live
// outside this package (internal/display/pixel, internal/display/term)
// and must be safe to call from the VM's single goroutine.
type DisplaySink interface {
	Render(frame Frame) error
}

// Options configures a VM's driver loop.
type Options struct {
	// InstructionsPerSecond paces the fetch-decode-execute loop,
	// decoupled from the fixed 60 Hz timer cadence. Zero selects
	// DefaultInstructionsPerSecond.
	InstructionsPerSecond int

	// HaltOnSpinJump treats a JP instruction that jumps to its own
	// address ("spin halt") as end-of-program and returns cleanly from
	// Run instead of looping forever.
	HaltOnSpinJump bool
}

func (o Options) withDefaults() Options {
	if o.InstructionsPerSecond <= 0 {
		o.InstructionsPerSecond = DefaultInstructionsPerSecond
	}
	return o
}

// VM ties together the CHIP-8 machine state and the collaborators needed
// to drive it: a display sink, a keyboard source, and a random-byte
// source.
type VM struct {
	Memory    *Memory
	Registers *Registers
	Stack     *Stack
	Display   *Display
	Keys      KeySource
	Rand      RandSource

	// SoundChan receives a signal each time the sound timer transitions
	// from zero to nonzero, so an audio collaborator can react without
	// synthesizing anything beyond "the tone is playing" / "it isn't."
	SoundChan chan struct{}

	// Logger, if set, receives a register trace before every instruction
	// Run dispatches. Nil disables tracing entirely (the zero value).
	Logger *slog.Logger

	sink     DisplaySink
	opts     Options
	lastTick time.Time
}

// NewVM constructs a VM with fresh Memory, Registers, Stack, and Display,
// the given display sink and keyboard source, and the default random
// source.
func NewVM(sink DisplaySink, keys KeySource, opts Options) *VM {
	return &VM{
		Memory:    NewMemory(),
		Registers: NewRegisters(),
		Stack:     NewStack(),
		Display:   NewDisplay(),
		Keys:      keys,
		Rand:      DefaultRandSource,
		SoundChan: make(chan struct{}, 1),
		sink:      sink,
		opts:      opts.withDefaults(),
	}
}

// LoadProgram copies rom into memory starting at ProgramStart.
func (vm *VM) LoadProgram(rom []byte) error {
	return vm.Memory.LoadProgram(rom)
}

// Step performs one fetch-decode-execute cycle: fetch the word at PC,
// advance PC by 2, decode, and dispatch. It does not tick timers or
// render — callers driving their own loop (tests, Run) do that themselves.
func (vm *VM) Step(ctx context.Context) error {
	pc := vm.Registers.PC()

	word, err := vm.Memory.ReadWord(pc)
	if err != nil {
		return &MachineError{Err: err, PC: pc}
	}

	vm.Registers.AdvancePC()

	ins := Decode(word)
	if ins.Op == OpUnknown {
		return &MachineError{Err: ErrUnknownOpcode, PC: pc, Detail: fmt.Sprintf("word %#04x", word)}
	}

	if err := vm.execute(ctx, ins); err != nil {
		return &MachineError{Err: err, PC: pc, Detail: fmt.Sprintf("opcode %#04x", word)}
	}
	return nil
}

// Run drives the fetch-decode-execute cycle at opts.InstructionsPerSecond,
// sampling a monotonic clock to decrement DT/ST on 60 Hz boundaries and
// rendering through the configured DisplaySink after every instruction.
// It returns when ctx is cancelled, when HaltOnSpinJump is set and a
// spin-halt is reached, or when a fatal *MachineError occurs.
func (vm *VM) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(vm.opts.InstructionsPerSecond)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	vm.lastTick = time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if vm.opts.HaltOnSpinJump && vm.atSpinJump() {
				return nil
			}
			if vm.Logger != nil {
				vm.Logger.Debug(vm.Trace())
			}
			if err := vm.Step(ctx); err != nil {
				return err
			}
			vm.tickTimers()
			if err := vm.sink.Render(vm.Display.Frame()); err != nil {
				return err
			}
		}
	}
}

// atSpinJump reports whether the instruction at the current PC is a JP to
// itself, the conventional "end of program" idiom.
func (vm *VM) atSpinJump() bool {
	pc := vm.Registers.PC()
	word, err := vm.Memory.ReadWord(pc)
	if err != nil {
		return false
	}
	ins := Decode(word)
	return ins.Op == OpJP && ins.NNN == pc
}

// tickTimers decrements DT and ST for every 1/60s interval that has
// elapsed since the last call, catching up if the loop was paused rather
// than resetting to a single tick.
func (vm *VM) tickTimers() {
	now := time.Now()
	tickPeriod := time.Second / timerHz
	elapsed := now.Sub(vm.lastTick)
	ticks := int(elapsed / tickPeriod)
	if ticks <= 0 {
		return
	}
	vm.lastTick = vm.lastTick.Add(time.Duration(ticks) * tickPeriod)

	for i := 0; i < ticks; i++ {
		if vm.Registers.DT() > 0 {
			vm.Registers.SetDT(vm.Registers.DT() - 1)
		}
		if vm.Registers.ST() > 0 {
			if vm.Registers.ST() == 1 {
				select {
				case vm.SoundChan <- struct{}{}:
				default:
				}
			}
			vm.Registers.SetST(vm.Registers.ST() - 1)
		}
	}
}

// Trace renders the current PC and full register file, for --debug logging.
func (vm *VM) Trace() string {
	return fmt.Sprintf("pc=%#04x %s", vm.Registers.PC(), vm.Registers.String())
}

// execute applies a decoded Instruction's effect to machine state. PC has
// already been advanced past the fetched word by the caller, so CALL, JP,
// and the skip family operate on the address of the next instruction.
func (vm *VM) execute(ctx context.Context, ins Instruction) error {
	r := vm.Registers

	switch ins.Op {
	case OpCLS:
		vm.Display.Clear()

	case OpRET:
		addr, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		r.setSP(uint8(vm.Stack.Depth()))
		r.SetPC(addr)

	case OpSYS:
		// No-op: modern interpreters ignore 0NNN calls into host routines.

	case OpJP:
		r.SetPC(ins.NNN)

	case OpCALL:
		if err := vm.Stack.Push(r.PC()); err != nil {
			return err
		}
		r.setSP(uint8(vm.Stack.Depth()))
		r.SetPC(ins.NNN)

	case OpSEVxKK:
		if r.V(ins.X) == ins.KK {
			r.SkipNext()
		}

	case OpSNEVxKK:
		if r.V(ins.X) != ins.KK {
			r.SkipNext()
		}

	case OpSEVxVy:
		if r.V(ins.X) == r.V(ins.Y) {
			r.SkipNext()
		}

	case OpLDVxKK:
		r.SetV(ins.X, ins.KK)

	case OpADDVxKK:
		r.SetV(ins.X, r.V(ins.X)+ins.KK)

	case OpLDVxVy:
		r.SetV(ins.X, r.V(ins.Y))

	case OpOR:
		r.SetV(ins.X, r.V(ins.X)|r.V(ins.Y))

	case OpAND:
		r.SetV(ins.X, r.V(ins.X)&r.V(ins.Y))

	case OpXOR:
		r.SetV(ins.X, r.V(ins.X)^r.V(ins.Y))

	case OpADDVxVy:
		vx, vy := r.V(ins.X), r.V(ins.Y)
		sum := uint16(vx) + uint16(vy)
		var carry byte
		if sum >= 256 {
			carry = 1
		}
		r.SetV(ins.X, byte(sum))
		r.SetV(0xF, carry) // flag write last: wins even if X is VF

	case OpSUB:
		vx, vy := r.V(ins.X), r.V(ins.Y)
		var flag byte
		if vx > vy {
			flag = 1
		}
		r.SetV(ins.X, vx-vy)
		r.SetV(0xF, flag)

	case OpSHR:
		vx := r.V(ins.X)
		flag := vx & 0x01
		r.SetV(ins.X, vx>>1)
		r.SetV(0xF, flag)

	case OpSUBN:
		vx, vy := r.V(ins.X), r.V(ins.Y)
		var flag byte
		if vy > vx {
			flag = 1
		}
		r.SetV(ins.X, vy-vx)
		r.SetV(0xF, flag)

	case OpSHL:
		vx := r.V(ins.X)
		flag := (vx >> 7) & 0x01
		r.SetV(ins.X, vx<<1)
		r.SetV(0xF, flag)

	case OpSNEVxVy:
		if r.V(ins.X) != r.V(ins.Y) {
			r.SkipNext()
		}

	case OpLDI:
		r.SetI(ins.NNN)

	case OpJPV0:
		r.SetPC(ins.NNN + uint16(r.V(0)))

	case OpRND:
		r.SetV(ins.X, vm.Rand.NextByte()&ins.KK)

	case OpDRW:
		return vm.executeDRW(ins)

	case OpSKP:
		if vm.Keys.IsPressed(r.V(ins.X) & 0x0F) {
			r.SkipNext()
		}

	case OpSKNP:
		if !vm.Keys.IsPressed(r.V(ins.X) & 0x0F) {
			r.SkipNext()
		}

	case OpLDVxDT:
		r.SetV(ins.X, r.DT())

	case OpLDVxK:
		key, err := vm.Keys.WaitForPress(ctx)
		if err != nil {
			return err
		}
		r.SetV(ins.X, key)

	case OpLDDTVx:
		r.SetDT(r.V(ins.X))

	case OpLDSTVx:
		wasSilent := r.ST() == 0
		r.SetST(r.V(ins.X))
		if wasSilent && r.ST() > 0 {
			select {
			case vm.SoundChan <- struct{}{}:
			default:
			}
		}

	case OpADDIVx:
		r.SetI(r.I() + uint16(r.V(ins.X)))

	case OpLDFVx:
		r.SetI(FontAddress(r.V(ins.X) & 0x0F))

	case OpLDBVx:
		return vm.executeBCD(ins)

	case OpLDIVx:
		for idx := byte(0); idx <= ins.X; idx++ {
			if err := vm.Memory.Write(r.I()+uint16(idx), r.V(idx)); err != nil {
				return err
			}
		}

	case OpLDVxI:
		for idx := byte(0); idx <= ins.X; idx++ {
			b, err := vm.Memory.Read(r.I() + uint16(idx))
			if err != nil {
				return err
			}
			r.SetV(idx, b)
		}

	default:
		return fmt.Errorf("%w: %#04x", ErrUnknownOpcode, ins.Raw)
	}

	return nil
}

// executeDRW reads ins.N sprite bytes from memory at I, XOR-draws them at
// (Vx, Vy), and sets VF to the collision flag.
func (vm *VM) executeDRW(ins Instruction) error {
	r := vm.Registers
	rows := make([]byte, ins.N)
	base := r.I()
	for i := byte(0); i < ins.N; i++ {
		b, err := vm.Memory.Read(base + uint16(i))
		if err != nil {
			return err
		}
		rows[i] = b
	}

	collision := vm.Display.Draw(r.V(ins.X), r.V(ins.Y), rows)
	if collision {
		r.SetV(0xF, 1)
	} else {
		r.SetV(0xF, 0)
	}
	return nil
}

// executeBCD writes the binary-coded decimal decomposition of Vx to
// memory at I, I+1, I+2 (hundreds, tens, ones).
func (vm *VM) executeBCD(ins Instruction) error {
	r := vm.Registers
	v := r.V(ins.X)
	i := r.I()

	if err := vm.Memory.Write(i, v/100); err != nil {
		return err
	}
	if err := vm.Memory.Write(i+1, (v/10)%10); err != nil {
		return err
	}
	return vm.Memory.Write(i+2, v%10)
}
