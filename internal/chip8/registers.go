package chip8

import "fmt"

// NumRegisters is the count of general-purpose 8-bit registers, V0-VF.
const NumRegisters = 16

// Registers holds the CHIP-8 register file: 16 general registers, the
// index register I, the delay and sound timers, the program counter, and
// the stack pointer.
//
// The general registers are a flat array rather than 16 named fields —
// FX55/FX65 range-copy over V0..VX, which a named-field design forces into
// a 16-arm switch on every access.
type Registers struct {
	v  [NumRegisters]byte
	i  uint16
	dt byte
	st byte
	pc uint16
	sp uint8
}

// NewRegisters returns a Registers with PC set to ProgramStart and
// everything else zeroed.
func NewRegisters() *Registers {
	return &Registers{pc: ProgramStart}
}

// V returns the value of general register idx (only the low 4 bits of idx
// are significant).
func (r *Registers) V(idx byte) byte { return r.v[idx&0x0F] }

// SetV sets general register idx.
func (r *Registers) SetV(idx byte, val byte) { r.v[idx&0x0F] = val }

// I returns the index register, masked to its effective 12 bits.
func (r *Registers) I() uint16 { return r.i & 0x0FFF }

// SetI sets the index register, masking to 12 bits.
func (r *Registers) SetI(v uint16) { r.i = v & 0x0FFF }

// DT returns the delay timer.
func (r *Registers) DT() byte { return r.dt }

// SetDT sets the delay timer.
func (r *Registers) SetDT(v byte) { r.dt = v }

// ST returns the sound timer.
func (r *Registers) ST() byte { return r.st }

// SetST sets the sound timer.
func (r *Registers) SetST(v byte) { r.st = v }

// PC returns the program counter.
func (r *Registers) PC() uint16 { return r.pc }

// SetPC sets the program counter.
func (r *Registers) SetPC(v uint16) { r.pc = v }

// AdvancePC moves the program counter to the next instruction. The driver
// calls this before dispatch, so CALL/JP/skip opcodes naturally operate on
// the address of the instruction that follows the one being executed.
func (r *Registers) AdvancePC() { r.pc += 2 }

// SkipNext advances PC by an additional word, used by the SE/SNE/SKP/SKNP
// family when their condition holds.
func (r *Registers) SkipNext() { r.pc += 2 }

// SP returns the stack depth as tracked by the register file's copy of the
// stack pointer (kept in sync with Stack by the VM's CALL and RET).
func (r *Registers) SP() uint8 { return r.sp }

func (r *Registers) setSP(v uint8) { r.sp = v }

// String renders every register in hex, for trace logging.
func (r *Registers) String() string {
	return fmt.Sprintf(
		"V0=%02x V1=%02x V2=%02x V3=%02x V4=%02x V5=%02x V6=%02x V7=%02x "+
			"V8=%02x V9=%02x VA=%02x VB=%02x VC=%02x VD=%02x VE=%02x VF=%02x "+
			"I=%03x DT=%02x ST=%02x PC=%04x SP=%d",
		r.v[0x0], r.v[0x1], r.v[0x2], r.v[0x3], r.v[0x4], r.v[0x5], r.v[0x6], r.v[0x7],
		r.v[0x8], r.v[0x9], r.v[0xA], r.v[0xB], r.v[0xC], r.v[0xD], r.v[0xE], r.v[0xF],
		r.I(), r.dt, r.st, r.pc, r.sp,
	)
}
