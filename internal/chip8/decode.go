package chip8

// Opcode tags the 35 CHIP-8 instruction classes plus Unknown, which the
// executor treats as fatal.
type Opcode int

const (
	OpUnknown Opcode = iota
	OpCLS
	OpRET
	OpSYS
	OpJP
	OpCALL
	OpSEVxKK
	OpSNEVxKK
	OpSEVxVy
	OpLDVxKK
	OpADDVxKK
	OpLDVxVy
	OpOR
	OpAND
	OpXOR
	OpADDVxVy
	OpSUB
	OpSHR
	OpSUBN
	OpSHL
	OpSNEVxVy
	OpLDI
	OpJPV0
	OpRND
	OpDRW
	OpSKP
	OpSKNP
	OpLDVxDT
	OpLDVxK
	OpLDDTVx
	OpLDSTVx
	OpADDIVx
	OpLDFVx
	OpLDBVx
	OpLDIVx
	OpLDVxI
)

// Instruction is a decoded opcode: a tag plus whichever operand fields its
// class uses. Unused fields are left zero.
type Instruction struct {
	Op  Opcode
	X   byte   // register operand (nibble 2)
	Y   byte   // register operand (nibble 3)
	N   byte   // low nibble, sprite height for DRW
	KK  byte   // low byte
	NNN uint16 // low 12 bits
	Raw uint16 // the undecoded word, for error messages
}

// Decode is a pure, total function from a 16-bit word to an Instruction.
// Every u16 value maps to exactly one Instruction; values that match no
// opcode pattern decode to OpUnknown. Matches are specific-before-general:
// 0x00E0/0x00EE are checked before the general 0NNN bucket, and 8XY0-8XYE
// fall through to Unknown on an unmatched low nibble rather than being
// folded into the outer 0x8000 case.
func Decode(word uint16) Instruction {
	ins := Instruction{Raw: word}

	x := byte((word & 0x0F00) >> 8)
	y := byte((word & 0x00F0) >> 4)
	n := byte(word & 0x000F)
	kk := byte(word & 0x00FF)
	nnn := word & 0x0FFF

	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x00E0:
			ins.Op = OpCLS
		case 0x00EE:
			ins.Op = OpRET
		default:
			ins.Op = OpSYS
			ins.NNN = nnn
		}
	case 0x1000:
		ins.Op = OpJP
		ins.NNN = nnn
	case 0x2000:
		ins.Op = OpCALL
		ins.NNN = nnn
	case 0x3000:
		ins.Op = OpSEVxKK
		ins.X, ins.KK = x, kk
	case 0x4000:
		ins.Op = OpSNEVxKK
		ins.X, ins.KK = x, kk
	case 0x5000:
		if n == 0x0 {
			ins.Op = OpSEVxVy
			ins.X, ins.Y = x, y
		}
	case 0x6000:
		ins.Op = OpLDVxKK
		ins.X, ins.KK = x, kk
	case 0x7000:
		ins.Op = OpADDVxKK
		ins.X, ins.KK = x, kk
	case 0x8000:
		ins.X, ins.Y = x, y
		switch n {
		case 0x0:
			ins.Op = OpLDVxVy
		case 0x1:
			ins.Op = OpOR
		case 0x2:
			ins.Op = OpAND
		case 0x3:
			ins.Op = OpXOR
		case 0x4:
			ins.Op = OpADDVxVy
		case 0x5:
			ins.Op = OpSUB
		case 0x6:
			ins.Op = OpSHR
		case 0x7:
			ins.Op = OpSUBN
		case 0xE:
			ins.Op = OpSHL
		default:
			ins.X, ins.Y = 0, 0
		}
	case 0x9000:
		if n == 0x0 {
			ins.Op = OpSNEVxVy
			ins.X, ins.Y = x, y
		}
	case 0xA000:
		ins.Op = OpLDI
		ins.NNN = nnn
	case 0xB000:
		ins.Op = OpJPV0
		ins.NNN = nnn
	case 0xC000:
		ins.Op = OpRND
		ins.X, ins.KK = x, kk
	case 0xD000:
		ins.Op = OpDRW
		ins.X, ins.Y, ins.N = x, y, n
	case 0xE000:
		switch kk {
		case 0x9E:
			ins.Op = OpSKP
			ins.X = x
		case 0xA1:
			ins.Op = OpSKNP
			ins.X = x
		}
	case 0xF000:
		switch kk {
		case 0x07:
			ins.Op = OpLDVxDT
			ins.X = x
		case 0x0A:
			ins.Op = OpLDVxK
			ins.X = x
		case 0x15:
			ins.Op = OpLDDTVx
			ins.X = x
		case 0x18:
			ins.Op = OpLDSTVx
			ins.X = x
		case 0x1E:
			ins.Op = OpADDIVx
			ins.X = x
		case 0x29:
			ins.Op = OpLDFVx
			ins.X = x
		case 0x33:
			ins.Op = OpLDBVx
			ins.X = x
		case 0x55:
			ins.Op = OpLDIVx
			ins.X = x
		case 0x65:
			ins.Op = OpLDVxI
			ins.X = x
		}
	}

	return ins
}
