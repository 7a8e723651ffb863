package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeIsDeterministic(t *testing.T) {
	for _, word := range []uint16{0x0000, 0x00E0, 0x00EE, 0x1234, 0xFFFF, 0xABCD} {
		require.Equal(t, Decode(word), Decode(word))
	}
}

func TestDecodeTotalOverAllWords(t *testing.T) {
	// Every u16 value must decode to exactly one Instruction (possibly
	// OpUnknown) without panicking.
	for word := 0; word <= 0xFFFF; word++ {
		_ = Decode(uint16(word))
	}
}

func TestDecodeOpcodeTable(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		want Instruction
	}{
		{"CLS", 0x00E0, Instruction{Op: OpCLS, Raw: 0x00E0}},
		{"RET", 0x00EE, Instruction{Op: OpRET, Raw: 0x00EE}},
		{"SYS", 0x0123, Instruction{Op: OpSYS, NNN: 0x123, Raw: 0x0123}},
		{"JP", 0x1234, Instruction{Op: OpJP, NNN: 0x234, Raw: 0x1234}},
		{"CALL", 0x2345, Instruction{Op: OpCALL, NNN: 0x345, Raw: 0x2345}},
		{"SE_VxKK", 0x3A05, Instruction{Op: OpSEVxKK, X: 0xA, KK: 0x05, Raw: 0x3A05}},
		{"SNE_VxKK", 0x4A05, Instruction{Op: OpSNEVxKK, X: 0xA, KK: 0x05, Raw: 0x4A05}},
		{"SE_VxVy", 0x5AB0, Instruction{Op: OpSEVxVy, X: 0xA, Y: 0xB, Raw: 0x5AB0}},
		{"SE_VxVy bad low nibble is Unknown", 0x5AB1, Instruction{Op: OpUnknown, Raw: 0x5AB1}},
		{"LD_VxKK", 0x6A05, Instruction{Op: OpLDVxKK, X: 0xA, KK: 0x05, Raw: 0x6A05}},
		{"ADD_VxKK", 0x7A05, Instruction{Op: OpADDVxKK, X: 0xA, KK: 0x05, Raw: 0x7A05}},
		{"LD_VxVy", 0x8AB0, Instruction{Op: OpLDVxVy, X: 0xA, Y: 0xB, Raw: 0x8AB0}},
		{"OR", 0x8AB1, Instruction{Op: OpOR, X: 0xA, Y: 0xB, Raw: 0x8AB1}},
		{"AND", 0x8AB2, Instruction{Op: OpAND, X: 0xA, Y: 0xB, Raw: 0x8AB2}},
		{"XOR", 0x8AB3, Instruction{Op: OpXOR, X: 0xA, Y: 0xB, Raw: 0x8AB3}},
		{"ADD_VxVy", 0x8AB4, Instruction{Op: OpADDVxVy, X: 0xA, Y: 0xB, Raw: 0x8AB4}},
		{"SUB", 0x8AB5, Instruction{Op: OpSUB, X: 0xA, Y: 0xB, Raw: 0x8AB5}},
		{"SHR", 0x8AB6, Instruction{Op: OpSHR, X: 0xA, Y: 0xB, Raw: 0x8AB6}},
		{"SUBN", 0x8AB7, Instruction{Op: OpSUBN, X: 0xA, Y: 0xB, Raw: 0x8AB7}},
		{"SHL", 0x8ABE, Instruction{Op: OpSHL, X: 0xA, Y: 0xB, Raw: 0x8ABE}},
		{"8xy unmatched nibble is Unknown", 0x8AB8, Instruction{Op: OpUnknown, Raw: 0x8AB8}},
		{"SNE_VxVy", 0x9AB0, Instruction{Op: OpSNEVxVy, X: 0xA, Y: 0xB, Raw: 0x9AB0}},
		{"LD_I", 0xA123, Instruction{Op: OpLDI, NNN: 0x123, Raw: 0xA123}},
		{"JP_V0", 0xB123, Instruction{Op: OpJPV0, NNN: 0x123, Raw: 0xB123}},
		{"RND", 0xCA05, Instruction{Op: OpRND, X: 0xA, KK: 0x05, Raw: 0xCA05}},
		{"DRW", 0xDAB5, Instruction{Op: OpDRW, X: 0xA, Y: 0xB, N: 0x5, Raw: 0xDAB5}},
		{"SKP", 0xEA9E, Instruction{Op: OpSKP, X: 0xA, Raw: 0xEA9E}},
		{"SKNP", 0xEAA1, Instruction{Op: OpSKNP, X: 0xA, Raw: 0xEAA1}},
		{"Exxx unmatched is Unknown", 0xEA00, Instruction{Op: OpUnknown, Raw: 0xEA00}},
		{"LD_Vx_DT", 0xFA07, Instruction{Op: OpLDVxDT, X: 0xA, Raw: 0xFA07}},
		{"LD_Vx_K", 0xFA0A, Instruction{Op: OpLDVxK, X: 0xA, Raw: 0xFA0A}},
		{"LD_DT_Vx", 0xFA15, Instruction{Op: OpLDDTVx, X: 0xA, Raw: 0xFA15}},
		{"LD_ST_Vx", 0xFA18, Instruction{Op: OpLDSTVx, X: 0xA, Raw: 0xFA18}},
		{"ADD_I_Vx", 0xFA1E, Instruction{Op: OpADDIVx, X: 0xA, Raw: 0xFA1E}},
		{"LD_F_Vx", 0xFA29, Instruction{Op: OpLDFVx, X: 0xA, Raw: 0xFA29}},
		{"LD_B_Vx", 0xFA33, Instruction{Op: OpLDBVx, X: 0xA, Raw: 0xFA33}},
		{"LD_I_Vx", 0xFA55, Instruction{Op: OpLDIVx, X: 0xA, Raw: 0xFA55}},
		{"LD_Vx_I", 0xFA65, Instruction{Op: OpLDVxI, X: 0xA, Raw: 0xFA65}},
		{"Fxxx unmatched is Unknown", 0xFA99, Instruction{Op: OpUnknown, Raw: 0xFA99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Decode(tt.word))
		})
	}
}
