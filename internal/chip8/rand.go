package chip8

import "math/rand"

// RandSource is the random-byte collaborator the RND opcode depends on.
type RandSource interface {
	NextByte() byte
}

// mathRandSource is the default RandSource, backed by math/rand.
type mathRandSource struct{}

func (mathRandSource) NextByte() byte {
	return byte(rand.Intn(256))
}

// DefaultRandSource is used by a VM constructed without an explicit
// RandSource.
var DefaultRandSource RandSource = mathRandSource{}
