// Package rom loads CHIP-8 program files from disk.
package rom

import (
	"fmt"
	"os"

	"github.com/bhamilton/chippy8/internal/chip8"
)

// Load reads the ROM file at path. It rejects an empty file, and a file
// larger than the available program space with a wrapped
// chip8.ErrProgramTooLarge (chip8.Memory.LoadProgram repeats that check).
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rom: read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("rom: %s is empty", path)
	}
	if len(data) > chip8.MemorySize-chip8.ProgramStart {
		return nil, fmt.Errorf("rom: %s is %d bytes, %w", path, len(data), chip8.ErrProgramTooLarge)
	}
	return data, nil
}
