package chip8

import (
	"context"
	"sync"
)

// NumKeys is the size of the CHIP-8 hex keypad, 0x0-0xF.
const NumKeys = 16

// KeySource is the keyboard-polling collaborator the VM depends on.
// Implementations live outside this package (internal/keypad/pixel,
// internal/keypad/term) and must be safe to call from the VM's single
// goroutine.
type KeySource interface {
	// IsPressed reports whether the given key (0x0-0xF) is currently down.
	IsPressed(key byte) bool

	// WaitForPress blocks until a key is pressed or ctx is cancelled, and
	// returns the key's index. This is the sole blocking primitive in the
	// interpreter (used by the FX0A opcode).
	WaitForPress(ctx context.Context) (byte, error)
}

// Keypad is a built-in KeySource, useful for tests and for driving the VM
// without any real input backend. Presses are recorded with SetPressed and
// queued for WaitForPress. SetPressed is called from the backend's polling
// goroutine (internal/keypad/pixel, internal/keypad/term) while IsPressed
// is read from the VM's goroutine, so pressed is guarded by mu.
type Keypad struct {
	mu      sync.Mutex
	pressed [NumKeys]bool
	presses chan byte
}

// NewKeypad returns a Keypad with every key released.
func NewKeypad() *Keypad {
	return &Keypad{presses: make(chan byte, 1)}
}

// IsPressed reports whether key is currently down.
func (k *Keypad) IsPressed(key byte) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pressed[key&0x0F]
}

// SetPressed records a key transition. A press is also queued for the next
// WaitForPress call.
func (k *Keypad) SetPressed(key byte, down bool) {
	key &= 0x0F
	k.mu.Lock()
	k.pressed[key] = down
	k.mu.Unlock()
	if !down {
		return
	}
	select {
	case k.presses <- key:
	default:
	}
}

// WaitForPress blocks until a queued press is available or ctx is done.
func (k *Keypad) WaitForPress(ctx context.Context) (byte, error) {
	select {
	case key := <-k.presses:
		return key, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
