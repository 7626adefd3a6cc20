package input

import "sync"

// Keyboard tracks the pressed state of keys across two frames: the live
// state fed by key events, and a snapshot of it taken at the last Sync.
// Comparing the two answers the edge queries JustPressed and JustReleased.
type Keyboard struct {
	mu       sync.RWMutex
	current  map[Code]bool
	previous map[Code]bool
}

// NewKeyboard creates an empty keyboard state. Every key reads as released
// until a press event arrives.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		current:  make(map[Code]bool),
		previous: make(map[Code]bool),
	}
}

// Press records that a key went down. Safe to call from the event
// goroutine at any time; calling it again for a held key is harmless, so
// toolkit auto-repeat needs no filtering.
func (k *Keyboard) Press(code Code) {
	k.mu.Lock()
	k.current[code] = true
	k.mu.Unlock()
}

// Release records that a key went up.
func (k *Keyboard) Release(code Code) {
	k.mu.Lock()
	k.current[code] = false
	k.mu.Unlock()
}

// IsPressed reports whether the key is held down right now.
func (k *Keyboard) IsPressed(code Code) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.current[code]
}

// JustPressed reports whether the key went down since the last Sync.
// It stays true for the rest of the frame and turns false at the next Sync.
func (k *Keyboard) JustPressed(code Code) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.current[code] && !k.previous[code]
}

// JustReleased reports whether the key went up since the last Sync.
func (k *Keyboard) JustReleased(code Code) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return !k.current[code] && k.previous[code]
}

// Sync freezes the live state into the previous-frame snapshot. Call once
// per tick, after all queries for the frame. Keys never seen by any event
// have no entry in either table and keep reading as released.
func (k *Keyboard) Sync() {
	k.mu.Lock()
	for code, down := range k.current {
		k.previous[code] = down
	}
	k.mu.Unlock()
}
