package input

import (
	"sync"
	"sync/atomic"
)

// Mouse tracks button state the same way Keyboard tracks keys, plus the
// cursor position and two per-frame signals: whether the cursor moved
// since the last Sync, and the net scroll distance since the last Sync.
type Mouse struct {
	mu       sync.RWMutex
	current  map[Code]bool
	previous map[Code]bool
	pos      Position

	moved atomic.Bool
	// Scroll accumulates with atomic adds because wheel events race the
	// game loop; a plain += would drop steps.
	scroll atomic.Int32
}

// NewMouse creates an empty mouse state. Buttons read as released, the
// position is (0,0) and the scroll accumulator is zero until events arrive.
func NewMouse() *Mouse {
	return &Mouse{
		current:  make(map[Code]bool),
		previous: make(map[Code]bool),
	}
}

// Press records that a button went down.
func (m *Mouse) Press(code Code) {
	m.mu.Lock()
	m.current[code] = true
	m.mu.Unlock()
}

// Release records that a button went up.
func (m *Mouse) Release(code Code) {
	m.mu.Lock()
	m.current[code] = false
	m.mu.Unlock()
}

// Move records a cursor move to pixel (x, y) on a surface of the given
// size, storing the position normalized to [0,1] and raising the moved
// flag. A zero or negative surface dimension makes Move a no-op: the
// position cannot be normalized, so neither it nor the moved flag changes.
func (m *Mouse) Move(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.mu.Lock()
	m.pos = Position{
		X: float32(x) / float32(width),
		Y: float32(y) / float32(height),
	}
	m.mu.Unlock()
	m.moved.Store(true)
}

// Wheel adds a scroll delta to the frame's accumulator. Positive deltas
// mean scrolling down/backward, negative up/forward.
func (m *Mouse) Wheel(delta int) {
	m.scroll.Add(int32(delta))
}

// IsPressed reports whether the button is held down right now.
func (m *Mouse) IsPressed(code Code) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current[code]
}

// JustPressed reports whether the button went down since the last Sync.
func (m *Mouse) JustPressed(code Code) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current[code] && !m.previous[code]
}

// JustReleased reports whether the button went up since the last Sync.
func (m *Mouse) JustReleased(code Code) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.current[code] && m.previous[code]
}

// Moved reports whether the cursor moved since the last Sync.
func (m *Mouse) Moved() bool {
	return m.moved.Load()
}

// Position returns the last known cursor position. The value is sticky:
// frames without movement keep returning the position of the last move.
func (m *Mouse) Position() Position {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pos
}

// Scroll returns the net scroll distance accumulated since the last Sync.
func (m *Mouse) Scroll() int {
	return int(m.scroll.Load())
}

// Sync freezes button state into the previous-frame snapshot, then clears
// the moved flag and the scroll accumulator. The position is left alone
// and carries across frames. Call once per tick, after all queries for
// the frame.
func (m *Mouse) Sync() {
	m.mu.Lock()
	for code, down := range m.current {
		m.previous[code] = down
	}
	m.mu.Unlock()
	m.moved.Store(false)
	m.scroll.Store(0)
}
