package input

import "sync"

// Frame owns the devices of one application and advances them together at
// the frame boundary. Devices activate lazily: the first call to Keyboard
// or Mouse constructs the device, and Sync only touches devices that were
// activated, so an application that never asks for a mouse pays nothing
// for one.
type Frame struct {
	mu       sync.Mutex
	keyboard *Keyboard
	mouse    *Mouse
}

// New creates a Frame with no devices activated.
func New() *Frame {
	return &Frame{}
}

// Keyboard returns the frame's keyboard, activating it on first call.
// Every call returns the same instance; hand it to both the event source
// and the game loop.
func (f *Frame) Keyboard() *Keyboard {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.keyboard == nil {
		f.keyboard = NewKeyboard()
	}
	return f.keyboard
}

// Mouse returns the frame's mouse, activating it on first call.
func (f *Frame) Mouse() *Mouse {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mouse == nil {
		f.mouse = NewMouse()
	}
	return f.mouse
}

// Sync advances every activated device by one frame: pressed state becomes
// the previous-frame snapshot and per-frame signals reset. Call exactly
// once per tick from the game loop, after all input queries. The order the
// devices sync in is unspecified; they are independent.
func (f *Frame) Sync() {
	f.mu.Lock()
	keyboard, mouse := f.keyboard, f.mouse
	f.mu.Unlock()

	if keyboard != nil {
		keyboard.Sync()
	}
	if mouse != nil {
		mouse.Sync()
	}
}
