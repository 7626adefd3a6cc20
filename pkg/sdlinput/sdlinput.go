// Package sdlinput feeds SDL2 events into input devices.
//
// The bridge translates raw SDL events into the device calls of
// pkg/input, so the rest of the application only ever sees the polling
// API. Hand it only the devices you want fed; a nil device drops its
// events, the SDL equivalent of not registering a listener.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/tickinput/pkg/input"
)

// Bridge translates SDL2 events into keyboard and mouse state. It keeps
// the current surface size so motion events can be normalized; resize
// events update it automatically.
type Bridge struct {
	keyboard *input.Keyboard
	mouse    *input.Mouse

	width  int
	height int
}

// NewBridge creates a bridge feeding the given devices. Either device may
// be nil to ignore that event family. The width and height are the initial
// surface size used to normalize mouse positions.
func NewBridge(keyboard *input.Keyboard, mouse *input.Mouse, width, height int) *Bridge {
	return &Bridge{
		keyboard: keyboard,
		mouse:    mouse,
		width:    width,
		height:   height,
	}
}

// SetSurfaceSize overrides the tracked surface size, for hosts that handle
// window resizing themselves.
func (b *Bridge) SetSurfaceSize(width, height int) {
	b.width = width
	b.height = height
}

// SurfaceSize returns the surface size motion events are normalized by.
func (b *Bridge) SurfaceSize() (int, int) {
	return b.width, b.height
}

// Pump drains the SDL event queue, dispatching every pending event.
// Returns true if a quit event arrived. Call once per tick on the thread
// that owns the SDL window, before the frame's input queries.
func (b *Bridge) Pump() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if b.Dispatch(event) {
			quit = true
		}
	}
	return quit
}

// Dispatch translates a single SDL event into device state. Returns true
// for quit events, false for everything else.
func (b *Bridge) Dispatch(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			b.width = int(e.Data1)
			b.height = int(e.Data2)
		}

	case *sdl.KeyboardEvent:
		if b.keyboard == nil {
			break
		}
		// Repeats pass through: Press is idempotent, so auto-repeat
		// cannot fabricate edges.
		if e.Type == sdl.KEYDOWN {
			b.keyboard.Press(input.Code(e.Keysym.Scancode))
		} else if e.Type == sdl.KEYUP {
			b.keyboard.Release(input.Code(e.Keysym.Scancode))
		}

	case *sdl.MouseButtonEvent:
		if b.mouse == nil {
			break
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			b.mouse.Press(input.Code(e.Button))
		} else if e.Type == sdl.MOUSEBUTTONUP {
			b.mouse.Release(input.Code(e.Button))
		}

	case *sdl.MouseMotionEvent:
		if b.mouse == nil {
			break
		}
		b.mouse.Move(int(e.X), int(e.Y), b.width, b.height)

	case *sdl.MouseWheelEvent:
		if b.mouse == nil {
			break
		}
		// SDL reports wheel-up as positive; the devices count scrolling
		// down/backward as positive, so the sign flips here.
		y := e.Y
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		b.mouse.Wheel(int(-y))
	}

	return false
}
