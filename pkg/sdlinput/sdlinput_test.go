package sdlinput

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/tickinput/pkg/input"
)

func keyDown(scancode sdl.Scancode) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		State:  sdl.PRESSED,
		Keysym: sdl.Keysym{Scancode: scancode},
	}
}

func keyUp(scancode sdl.Scancode) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		State:  sdl.RELEASED,
		Keysym: sdl.Keysym{Scancode: scancode},
	}
}

func TestDispatchKeyEvents(t *testing.T) {
	kb := input.NewKeyboard()
	b := NewBridge(kb, nil, 640, 480)

	b.Dispatch(keyDown(sdl.SCANCODE_SPACE))
	if !kb.IsPressed(input.Code(sdl.SCANCODE_SPACE)) {
		t.Error("expected space pressed after KEYDOWN")
	}

	b.Dispatch(keyUp(sdl.SCANCODE_SPACE))
	if kb.IsPressed(input.Code(sdl.SCANCODE_SPACE)) {
		t.Error("expected space released after KEYUP")
	}
}

func TestDispatchMouseButtons(t *testing.T) {
	m := input.NewMouse()
	b := NewBridge(nil, m, 640, 480)

	b.Dispatch(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT})
	if !m.IsPressed(input.Code(sdl.BUTTON_LEFT)) {
		t.Error("expected left button pressed after MOUSEBUTTONDOWN")
	}

	b.Dispatch(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT})
	if m.IsPressed(input.Code(sdl.BUTTON_LEFT)) {
		t.Error("expected left button released after MOUSEBUTTONUP")
	}
}

func TestDispatchMotionNormalizesBySurface(t *testing.T) {
	m := input.NewMouse()
	b := NewBridge(nil, m, 640, 480)

	b.Dispatch(&sdl.MouseMotionEvent{X: 320, Y: 120})

	if !m.Moved() {
		t.Error("expected Moved true after a motion event")
	}
	pos := m.Position()
	if pos.X != 0.5 || pos.Y != 0.25 {
		t.Errorf("expected position (0.5,0.25), got (%v,%v)", pos.X, pos.Y)
	}
}

func TestSetSurfaceSize(t *testing.T) {
	m := input.NewMouse()
	b := NewBridge(nil, m, 640, 480)

	b.SetSurfaceSize(1000, 500)
	if w, h := b.SurfaceSize(); w != 1000 || h != 500 {
		t.Errorf("expected surface 1000x500, got %dx%d", w, h)
	}

	b.Dispatch(&sdl.MouseMotionEvent{X: 500, Y: 125})
	pos := m.Position()
	if pos.X != 0.5 || pos.Y != 0.25 {
		t.Errorf("expected position normalized by overridden surface, got (%v,%v)", pos.X, pos.Y)
	}
}

func TestDispatchResizeUpdatesSurface(t *testing.T) {
	m := input.NewMouse()
	b := NewBridge(nil, m, 640, 480)

	b.Dispatch(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 200, Data2: 100})
	if w, h := b.SurfaceSize(); w != 200 || h != 100 {
		t.Errorf("expected surface 200x100 after resize, got %dx%d", w, h)
	}

	b.Dispatch(&sdl.MouseMotionEvent{X: 100, Y: 25})
	pos := m.Position()
	if pos.X != 0.5 || pos.Y != 0.25 {
		t.Errorf("expected position normalized by new surface, got (%v,%v)", pos.X, pos.Y)
	}
}

func TestDispatchWheelFlipsSign(t *testing.T) {
	m := input.NewMouse()
	b := NewBridge(nil, m, 640, 480)

	// SDL wheel-up is +1; the devices count down as positive.
	b.Dispatch(&sdl.MouseWheelEvent{Y: 1, Direction: sdl.MOUSEWHEEL_NORMAL})
	if got := m.Scroll(); got != -1 {
		t.Errorf("expected scroll -1 for wheel-up, got %d", got)
	}

	b.Dispatch(&sdl.MouseWheelEvent{Y: -2, Direction: sdl.MOUSEWHEEL_NORMAL})
	if got := m.Scroll(); got != 1 {
		t.Errorf("expected scroll 1 after wheel-down, got %d", got)
	}
}

func TestDispatchWheelFlippedDirection(t *testing.T) {
	m := input.NewMouse()
	b := NewBridge(nil, m, 640, 480)

	// With a flipped wheel SDL inverts the sign; +1 means scroll down.
	b.Dispatch(&sdl.MouseWheelEvent{Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED})
	if got := m.Scroll(); got != 1 {
		t.Errorf("expected scroll 1 for flipped wheel, got %d", got)
	}
}

func TestDispatchNilDevicesDropEvents(t *testing.T) {
	b := NewBridge(nil, nil, 640, 480)

	// Must not panic with no devices attached.
	b.Dispatch(keyDown(sdl.SCANCODE_A))
	b.Dispatch(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT})
	b.Dispatch(&sdl.MouseMotionEvent{X: 10, Y: 10})
	b.Dispatch(&sdl.MouseWheelEvent{Y: 1})
}

func TestDispatchQuit(t *testing.T) {
	b := NewBridge(nil, nil, 640, 480)

	if b.Dispatch(&sdl.QuitEvent{}) != true {
		t.Error("expected Dispatch to report quit for a QuitEvent")
	}
	if b.Dispatch(keyDown(sdl.SCANCODE_A)) != false {
		t.Error("expected Dispatch to report false for ordinary events")
	}
}

func TestDispatchKeyRepeatKeepsEdgeConsumed(t *testing.T) {
	kb := input.NewKeyboard()
	b := NewBridge(kb, nil, 640, 480)
	code := input.Code(sdl.SCANCODE_W)

	b.Dispatch(keyDown(sdl.SCANCODE_W))
	kb.Sync()

	repeat := keyDown(sdl.SCANCODE_W)
	repeat.Repeat = 1
	b.Dispatch(repeat)

	if !kb.IsPressed(code) {
		t.Error("expected key still held through repeat")
	}
	if kb.JustPressed(code) {
		t.Error("expected no new edge from an auto-repeat event")
	}
}
