package input

import "testing"

func TestFrameLazyActivation(t *testing.T) {
	f := New()

	kb := f.Keyboard()
	if kb == nil {
		t.Fatal("Keyboard() returned nil")
	}
	if f.Keyboard() != kb {
		t.Error("expected Keyboard() to return the same instance every call")
	}

	m := f.Mouse()
	if m == nil {
		t.Fatal("Mouse() returned nil")
	}
	if f.Mouse() != m {
		t.Error("expected Mouse() to return the same instance every call")
	}
}

func TestFrameSyncWithNoDevices(t *testing.T) {
	f := New()
	// Nothing activated; Sync must be a harmless no-op.
	f.Sync()
	f.Sync()
}

func TestFrameSyncAdvancesActivatedDevices(t *testing.T) {
	f := New()
	kb := f.Keyboard()
	m := f.Mouse()

	kb.Press(testKey)
	m.Press(testButton)
	m.Wheel(2)

	f.Sync()

	if kb.JustPressed(testKey) {
		t.Error("expected keyboard edge consumed by frame Sync")
	}
	if m.JustPressed(testButton) {
		t.Error("expected mouse edge consumed by frame Sync")
	}
	if m.Scroll() != 0 {
		t.Errorf("expected scroll reset by frame Sync, got %d", m.Scroll())
	}
}

func TestFrameKeyboardOnly(t *testing.T) {
	f := New()
	kb := f.Keyboard()

	kb.Press(testKey)
	f.Sync()

	if kb.JustPressed(testKey) {
		t.Error("expected keyboard to sync even with no mouse activated")
	}

	// Activating the mouse afterwards starts it neutral.
	m := f.Mouse()
	if m.IsPressed(testButton) || m.Moved() || m.Scroll() != 0 {
		t.Error("expected a late-activated mouse to start neutral")
	}
}

func TestFrameDeviceIsolation(t *testing.T) {
	f := New()
	kb := f.Keyboard()
	m := f.Mouse()

	// Same numeric code on both devices; state must not bleed across.
	code := Code(3)
	kb.Press(code)

	if m.IsPressed(code) || m.JustPressed(code) {
		t.Error("expected keyboard events to leave the mouse untouched")
	}

	m.Wheel(5)
	m.Move(5, 5, 10, 10)
	if !kb.IsPressed(code) {
		t.Error("expected mouse events to leave the keyboard untouched")
	}
}
