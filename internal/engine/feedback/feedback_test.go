package feedback

import (
	"math"
	"testing"
	"time"
)

func TestVolumeConversion(t *testing.T) {
	// Test volume to dB conversion
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("New() returned nil")
	}

	if m.Volume() != 1.0 {
		t.Errorf("default volume = %f, want 1.0", m.Volume())
	}
	if m.IsInitialized() {
		t.Error("manager should not be initialized before Init")
	}
}

func TestSetVolume(t *testing.T) {
	m := New()

	m.SetVolume(0.5)
	if m.Volume() != 0.5 {
		t.Errorf("volume = %f, want 0.5", m.Volume())
	}

	// Test clamping
	m.SetVolume(2.0)
	if m.Volume() != 1.0 {
		t.Errorf("volume = %f, want 1.0 (clamped)", m.Volume())
	}

	m.SetVolume(-1.0)
	if m.Volume() != 0.0 {
		t.Errorf("volume = %f, want 0.0 (clamped)", m.Volume())
	}
}

func TestCuesWithoutInit(t *testing.T) {
	m := New()

	// Cues must be safe no-ops before the speaker exists.
	m.Press()
	m.Release()
	m.Scroll(3)
	m.Close()
}

func TestScrollPitch(t *testing.T) {
	tests := []struct {
		steps int
		want  float64
	}{
		{0, scrollFreq},
		{-12, scrollFreq * 2}, // scrolling up an octave raises pitch
		{12, scrollFreq / 2},  // scrolling down an octave lowers pitch
	}

	for _, tt := range tests {
		got := scrollPitch(tt.steps)
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("scrollPitch(%d) = %f, want %f", tt.steps, got, tt.want)
		}
	}
}

func TestToneStreamerDrains(t *testing.T) {
	tone := newTone(DefaultSampleRate, 440, 10*time.Millisecond)
	want := DefaultSampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}

	// Drained streamer must keep reporting done.
	if n, ok := tone.Stream(buf); n != 0 || ok {
		t.Errorf("drained stream returned (%d, %v), want (0, false)", n, ok)
	}
	if err := tone.Err(); err != nil {
		t.Errorf("unexpected streamer error: %v", err)
	}
}

func TestToneStreamerBounded(t *testing.T) {
	tone := newTone(DefaultSampleRate, 880, 20*time.Millisecond)

	buf := make([][2]float64, 256)
	first := true
	for {
		n, ok := tone.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][1] < -1 || buf[i][1] > 1 {
				t.Fatalf("sample %v out of range", buf[i])
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("tone should be centered, got %v", buf[i])
			}
		}
		if first && n > 0 {
			// Attack fade starts from silence.
			if buf[0][0] != 0 {
				t.Errorf("first sample = %f, want 0", buf[0][0])
			}
			first = false
		}
		if !ok {
			break
		}
	}
}

func TestToneStreamerShortCue(t *testing.T) {
	// A cue shorter than twice the fade window must still stream cleanly.
	tone := newTone(DefaultSampleRate, 440, time.Millisecond)
	if tone.fade*2 > tone.tot {
		t.Fatalf("fade %d exceeds half of total %d", tone.fade, tone.tot)
	}

	buf := make([][2]float64, 64)
	for {
		if _, ok := tone.Stream(buf); !ok {
			break
		}
	}
}
