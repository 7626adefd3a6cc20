// Package feedback provides audible cues for input state changes.
//
// Cues are short synthesized tones mixed into a shared speaker, so the
// demo can confirm edges and scroll steps without shipping sample assets.
package feedback

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Cue tuning. Press and release are a fourth apart so the pair reads as
// down/up; scroll cues shift from a base pitch by semitone steps.
const (
	pressFreq    = 660.0
	releaseFreq  = 440.0
	scrollFreq   = 520.0
	cueDuration  = 55 * time.Millisecond
	fadeDuration = 5 * time.Millisecond
)

// Manager synthesizes and mixes input feedback cues.
type Manager struct {
	mu sync.RWMutex

	// State
	initialized bool
	sampleRate  beep.SampleRate

	// Volume setting (0.0 to 1.0)
	masterVolume float64

	// Mixer for concurrent cues
	mixer *beep.Mixer
}

// New creates a new feedback manager.
func New() *Manager {
	return &Manager{
		masterVolume: 1.0,
		mixer:        &beep.Mixer{},
	}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	// Start cue mixer
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// Volume returns the master volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// Press plays the key/button down cue.
func (m *Manager) Press() {
	m.play(pressFreq, cueDuration)
}

// Release plays the key/button up cue.
func (m *Manager) Release() {
	m.play(releaseFreq, cueDuration)
}

// Scroll plays a wheel cue pitched by the accumulated step count.
// Positive steps (scrolling down) lower the pitch, negative raise it.
func (m *Manager) Scroll(steps int) {
	m.play(scrollPitch(steps), cueDuration)
}

// scrollPitch shifts the scroll base frequency by one semitone per step.
func scrollPitch(steps int) float64 {
	return scrollFreq * math.Pow(2, float64(-steps)/12)
}

// play mixes a tone into the speaker. A no-op when audio is not
// initialized, so callers can cue unconditionally.
func (m *Manager) play(freq float64, dur time.Duration) {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.masterVolume
	rate := m.sampleRate
	m.mu.RUnlock()

	if !initialized {
		return
	}

	tone := newTone(rate, freq, dur)

	// Apply volume
	volStreamer := &effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   volumeToDb(vol),
		Silent:   vol <= 0,
	}

	// Add to mixer (concurrent playback)
	m.mixer.Add(volStreamer)
}

// volumeToDb converts a 0-1 volume to decibel scale.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	// vol=1 -> 0dB, vol=0.5 -> -6dB, vol=0.25 -> -12dB
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// toneStreamer generates a sine tone of fixed length with short linear
// fades at both ends so the cutoff does not click.
type toneStreamer struct {
	freq float64
	rate beep.SampleRate
	pos  int
	tot  int
	fade int
}

func newTone(rate beep.SampleRate, freq float64, dur time.Duration) *toneStreamer {
	t := &toneStreamer{
		freq: freq,
		rate: rate,
		tot:  rate.N(dur),
		fade: rate.N(fadeDuration),
	}
	if t.fade*2 > t.tot {
		t.fade = t.tot / 2
	}
	return t
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.tot {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.tot {
			break
		}
		v := t.gain() * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *toneStreamer) gain() float64 {
	if t.fade < 1 {
		return 1
	}
	switch {
	case t.pos < t.fade:
		return float64(t.pos) / float64(t.fade)
	case t.pos >= t.tot-t.fade:
		return float64(t.tot-t.pos) / float64(t.fade)
	}
	return 1
}

func (t *toneStreamer) Err() error {
	return nil
}
