// Package game implements the fixed-tick demo loop driving the input layer.
//
// The loop follows the pump, poll, render, sync cadence: SDL events are
// drained into the device state, the scene reacts to polled queries, and
// the tick ends by promoting the snapshot for the next round of edge
// detection.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tickinput/internal/config"
	"github.com/Faultbox/tickinput/internal/engine/feedback"
	"github.com/Faultbox/tickinput/internal/engine/renderer"
	"github.com/Faultbox/tickinput/internal/engine/window"
	"github.com/Faultbox/tickinput/internal/logger"
	"github.com/Faultbox/tickinput/pkg/input"
	gomath "github.com/Faultbox/tickinput/pkg/math"
	"github.com/Faultbox/tickinput/pkg/sdlinput"
)

// Demo bindings, expressed directly as SDL scancodes and button ids.
const (
	keyQuit  = input.Code(sdl.SCANCODE_ESCAPE)
	keyUp    = input.Code(sdl.SCANCODE_W)
	keyLeft  = input.Code(sdl.SCANCODE_A)
	keyDown  = input.Code(sdl.SCANCODE_S)
	keyRight = input.Code(sdl.SCANCODE_D)
	keyCue   = input.Code(sdl.SCANCODE_SPACE)

	buttonPrimary = input.Code(sdl.BUTTON_LEFT)
)

const (
	avatarSpeed   = 0.45 // surface units per second
	cursorEase    = 0.20 // fraction of remaining distance per tick
	volumePerStep = 0.05 // volume change per wheel step
)

// Game is the demo instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	frame    *input.Frame
	bridge   *sdlinput.Bridge
	cues     *feedback.Manager

	// Devices polled each tick; nil when deactivated in the config.
	keyboard *input.Keyboard
	mouse    *input.Mouse

	// Rendered surface size, polled off the bridge.
	width  int
	height int

	// Scene state
	avatar gomath.Vec2 // steered by held movement keys
	cursor gomath.Vec2 // eased toward the sticky pointer position
	volume float64
	ticks  uint64
}

// New creates a new demo instance.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing demo",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Bool("keyboard", cfg.Input.Keyboard),
		zap.Bool("mouse", cfg.Input.Mouse),
	)

	g := &Game{
		config: cfg,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		avatar: gomath.Vec2{X: 0.5, Y: 0.5},
		volume: cfg.Audio.Volume,
	}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      "tickinput demo",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// The viewport works in pixels, which differ from the window size
	// on high-DPI displays
	g.renderer.Resize(g.window.GetDrawableSize())

	// Input state. Devices activate on first use, so only the ones
	// enabled in the config ever exist.
	g.frame = input.New()
	if cfg.Input.Keyboard {
		g.keyboard = g.frame.Keyboard()
	}
	if cfg.Input.Mouse {
		g.mouse = g.frame.Mouse()
	}
	g.bridge = sdlinput.NewBridge(g.keyboard, g.mouse, cfg.Window.Width, cfg.Window.Height)

	// Audio cues. The demo stays usable without a speaker.
	g.cues = feedback.New()
	if cfg.Audio.Enabled {
		if err := g.cues.Init(); err != nil {
			logger.Warn("audio unavailable, cues disabled", zap.Error(err))
		} else {
			g.cues.SetVolume(g.volume)
		}
	}

	logger.Info("demo initialized")
	return g, nil
}

// Run starts the main demo loop.
func (g *Game) Run() error {
	g.running = true

	tickRate := g.config.Loop.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	tickDur := time.Second / time.Duration(tickRate)

	// Timing
	last := time.Now()
	tickCount := 0
	statTimer := time.Now()

	logger.Info("starting demo loop", zap.Int("tick_rate", tickRate))

	for g.running {
		start := time.Now()
		dt := start.Sub(last).Seconds()
		last = start

		// 1. Drain pending OS events into the device state
		if g.bridge.Pump() {
			g.running = false
			break
		}

		// Surface size is polled like everything else. The bridge
		// tracks window coordinates for normalizing motion; the
		// viewport follows in drawable pixels.
		if w, h := g.bridge.SurfaceSize(); w != g.width || h != g.height {
			g.width, g.height = w, h
			g.renderer.Resize(g.window.GetDrawableSize())
		}

		// 2. React to the polled state
		g.update(dt)

		// 3. Render
		g.render()

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// 5. Tick boundary: age press state, clear motion and scroll
		g.frame.Sync()

		g.ticks++
		tickCount++
		if time.Since(statTimer) >= time.Second {
			logger.Debug("tick stats",
				zap.Int("ticks", tickCount),
				zap.Float64("dt_ms", dt*1000),
			)
			tickCount = 0
			statTimer = time.Now()
		}

		// Pace the loop ourselves when the display is not doing it
		if !g.config.Window.VSync {
			if wait := tickDur - time.Since(start); wait > 0 {
				time.Sleep(wait)
			}
		}
	}

	return nil
}

// Close cleans up demo resources.
func (g *Game) Close() {
	logger.Info("closing demo")

	// Persist the wheel-adjusted volume for the next run
	if g.volume != g.config.Audio.Volume {
		g.config.Audio.Volume = g.volume
		if err := g.config.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		}
	}

	if g.cues != nil {
		g.cues.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// update reacts to the input state captured for this tick.
func (g *Game) update(dt float64) {
	g.pollKeyboard(dt)
	g.pollMouse()
}

func (g *Game) pollKeyboard(dt float64) {
	kb := g.keyboard
	if kb == nil {
		return
	}

	if kb.JustPressed(keyQuit) {
		logger.Info("quit requested")
		g.running = false
	}

	// Held movement keys steer the avatar
	var dir gomath.Vec2
	if kb.IsPressed(keyUp) {
		dir.Y -= 1
	}
	if kb.IsPressed(keyDown) {
		dir.Y += 1
	}
	if kb.IsPressed(keyLeft) {
		dir.X -= 1
	}
	if kb.IsPressed(keyRight) {
		dir.X += 1
	}
	if dir.Length() > 0 {
		step := dir.Normalize().Scale(avatarSpeed * float32(dt))
		g.avatar = g.avatar.Add(step).Clamp(0, 1)
	}

	// One cue per edge, no matter how long the key is held or how
	// fast the OS auto-repeats it
	if kb.JustPressed(keyCue) {
		logger.Info("cue key pressed", zap.Uint64("tick", g.ticks))
		g.cues.Press()
	}
	if kb.JustReleased(keyCue) {
		logger.Info("cue key released", zap.Uint64("tick", g.ticks))
		g.cues.Release()
	}
}

func (g *Game) pollMouse() {
	ms := g.mouse
	if ms == nil {
		return
	}

	if ms.Moved() {
		pos := ms.Position()
		logger.Debug("pointer moved",
			zap.Float32("x", pos.X),
			zap.Float32("y", pos.Y),
		)
	}

	// The pointer position is sticky, so easing keeps converging even
	// on ticks without motion
	pos := ms.Position()
	g.cursor = g.cursor.Lerp(gomath.Vec2{X: pos.X, Y: pos.Y}, cursorEase)

	if ms.JustPressed(buttonPrimary) {
		g.avatar = g.cursor
		g.cues.Press()
	}
	if ms.JustReleased(buttonPrimary) {
		g.cues.Release()
	}

	// Wheel steps accumulated since the last tick boundary
	if steps := ms.Scroll(); steps != 0 {
		g.volume = clamp01(g.volume - float64(steps)*volumePerStep)
		g.cues.SetVolume(g.volume)
		g.cues.Scroll(steps)
		logger.Info("volume adjusted",
			zap.Int("steps", steps),
			zap.Float64("volume", g.volume),
		)
	}
}

// render draws the current frame.
func (g *Game) render() {
	// Background tint follows the eased cursor
	g.renderer.SetClearColor(
		0.07+0.10*g.cursor.X,
		0.08,
		0.12+0.10*g.cursor.Y,
	)
	g.renderer.Begin()

	// Avatar brightens with each held movement key
	held := g.heldMovementKeys()
	g.renderer.DrawQuad(
		g.avatar,
		gomath.Vec2{X: 0.06, Y: 0.06},
		0.30+0.15*float32(held), 0.75, 0.35, 0.85,
	)

	// Cursor marker goes opaque while the primary button is down
	if g.mouse != nil {
		alpha := float32(0.6)
		if g.mouse.IsPressed(buttonPrimary) {
			alpha = 1.0
		}
		g.renderer.DrawQuad(
			g.cursor,
			gomath.Vec2{X: 0.025, Y: 0.025},
			0.95, 0.95, 0.95, alpha,
		)
	}

	g.renderer.End()
}

// heldMovementKeys counts how many movement keys are down this tick.
func (g *Game) heldMovementKeys() int {
	if g.keyboard == nil {
		return 0
	}
	held := 0
	for _, key := range [...]input.Code{keyUp, keyDown, keyLeft, keyRight} {
		if g.keyboard.IsPressed(key) {
			held++
		}
	}
	return held
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
