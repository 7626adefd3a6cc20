package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagTick       = flag.Int("tick", 0, "Tick rate in Hz when vsync is off")
	flagMute       = flag.Bool("mute", false, "Disable audio feedback cues")
	flagNoKeyboard = flag.Bool("no-keyboard", false, "Do not activate the keyboard device")
	flagNoMouse    = flag.Bool("no-mouse", false, "Do not activate the mouse device")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagTick > 0 {
		cfg.Loop.TickRate = *flagTick
	}
	if *flagMute {
		cfg.Audio.Enabled = false
	}
	if *flagNoKeyboard {
		cfg.Input.Keyboard = false
	}
	if *flagNoMouse {
		cfg.Input.Mouse = false
	}
}
