// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Loop    LoopConfig    `yaml:"loop"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoopConfig holds game loop settings.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second when vsync is off
}

// InputConfig selects which devices the demo activates.
type InputConfig struct {
	Keyboard bool `yaml:"keyboard"`
	Mouse    bool `yaml:"mouse"`
}

// AudioConfig holds input feedback cue settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      960,
			Height:     540,
			Fullscreen: false,
			VSync:      true,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Input: InputConfig{
			Keyboard: true,
			Mouse:    true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
