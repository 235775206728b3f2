package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickDelayMS: 20,
		Input: InputConfig{
			HoldWindowMS: 500,
		},
		Sound: SoundConfig{
			Enabled:     true,
			FrequencyHz: 880,
			DurationMS:  120,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
