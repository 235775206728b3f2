// Package config provides YAML-based runtime configuration loading for the
// game driver. The playfield and the rules are fixed; only how the game is
// run can be configured.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains the runtime settings.
type Config struct {
	TickDelayMS int         `yaml:"tick_delay_ms"`
	Input       InputConfig `yaml:"input"`
	ShapesDir   string      `yaml:"shapes_dir"`
	Seed        int64       `yaml:"seed"`
	Sound       SoundConfig `yaml:"sound"`
	Log         LogConfig   `yaml:"log"`
}

// InputConfig defines how terminal key events become held keys.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"`
}

// SoundConfig defines the goal cue.
type SoundConfig struct {
	Enabled     bool    `yaml:"enabled"`
	FrequencyHz float64 `yaml:"frequency_hz"`
	DurationMS  int     `yaml:"duration_ms"`
}

// LogConfig defines the diagnostic log file.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// TickDelay returns the delay between ticks.
func (c Config) TickDelay() time.Duration {
	return time.Duration(c.TickDelayMS) * time.Millisecond
}

// HoldWindow returns how long a key press counts as held.
func (c Config) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldWindowMS) * time.Millisecond
}

// ToneDuration returns the length of the goal cue.
func (s SoundConfig) ToneDuration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// Validate checks that every duration and size is usable.
func (c Config) Validate() error {
	if c.TickDelayMS <= 0 {
		return fmt.Errorf("%w: tick_delay_ms must be positive, got %d", ErrInvalidConfig, c.TickDelayMS)
	}
	if c.Input.HoldWindowMS <= 0 {
		return fmt.Errorf("%w: input.hold_window_ms must be positive, got %d", ErrInvalidConfig, c.Input.HoldWindowMS)
	}
	if c.Sound.Enabled {
		if c.Sound.FrequencyHz <= 0 {
			return fmt.Errorf("%w: sound.frequency_hz must be positive, got %g", ErrInvalidConfig, c.Sound.FrequencyHz)
		}
		if c.Sound.DurationMS <= 0 {
			return fmt.Errorf("%w: sound.duration_ms must be positive, got %d", ErrInvalidConfig, c.Sound.DurationMS)
		}
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return fmt.Errorf("%w: log rotation limits must not be negative", ErrInvalidConfig)
	}
	return nil
}
