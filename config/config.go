// Package config loads runtime settings from TOML files on top of built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/vi-factory/constants"
	"github.com/lixenwraith/vi-factory/toml"
)

// WorldConfig sizes the playfield and positions the player
type WorldConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	StartX int `toml:"start_x"`
	StartY int `toml:"start_y"`
}

// LoopConfig controls the turn loop pacing
type LoopConfig struct {
	// StepInterval is how long the loop waits for input before an empty turn.
	// Integers are read as milliseconds, strings as Go durations.
	StepInterval time.Duration `toml:"step_interval"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // gain in beep's exponential scale, 0 is unchanged
}

// DebugConfig enables development checks
type DebugConfig struct {
	Log             bool `toml:"log"` // write logs/vi-factory.log
	CheckInvariants bool `toml:"check_invariants"`
}

// Config is the complete runtime configuration
type Config struct {
	World  WorldConfig `toml:"world"`
	Loop   LoopConfig  `toml:"loop"`
	Audio  AudioConfig `toml:"audio"`
	Debug  DebugConfig `toml:"debug"`
	Keymap string      `toml:"keymap"` // optional path to a key map file
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:  constants.DefaultWorldWidth,
			Height: constants.DefaultWorldHeight,
			StartX: constants.DefaultStartX,
			StartY: constants.DefaultStartY,
		},
		Loop: LoopConfig{
			StepInterval: constants.StepInterval,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// Parse applies TOML data over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Validate checks ranges and cross-field constraints
func (c *Config) Validate() error {
	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("config: world size %dx%d must be positive", w.Width, w.Height)
	}
	if w.StartX < 0 || w.StartX >= w.Width || w.StartY < 0 || w.StartY >= w.Height {
		return fmt.Errorf("config: start (%d,%d) outside %dx%d world", w.StartX, w.StartY, w.Width, w.Height)
	}
	if c.Loop.StepInterval < constants.MinStepInterval {
		return fmt.Errorf("config: step interval %v below minimum %v", c.Loop.StepInterval, constants.MinStepInterval)
	}
	return nil
}
