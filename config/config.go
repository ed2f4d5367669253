// Package config provides configuration loading for the island scene.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/island/constants"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Backend names accepted by display.backend
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config holds all scene configuration
type Config struct {
	FrameRate int             `yaml:"frame_rate"`
	Water     WaterConfig     `yaml:"water"`
	Drips     DripConfig      `yaml:"drips"`
	Cloud     CloudConfig     `yaml:"cloud"`
	Display   DisplayConfig   `yaml:"display"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// WaterConfig holds the water surface coefficients
type WaterConfig struct {
	Tension    float64 `yaml:"tension"`
	Damping    float64 `yaml:"damping"`
	Spread     float64 `yaml:"spread"`
	Iterations int     `yaml:"iterations"` // Spread passes per frame
	BaseLevel  float64 `yaml:"base_level"` // Target height after provisioning, in sub-units
}

// DripConfig holds drip pool parameters
type DripConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Per-frame speed change; 0 derives 9.8/frame_rate
	MaxSlots     int     `yaml:"max_slots"`     // Pool slot limit; 0 is unbounded
	LegacyColumn bool    `yaml:"legacy_column"` // Every drip tests the first slot's column
}

// CloudConfig holds cloud drift parameters
type CloudConfig struct {
	Speed        float64 `yaml:"speed"` // Sub-units per frame; 0 derives 10/frame_rate
	DropInterval int     `yaml:"drop_interval"`
	Width        int     `yaml:"width"`
}

// DisplayConfig selects the terminal backend
type DisplayConfig struct {
	Backend string `yaml:"backend"`
}

// AudioConfig controls impact sounds
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// TelemetryConfig controls CSV frame statistics
type TelemetryConfig struct {
	Dir      string `yaml:"dir"`      // Empty disables telemetry
	Interval int    `yaml:"interval"` // Frames between samples
}

// Default returns the embedded defaults
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalid, c.FrameRate)
	case c.Water.Iterations <= 0:
		return fmt.Errorf("%w: water.iterations must be positive, got %d", ErrInvalid, c.Water.Iterations)
	case c.Water.Tension < 0 || c.Water.Damping < 0 || c.Water.Spread < 0:
		return fmt.Errorf("%w: water coefficients must not be negative", ErrInvalid)
	case c.Water.Spread > 0.5:
		return fmt.Errorf("%w: water.spread above 0.5 is unstable, got %g", ErrInvalid, c.Water.Spread)
	case c.Drips.Gravity < 0 || c.Drips.MaxSlots < 0:
		return fmt.Errorf("%w: drips values must not be negative", ErrInvalid)
	case c.Cloud.DropInterval <= 0:
		return fmt.Errorf("%w: cloud.drop_interval must be positive, got %d", ErrInvalid, c.Cloud.DropInterval)
	case c.Cloud.Width <= 0 || c.Cloud.Speed < 0:
		return fmt.Errorf("%w: cloud.width must be positive and cloud.speed not negative", ErrInvalid)
	case c.Display.Backend != BackendANSI && c.Display.Backend != BackendTcell:
		return fmt.Errorf("%w: display.backend must be %q or %q, got %q", ErrInvalid, BackendANSI, BackendTcell, c.Display.Backend)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0,1], got %g", ErrInvalid, c.Audio.Volume)
	case c.Telemetry.Interval <= 0:
		return fmt.Errorf("%w: telemetry.interval must be positive, got %d", ErrInvalid, c.Telemetry.Interval)
	}
	return nil
}

// computeDerived fills rate-dependent values left at zero
func (c *Config) computeDerived() {
	if c.Drips.Gravity == 0 {
		c.Drips.Gravity = constants.StandardGravity / float64(c.FrameRate)
	}
	if c.Cloud.Speed == 0 {
		c.Cloud.Speed = constants.CloudSpeedPerSecond / float64(c.FrameRate)
	}
}

// FrameInterval returns the frame pacing interval
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// WriteYAML saves the configuration to path
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
