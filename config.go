package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

type Config struct {
	Display  DisplayConfig  `yaml:"display" toml:"display"`
	Spawn    SpawnConfig    `yaml:"spawn" toml:"spawn"`
	Limits   LimitsConfig   `yaml:"limits" toml:"limits"`
	Backdrop BackdropConfig `yaml:"backdrop" toml:"backdrop"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

type DisplayConfig struct {
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	Title     string `yaml:"title" toml:"title"`
	FrameRate int    `yaml:"frame_rate" toml:"frame_rate"` // frames per second
	Backend   string `yaml:"backend" toml:"backend"`       // "window" or "terminal"
}

type SpawnConfig struct {
	Interval time.Duration `yaml:"interval" toml:"interval"`
	Seed     int64         `yaml:"seed" toml:"seed"` // 0 seeds from the clock
}

// LimitsConfig caps the live population so a stalled host cannot build an
// unbounded backlog. Zero disables a cap.
type LimitsConfig struct {
	MaxShells    int `yaml:"max_shells" toml:"max_shells"`
	MaxFragments int `yaml:"max_fragments" toml:"max_fragments"`
}

type BackdropConfig struct {
	Stars   int     `yaml:"stars" toml:"stars"`
	Twinkle float64 `yaml:"twinkle" toml:"twinkle"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" or "console"
	File   string `yaml:"file" toml:"file"`
}

// LoadConfig reads a YAML or TOML file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:     800,
			Height:    600,
			Title:     "Fireworks",
			FrameRate: 60,
			Backend:   BackendWindow,
		},
		Spawn: SpawnConfig{
			Interval: 900 * time.Millisecond,
		},
		Limits: LimitsConfig{
			MaxShells:    256,
			MaxFragments: 6000,
		},
		Backdrop: BackdropConfig{
			Stars:   80,
			Twinkle: 0.02,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size %dx%d must be positive", c.Display.Width, c.Display.Height)
	}
	if c.Display.FrameRate <= 0 {
		return fmt.Errorf("frame_rate %d must be positive", c.Display.FrameRate)
	}
	if c.Display.Backend != BackendWindow && c.Display.Backend != BackendTerminal {
		return fmt.Errorf("unknown backend %q", c.Display.Backend)
	}
	if c.Spawn.Interval <= 0 {
		return fmt.Errorf("spawn interval %s must be positive", c.Spawn.Interval)
	}
	if c.Limits.MaxShells < 0 || c.Limits.MaxFragments < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if c.Backdrop.Stars < 0 {
		return fmt.Errorf("backdrop stars %d must not be negative", c.Backdrop.Stars)
	}
	return nil
}

// FrameInterval is the time between frames at the configured rate.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FrameRate)
}
