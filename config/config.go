// Package config loads paddleball settings from TOML or YAML files.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Playfield  PlayfieldConfig  `toml:"playfield" yaml:"playfield"`
	Paddles    []PaddleConfig   `toml:"paddles" yaml:"paddles"`
	Ball       BallConfig       `toml:"ball" yaml:"ball"`
	Walls      WallConfig       `toml:"walls" yaml:"walls"`
	Simulation SimulationConfig `toml:"simulation" yaml:"simulation"`
	Logging    LoggingConfig    `toml:"logging" yaml:"logging"`
	Debug      bool             `toml:"debug" yaml:"debug"`
}

type PlayfieldConfig struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// PaddleConfig describes one player paddle. Zero sizes and speeds are derived
// from the playfield by Normalize.
type PaddleConfig struct {
	Speed   float64 `toml:"speed" yaml:"speed"`
	Width   float64 `toml:"width" yaml:"width"`
	Height  float64 `toml:"height" yaml:"height"`
	UpKey   string  `toml:"up_key" yaml:"up_key"`
	DownKey string  `toml:"down_key" yaml:"down_key"`
}

type BallConfig struct {
	Radius     float64 `toml:"radius" yaml:"radius"`
	VelocityX  float64 `toml:"velocity_x" yaml:"velocity_x"`
	VelocityY  float64 `toml:"velocity_y" yaml:"velocity_y"`
	Bounciness float64 `toml:"bounciness" yaml:"bounciness"`
}

type WallConfig struct {
	Thickness float64 `toml:"thickness" yaml:"thickness"`
}

type SimulationConfig struct {
	TickRate time.Duration `toml:"tick_rate" yaml:"tick_rate"`
	Duration time.Duration `toml:"duration" yaml:"duration"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// Load reads a config file, choosing the decoder by extension
// (.toml, .yaml or .yml), and fills derived defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := defaults()
	cfg.Paddles = nil

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("parse config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if len(cfg.Paddles) == 0 {
		cfg.Paddles = defaultPaddles()
	}
	if err := cfg.Normalize(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration: a 640x360 playfield with two
// keyboard paddles.
func Default() *Config {
	cfg := defaults()
	// The built-in playfield is positive, so this cannot fail.
	_ = cfg.Normalize()
	return cfg
}

func defaults() *Config {
	return &Config{
		Playfield: PlayfieldConfig{
			Width:  640,
			Height: 360,
		},
		Paddles: defaultPaddles(),
		Ball: BallConfig{
			Bounciness: 1,
		},
		Simulation: SimulationConfig{
			TickRate: time.Second / 60,
			Duration: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func defaultPaddles() []PaddleConfig {
	return []PaddleConfig{
		{UpKey: "ArrowUp", DownKey: "ArrowDown"},
		{UpKey: "W", DownKey: "S"},
	}
}

// Normalize validates the playfield and derives unset sizes and speeds from it:
// paddles are w/64 by h/8, the ball radius is h/72, the ball moves at (w/4, w/4),
// the first paddle moves at h and every other paddle at h/2 pixels per second.
func (c *Config) Normalize() error {
	w, h := c.Playfield.Width, c.Playfield.Height
	if w <= 0 || h <= 0 {
		return fmt.Errorf("playfield must be positive, got %gx%g", w, h)
	}

	for i := range c.Paddles {
		p := &c.Paddles[i]
		if p.Width == 0 {
			p.Width = math.Round(w / 64)
		}
		if p.Height == 0 {
			p.Height = math.Round(h / 8)
		}
		if p.Speed == 0 {
			p.Speed = h
			if i > 0 {
				p.Speed = h / 2
			}
		}
	}

	if c.Ball.Radius == 0 {
		c.Ball.Radius = math.Round(h / 72)
	}
	if c.Ball.VelocityX == 0 && c.Ball.VelocityY == 0 {
		c.Ball.VelocityX = w / 4
		c.Ball.VelocityY = w / 4
	}
	if c.Ball.Bounciness < 0 || c.Ball.Bounciness > 1 {
		return fmt.Errorf("ball bounciness must be within [0, 1], got %g", c.Ball.Bounciness)
	}

	if c.Walls.Thickness == 0 {
		c.Walls.Thickness = math.Round(h / 36)
	}
	if c.Simulation.TickRate <= 0 {
		c.Simulation.TickRate = time.Second / 60
	}
	return nil
}
