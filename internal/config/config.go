// Package config provides the tuning document for the game: window settings,
// player numbers, colors and shapes. The built-in document is embedded; a file
// on disk may override any subset of it.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/awall/delver/internal/core/space"
	"github.com/awall/delver/internal/player"
)

//go:embed tuning.yaml
var defaultTuning []byte

// ErrInvalidTuning is wrapped by every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Config holds all tuning for a run
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Palette PaletteConfig `yaml:"palette"`
	Shapes  ShapesConfig  `yaml:"shapes"`
	Debug   DebugConfig   `yaml:"debug"`
}

// WindowConfig describes the window and the update rate
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	UPS       int    `yaml:"ups"` // Update events per second
}

// PlayerConfig holds movement and attack numbers
type PlayerConfig struct {
	Velocity       float64 `yaml:"velocity"`        // World units per second
	AttackDuration float64 `yaml:"attack_duration"` // Seconds
}

// PaletteConfig holds the fill colors
type PaletteConfig struct {
	Background RGB `yaml:"background"`
	Body       RGB `yaml:"body"`
	Front      RGB `yaml:"front"`
	Sword      RGB `yaml:"sword"`
	Pillar     RGB `yaml:"pillar"`
}

// ShapesConfig holds the rectangles that make up a frame
type ShapesConfig struct {
	Body   Box `yaml:"body"`   // Player local frame
	Front  Box `yaml:"front"`  // Player local frame
	Sword  Box `yaml:"sword"`  // Player local frame
	Pillar Box `yaml:"pillar"` // Screen pixels
}

// DebugConfig toggles developer aids
type DebugConfig struct {
	Overlay bool `yaml:"overlay"`
}

// RGB is a color with channels in [0, 1].
type RGB [3]float64

// Color returns the opaque color.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: 0xff}
}

func channel(v float64) uint8 {
	return uint8(v*255 + 0.5)
}

// Box is a rectangle written as [x, y, w, h].
type Box [4]float64

// Rect returns the box as a space.Rect.
func (b Box) Rect() space.Rect {
	return space.Rect{X: b[0], Y: b[1], W: b[2], H: b[3]}
}

// Tuning returns the player tuning.
func (p PlayerConfig) Tuning() player.Tuning {
	return player.Tuning{Velocity: p.Velocity, AttackDuration: p.AttackDuration}
}

// DefaultConfig returns the built-in tuning.
func DefaultConfig() *Config {
	config := &Config{}
	if err := yaml.Unmarshal(defaultTuning, config); err != nil {
		panic(fmt.Sprintf("config: built-in tuning is malformed: %v", err))
	}
	return config
}

// Parse overlays a YAML document onto the built-in tuning and validates the
// result.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("config: parse tuning: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Load reads and parses the tuning file at path. An empty path returns the
// built-in tuning.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Validate reports the first value that cannot drive a game.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidTuning)
	case c.Window.UPS <= 0:
		return fmt.Errorf("config: ups %d: %w", c.Window.UPS, ErrInvalidTuning)
	case c.Player.Velocity <= 0:
		return fmt.Errorf("config: velocity %v: %w", c.Player.Velocity, ErrInvalidTuning)
	case c.Player.AttackDuration <= 0:
		return fmt.Errorf("config: attack_duration %v: %w", c.Player.AttackDuration, ErrInvalidTuning)
	}

	colors := map[string]RGB{
		"background": c.Palette.Background,
		"body":       c.Palette.Body,
		"front":      c.Palette.Front,
		"sword":      c.Palette.Sword,
		"pillar":     c.Palette.Pillar,
	}
	for name, rgb := range colors {
		for _, v := range rgb {
			if v < 0 || v > 1 {
				return fmt.Errorf("config: palette %s %v: %w", name, rgb, ErrInvalidTuning)
			}
		}
	}
	return nil
}
