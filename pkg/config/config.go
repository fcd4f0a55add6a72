// Package config loads the optional settings file for a UI instance.
//
// Settings can be written as YAML (.yaml, .yml) or TOML (.toml). Every field
// is optional; missing values keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds tunables for a UI instance.
type Config struct {
	Messages MessagesConfig `yaml:"messages" toml:"messages"`
	Input    InputConfig    `yaml:"input" toml:"input"`
	Layout   LayoutConfig   `yaml:"layout" toml:"layout"`
	Debug    DebugConfig    `yaml:"debug" toml:"debug"`
}

// MessagesConfig controls the message queue drain.
type MessagesConfig struct {
	// MaxPerTick caps how many messages one tick dispatches. Zero means
	// unlimited. Messages beyond the cap stay queued for the next tick.
	MaxPerTick int `yaml:"max_per_tick" toml:"max_per_tick"`
}

// InputConfig controls input routing.
type InputConfig struct {
	// DragThreshold is the cursor travel, in logical pixels, after which a
	// press on a draggable widget starts a drag.
	DragThreshold float32 `yaml:"drag_threshold" toml:"drag_threshold"`
	// ReleaseCaptureOnMouseUp releases mouse capture once a mouse-up has
	// been routed to the capturing widget.
	ReleaseCaptureOnMouseUp *bool `yaml:"release_capture_on_mouse_up,omitempty" toml:"release_capture_on_mouse_up,omitempty"`
}

// LayoutConfig controls tree and layout behavior.
type LayoutConfig struct {
	// RejectCycles makes LinkNodes refuse links that would make a node its
	// own ancestor.
	RejectCycles *bool `yaml:"reject_cycles,omitempty" toml:"reject_cycles,omitempty"`
}

// DebugConfig enables diagnostics.
type DebugConfig struct {
	// Verbose adds stack traces to logged errors.
	Verbose bool `yaml:"verbose" toml:"verbose"`
	// Visual outlines the picked and focused widgets in the draw list.
	Visual bool `yaml:"visual" toml:"visual"`
}

const (
	defaultMaxPerTick    = 10000
	defaultDragThreshold = 5
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Messages: MessagesConfig{MaxPerTick: defaultMaxPerTick},
		Input:    InputConfig{DragThreshold: defaultDragThreshold},
	}
}

// ReleaseCaptureOnMouseUp reports the effective capture release setting.
func (c *Config) ReleaseCaptureOnMouseUp() bool {
	return c.Input.ReleaseCaptureOnMouseUp == nil || *c.Input.ReleaseCaptureOnMouseUp
}

// RejectCycles reports the effective cycle check setting.
func (c *Config) RejectCycles() bool {
	return c.Layout.RejectCycles == nil || *c.Layout.RejectCycles
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Messages.MaxPerTick < 0 {
		return fmt.Errorf("messages.max_per_tick must be >= 0, got %d", c.Messages.MaxPerTick)
	}
	if c.Input.DragThreshold < 0 {
		return fmt.Errorf("input.drag_threshold must be >= 0, got %v", c.Input.DragThreshold)
	}
	return nil
}

// Load reads the file at path. The decoder is chosen by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data, formatOf(path))
}

// LoadOptional is like Load but returns the defaults when the file does
// not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Format names a settings file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Parse decodes data in the given format on top of the defaults.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse toml config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
