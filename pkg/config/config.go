// Package config provides TOML-based configuration for ponysay. A file
// with a .yaml or .yml extension is read as YAML instead.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tinyland/lab/ponysay/pkg/balloon"
	"gitlab.com/tinyland/lab/ponysay/pkg/terminal"
)

// Config is the complete ponysay configuration.
type Config struct {
	Paths   PathsConfig   `toml:"paths" yaml:"paths"`
	Render  RenderConfig  `toml:"render" yaml:"render"`
	Fortune FortuneConfig `toml:"fortune" yaml:"fortune"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// PathsConfig lists the directories searched for each kind of asset, in
// priority order.
type PathsConfig struct {
	Ponies   []string `toml:"ponies" yaml:"ponies"`
	Balloons []string `toml:"balloons" yaml:"balloons"`
	Fortunes []string `toml:"fortunes" yaml:"fortunes"`
}

// RenderConfig holds the defaults for a render that flags can override.
type RenderConfig struct {
	Pony    string `toml:"pony" yaml:"pony"`
	Balloon string `toml:"balloon" yaml:"balloon"`
	Mode    string `toml:"mode" yaml:"mode"`   // "say" or "think"
	Wrap    int    `toml:"wrap" yaml:"wrap"`   // 0 fits the terminal width
	Color   string `toml:"color" yaml:"color"` // "auto", "always" or "never"
}

// FortuneConfig controls the built-in fortune source.
type FortuneConfig struct {
	IncludeOffensive bool `toml:"include_offensive" yaml:"include_offensive"`
	EqualFiles       bool `toml:"equal_files" yaml:"equal_files"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // "debug", "info", "warn" or "error"
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	data := filepath.Join(xdgDataHome(home), "ponysay")

	return &Config{
		Paths: PathsConfig{
			Ponies: []string{
				filepath.Join(data, "ponies"),
				"/usr/share/ponysay/ponies",
				"/usr/share/ponysay/extraponies",
				"/usr/share/ponysay/ttyponies",
				"/usr/local/share/ponysay/ponies",
				"/usr/local/share/ponysay/extraponies",
				"/usr/local/share/ponysay/ttyponies",
			},
			Balloons: []string{
				filepath.Join(data, "balloons"),
				"/usr/share/ponysay/balloons",
				"/usr/local/share/ponysay/balloons",
			},
			Fortunes: []string{
				"/usr/share/games/fortunes",
				"/usr/share/fortune",
			},
		},
		Render: RenderConfig{
			Mode:  "say",
			Wrap:  40,
			Color: string(terminal.ColorAuto),
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks the configuration for values no command could use.
func (c *Config) Validate() error {
	if _, err := balloon.ParseMode(c.Render.Mode); err != nil {
		return fmt.Errorf("render.mode: %w", err)
	}
	if c.Render.Wrap < 0 {
		return fmt.Errorf("render.wrap must be non-negative, got %d", c.Render.Wrap)
	}
	if _, err := terminal.ParseColorMode(c.Render.Color); err != nil {
		return fmt.Errorf("render.color: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// Mode returns the parsed balloon mode. Call Validate first.
func (c *Config) Mode() balloon.Mode {
	m, _ := balloon.ParseMode(c.Render.Mode)
	return m
}

// ColorMode returns the parsed color mode. Call Validate first.
func (c *Config) ColorMode() terminal.ColorMode {
	m, _ := terminal.ParseColorMode(c.Render.Color)
	return m
}
