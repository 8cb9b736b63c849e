// Package config loads engine settings from INI files.
//
// A built-in default file is always loaded first and the user file is
// overlaid on top, so a user file only lists what it changes:
//
//	[Screen]
//	Width    = 800
//	Height   = 600
//
//	[Kernel]
//	Backend  = reference
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/gogpu/gg-transit/internal/kernel"
)

const defaultINI = `
[Screen]
Width    = 640
Height   = 480
RatioNum = 1
RatioDen = 1

[Effect]
StripeWidth    = 16
CurtainWidth   = 24
QuakeAmplitude = 12
EffectCut      = false

[Kernel]
Backend = auto

[Log]
Level = warn
`

// Config holds every setting.
type Config struct {
	Screen Screen `ini:"Screen"`
	Effect Effect `ini:"Effect"`
	Kernel Kernel `ini:"Kernel"`
	Log    Log    `ini:"Log"`
}

// Screen describes the frame size and the asset scaling ratio.
type Screen struct {
	Width    int `ini:"Width"`
	Height   int `ini:"Height"`
	RatioNum int `ini:"RatioNum"`
	RatioDen int `ini:"RatioDen"`
}

// Effect holds the base geometry of the transition catalog, before
// screen-ratio scaling.
type Effect struct {
	StripeWidth    int  `ini:"StripeWidth"`
	CurtainWidth   int  `ini:"CurtainWidth"`
	QuakeAmplitude int  `ini:"QuakeAmplitude"`
	EffectCut      bool `ini:"EffectCut"`
}

// Kernel selects the compositing backend.
type Kernel struct {
	Backend string `ini:"Backend"`
}

// Log sets the log level.
type Log struct {
	Level string `ini:"Level"`
}

var loadOptions = ini.LoadOptions{
	Insensitive:             false,
	SkipUnrecognizableLines: true,
	AllowShadows:            false,
}

// Default returns the built-in settings.
func Default() *Config {
	c, err := LoadBytes(nil)
	if err != nil {
		panic(fmt.Sprintf("config: default settings: %v", err))
	}
	return c
}

// Load reads path on top of the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return LoadBytes(nil)
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses INI data on top of the defaults.
func LoadBytes(data []byte) (*Config, error) {
	sources := []any{[]byte(defaultINI)}
	if len(data) > 0 {
		sources = append(sources, data)
	}
	f, err := ini.LoadSources(loadOptions, sources[0], sources[1:]...)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read data: %w", err)
	}
	var c Config
	if err := f.MapTo(&c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("config: screen size %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Screen.RatioNum <= 0 || c.Screen.RatioDen <= 0:
		return fmt.Errorf("config: screen ratio %d/%d", c.Screen.RatioNum, c.Screen.RatioDen)
	case c.Effect.StripeWidth <= 0 || c.Effect.CurtainWidth <= 0 || c.Effect.QuakeAmplitude <= 0:
		return errors.New("config: effect geometry must be positive")
	}
	if _, err := c.Backend(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Backend returns the configured kernel backend.
func (c *Config) Backend() (kernel.Backend, error) {
	return kernel.ParseBackend(c.Kernel.Backend)
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(c.Log.Level))))
	return l, err
}
