package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/testbed2d/render"
)

// Config file location; EnvPath overrides DefaultPath
const (
	EnvPath     = "TESTBED_CONFIG"
	DefaultPath = "testbed.toml"
)

type Config struct {
	Testbed TestbedConfig `toml:"testbed"`
	View    ViewConfig    `toml:"view"`
	Scene   SceneConfig   `toml:"scene"`
	Logging LoggingConfig `toml:"logging"`

	// Keys present in the file that match no field, set by Load
	Unknown []string `toml:"-"`
}

type TestbedConfig struct {
	UpdateInterval time.Duration `toml:"update_interval"`
	RenderInterval time.Duration `toml:"render_interval"`
	StatusBar      bool          `toml:"status_bar"`
}

type ViewConfig struct {
	Zoom       float64 `toml:"zoom"`
	Background string  `toml:"background"` // #rgb or #rrggbb
}

type SceneConfig struct {
	File string `toml:"file"` // .yaml, .yml or .lua; empty runs the builtin demo
}

type LoggingConfig struct {
	File   string `toml:"file"` // empty disables logging
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Path returns the config path from the environment or DefaultPath
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, key.String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the testbed cannot run with
func (c *Config) Validate() error {
	if c.Testbed.UpdateInterval <= 0 {
		return fmt.Errorf("testbed.update_interval must be positive, got %s", c.Testbed.UpdateInterval)
	}
	if c.Testbed.RenderInterval <= 0 {
		return fmt.Errorf("testbed.render_interval must be positive, got %s", c.Testbed.RenderInterval)
	}
	if c.View.Zoom <= 0 {
		return fmt.Errorf("view.zoom must be positive, got %g", c.View.Zoom)
	}
	if _, err := c.View.BackgroundRGB(); err != nil {
		return fmt.Errorf("view.background: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// BackgroundRGB parses the background color
func (v ViewConfig) BackgroundRGB() (render.RGB, error) {
	return render.ParseHex(v.Background)
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Testbed: TestbedConfig{
			UpdateInterval: 16 * time.Millisecond,
			RenderInterval: 33 * time.Millisecond,
			StatusBar:      true,
		},
		View: ViewConfig{
			Zoom:       render.DefaultZoom,
			Background: "#000000",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
