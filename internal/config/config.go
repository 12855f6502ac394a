// Package config loads the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Zero or missing keys keep their
// defaults.
type Config struct {
	Log struct {
		File  string `yaml:"file"`  // empty disables logging
		Level string `yaml:"level"` // logrus level name
	} `yaml:"log"`
	Navigation struct {
		PageStep int `yaml:"page_step"` // rows moved by PgUp/PgDn/Left/Right
	} `yaml:"navigation"`
	Listing struct {
		Hide []string `yaml:"hide"` // glob patterns matched against names
	} `yaml:"listing"`
	Commands struct {
		Copy    []string      `yaml:"copy"`
		Remove  []string      `yaml:"remove"`
		MkDir   []string      `yaml:"mkdir"`
		Open    []string      `yaml:"open"`
		Timeout time.Duration `yaml:"timeout"` // 0 disables the bound
	} `yaml:"commands"`
	Watch struct {
		Debounce time.Duration `yaml:"debounce"`
	} `yaml:"watch"`
	Editor struct {
		TabWidth int `yaml:"tab_width"`
	} `yaml:"editor"`
}

const (
	appName         = "fir"
	configFileName  = "config.yaml"
	defaultPageStep = 20
	defaultDebounce = 100 * time.Millisecond
	defaultTabWidth = 4
)

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Navigation.PageStep = defaultPageStep
	cfg.Listing.Hide = []string{}
	cfg.Watch.Debounce = defaultDebounce
	cfg.Editor.TabWidth = defaultTabWidth
	return cfg
}

// DefaultPath returns $XDG_CONFIG_HOME/fir/config.yaml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

// Load reads path and merges it over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	cfg.merge(&loaded)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Log.File != "" {
		c.Log.File = o.Log.File
	}
	if o.Log.Level != "" {
		c.Log.Level = o.Log.Level
	}
	if o.Navigation.PageStep != 0 {
		c.Navigation.PageStep = o.Navigation.PageStep
	}
	if len(o.Listing.Hide) > 0 {
		c.Listing.Hide = o.Listing.Hide
	}
	if len(o.Commands.Copy) > 0 {
		c.Commands.Copy = o.Commands.Copy
	}
	if len(o.Commands.Remove) > 0 {
		c.Commands.Remove = o.Commands.Remove
	}
	if len(o.Commands.MkDir) > 0 {
		c.Commands.MkDir = o.Commands.MkDir
	}
	if len(o.Commands.Open) > 0 {
		c.Commands.Open = o.Commands.Open
	}
	c.Commands.Timeout = o.Commands.Timeout
	if o.Watch.Debounce != 0 {
		c.Watch.Debounce = o.Watch.Debounce
	}
	if o.Editor.TabWidth != 0 {
		c.Editor.TabWidth = o.Editor.TabWidth
	}
}

// Validate checks value ranges and patterns.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Navigation.PageStep < 1 {
		return fmt.Errorf("navigation.page_step must be >= 1, got %d", c.Navigation.PageStep)
	}
	for i, pattern := range c.Listing.Hide {
		if pattern == "" {
			return fmt.Errorf("listing.hide %d: pattern is empty", i)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("listing.hide %d: %w", i, err)
		}
	}
	for name, argv := range map[string][]string{
		"copy":   c.Commands.Copy,
		"remove": c.Commands.Remove,
		"mkdir":  c.Commands.MkDir,
		"open":   c.Commands.Open,
	} {
		if len(argv) > 0 && argv[0] == "" {
			return fmt.Errorf("commands.%s: program is empty", name)
		}
	}
	if c.Commands.Timeout < 0 {
		return fmt.Errorf("commands.timeout must be >= 0")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must be >= 0")
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width must be between 1 and 16, got %d", c.Editor.TabWidth)
	}
	return nil
}
