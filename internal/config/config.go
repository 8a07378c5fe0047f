package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/lander/internal/input"
	"github.com/san-kum/lander/internal/logger"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHost    = "tui"
	DefaultFPS     = 60
	DefaultKeyHold = 150 * time.Millisecond
	DefaultWidth   = 800
	DefaultHeight  = 800
	DefaultDataDir = ".lander"
)

var ErrInvalid = errors.New("config: invalid value")

var Hosts = []string{"tui", "gui", "web"}

type Config struct {
	Host        string              `yaml:"host"`
	FPS         int                 `yaml:"fps"`
	TouchPolicy string              `yaml:"touch_policy"`
	Layout      input.Layout        `yaml:"layout"`
	Keymap      map[string]string   `yaml:"keymap"`
	KeyHold     time.Duration       `yaml:"key_hold"`
	Window      WindowConfig        `yaml:"window"`
	Trace       TraceConfig         `yaml:"trace"`
	DataDir     string              `yaml:"data_dir"`
	Log         logger.LoggerConfig `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type TraceConfig struct {
	Enabled bool `yaml:"enabled"`
}

func DefaultConfig() *Config {
	return &Config{
		Host:        DefaultHost,
		FPS:         DefaultFPS,
		TouchPolicy: input.MultiTouch.String(),
		Layout:      input.DefaultLayout(),
		Keymap: map[string]string{
			input.KeyArrowUp:    "bottom",
			input.KeyArrowLeft:  "left",
			input.KeyArrowRight: "right",
		},
		KeyHold: DefaultKeyHold,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  "Lander",
		},
		DataDir: DefaultDataDir,
		Log:     logger.DefaultConfig(),
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML file over base. Fields missing from the file keep
// their base values. A keymap in the file replaces the base keymap as a
// whole.
func LoadInto(path string, base *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	keymap := base.Keymap
	base.Keymap = nil
	if err := yaml.Unmarshal(data, base); err != nil {
		base.Keymap = keymap
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if base.Keymap == nil {
		base.Keymap = keymap
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if !validHost(c.Host) {
		return fmt.Errorf("%w: host %q", ErrInvalid, c.Host)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	if c.KeyHold <= 0 {
		return fmt.Errorf("%w: key_hold must be positive, got %s", ErrInvalid, c.KeyHold)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if _, err := c.InputOptions(); err != nil {
		return err
	}
	return nil
}

// InputOptions builds the mapping options described by the config.
func (c *Config) InputOptions() (input.Options, error) {
	policy, err := input.ParsePolicy(c.TouchPolicy)
	if err != nil {
		return input.Options{}, err
	}
	if err := c.Layout.Validate(); err != nil {
		return input.Options{}, err
	}
	km, err := input.ParseKeymap(c.Keymap)
	if err != nil {
		return input.Options{}, err
	}
	return input.Options{Keymap: km, Layout: c.Layout, Policy: policy}, nil
}

func validHost(h string) bool {
	for _, v := range Hosts {
		if v == h {
			return true
		}
	}
	return false
}
