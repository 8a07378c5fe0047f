package config

import (
	"sort"

	"github.com/san-kum/lander/internal/input"
)

// Presets are named adjustments applied on top of DefaultConfig.
var Presets = map[string]func(*Config){
	// one finger at a time, extra touches in the same event are ignored
	"classic": func(c *Config) {
		c.TouchPolicy = input.SingleTouch.String()
	},
	"multitouch": func(c *Config) {
		c.TouchPolicy = input.MultiTouch.String()
	},
	"wasd": func(c *Config) {
		c.Keymap = map[string]string{
			"w": "bottom", "a": "left", "d": "right",
			input.KeyArrowUp: "bottom", input.KeyArrowLeft: "left", input.KeyArrowRight: "right",
		}
	},
	"tall": func(c *Config) {
		c.Layout.BottomBand = 0.5
		c.Window.Width, c.Window.Height = 480, 800
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
