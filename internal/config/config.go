// Package config provides YAML-based configuration loading for Dark Path:
// the terminal view, the host loop, key bindings, the SSH server and logging.
// Gameplay physics are fixed and deliberately absent from this package.
package config

import (
	"fmt"
	"time"
)

// DarkPathConfig contains all configuration for Dark Path.
type DarkPathConfig struct {
	Display DisplayConfig `yaml:"display"`
	Host    HostConfig    `yaml:"host"`
	Keys    KeysConfig    `yaml:"keys"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig defines how world units map onto terminal cells.
type DisplayConfig struct {
	CellWidth     float64 `yaml:"cell_width"`  // World units per column
	CellHeight    float64 `yaml:"cell_height"` // World units per row
	ShowMezzanine bool    `yaml:"show_mezzanine"`
}

// HostConfig defines the tick loop and held-key emulation.
type HostConfig struct {
	TickRate     int           `yaml:"tick_rate"`      // Ticks per second
	MaxFrameTime float64       `yaml:"max_frame_time"` // Upper bound of a tick's frametime, in seconds
	HoldWindow   time.Duration `yaml:"hold_window"`    // How long a direction stays held after a key press
}

// KeysConfig lists the key names bound to each action.
// Names use Bubble Tea's notation ("left", "ctrl+s", " " for space).
type KeysConfig struct {
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	Interact   []string `yaml:"interact"`
	Stop       []string `yaml:"stop"`
	Pause      []string `yaml:"pause"`
	Screenshot []string `yaml:"screenshot"`
	Fullscreen []string `yaml:"fullscreen"`
	Overview   []string `yaml:"overview"`
	Quit       []string `yaml:"quit"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address        string        `yaml:"address"`
	HostKeyPath    string        `yaml:"host_key_path"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MetricsAddress string        `yaml:"metrics_address"` // Empty disables /metrics
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Normalize replaces missing or invalid values with defaults, so a partial
// YAML file only needs to set what it changes.
func (c *DarkPathConfig) Normalize() {
	def := DefaultConfig()

	if c.Display.CellWidth <= 0 {
		c.Display.CellWidth = def.Display.CellWidth
	}
	if c.Display.CellHeight <= 0 {
		c.Display.CellHeight = def.Display.CellHeight
	}
	if c.Host.TickRate <= 0 {
		c.Host.TickRate = def.Host.TickRate
	}
	if c.Host.MaxFrameTime <= 0 {
		c.Host.MaxFrameTime = def.Host.MaxFrameTime
	}
	if c.Host.HoldWindow <= 0 {
		c.Host.HoldWindow = def.Host.HoldWindow
	}

	keys := []struct {
		dst *[]string
		def []string
	}{
		{&c.Keys.Left, def.Keys.Left},
		{&c.Keys.Right, def.Keys.Right},
		{&c.Keys.Interact, def.Keys.Interact},
		{&c.Keys.Stop, def.Keys.Stop},
		{&c.Keys.Pause, def.Keys.Pause},
		{&c.Keys.Screenshot, def.Keys.Screenshot},
		{&c.Keys.Fullscreen, def.Keys.Fullscreen},
		{&c.Keys.Overview, def.Keys.Overview},
		{&c.Keys.Quit, def.Keys.Quit},
	}
	for _, k := range keys {
		if len(*k.dst) == 0 {
			*k.dst = k.def
		}
	}

	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.HostKeyPath == "" {
		c.Server.HostKeyPath = def.Server.HostKeyPath
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = def.Server.IdleTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate reports bindings that map one key to two different actions.
func (c DarkPathConfig) Validate() error {
	seen := make(map[string]string)
	groups := []struct {
		name string
		keys []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"interact", c.Keys.Interact},
		{"stop", c.Keys.Stop},
		{"pause", c.Keys.Pause},
		{"screenshot", c.Keys.Screenshot},
		{"fullscreen", c.Keys.Fullscreen},
		{"overview", c.Keys.Overview},
		{"quit", c.Keys.Quit},
	}
	for _, g := range groups {
		for _, k := range g.keys {
			if prev, ok := seen[k]; ok && prev != g.name {
				return fmt.Errorf("config: key %q bound to both %s and %s", k, prev, g.name)
			}
			seen[k] = g.name
		}
	}
	return nil
}
