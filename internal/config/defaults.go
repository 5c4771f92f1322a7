package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/darkpath.yaml
var defaultDarkPathYAML []byte

// DefaultConfig returns the default Dark Path configuration.
func DefaultConfig() DarkPathConfig {
	return DarkPathConfig{
		Display: DisplayConfig{
			CellWidth:     6,
			CellHeight:    12,
			ShowMezzanine: true,
		},
		Host: HostConfig{
			TickRate:     60,
			MaxFrameTime: 0.1,
			HoldWindow:   600 * time.Millisecond,
		},
		Keys: KeysConfig{
			Left:       []string{"left", "a", "h"},
			Right:      []string{"right", "d", "l"},
			Interact:   []string{"up", "w", "k", " ", "enter"},
			Stop:       []string{"down", "s"},
			Pause:      []string{"p"},
			Screenshot: []string{"ctrl+s"},
			Fullscreen: []string{"f"},
			Overview:   []string{"tab"},
			Quit:       []string{"q", "esc", "ctrl+c"},
		},
		Server: ServerConfig{
			Address:     ":2222",
			HostKeyPath: ".ssh/darkpath_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDarkPathYAML
}
