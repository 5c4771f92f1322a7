package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/darkpath/internal/core"
	"github.com/vovakirdan/darkpath/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Dark Path locally",
	Long: `Start a local game in the hub, the portal room every run begins in.

Controls:
  A/H/Left      - Move left (climbs taller columns)
  D/L/Right     - Move right
  S/Down        - Stop moving
  W/K/Up/Space  - Use the portal or pickup under you
  P             - Pause
  Tab           - Level overview
  Ctrl+S        - Save a text screenshot to ~/.darkpath/screenshots
  F             - Toggle fullscreen (alternate screen)
  Q/Esc/Ctrl+C  - Quit

Examples:
  darkpath play
  darkpath play --seed 42
  darkpath play --config ./darkpath.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Debug("starting local game", "seed", flagSeed, "width", width, "height", height)

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Host.TickRate,
			Seed:     flagSeed,
		},
		Logger: logger,
	})
}
