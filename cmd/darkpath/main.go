// darkpath is a minimal side-scrolling platformer played in the terminal.
//
// Usage:
//
//	darkpath play            - Play locally
//	darkpath serve           - Start SSH server for remote play
//	darkpath preview         - Print a generated level as text
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Base seed for reproducible levels (0 = wall clock)
//	--config <path>      - Path to a config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/darkpath/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "darkpath",
	Short: "Dark Path - climb procedural terrain in your terminal",
	Long: `Dark Path is a minimal side-scrolling platformer. Climb procedurally
generated terrain, collect pickups that grow levels, and take portals
between levels.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  preview  - Print a generated level as text

Examples:
  darkpath play
  darkpath play --seed 42
  darkpath serve --ssh :2222
  darkpath preview --seed 42 --level 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Base level seed (0 = wall clock, not reproducible)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default: from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (config.DarkPathConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Host.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	return logger, nil
}

// playLogger returns the logger for local play. The terminal belongs to the
// game, so debug logs go to ~/.darkpath/darkpath.log and anything else is
// discarded. The returned func closes the log file.
func playLogger(level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl > log.DebugLevel {
		logger, err := newLogger(io.Discard, level, "darkpath")
		return logger, func() {}, err
	}

	dir := config.UserDir()
	if dir == "" {
		return nil, nil, fmt.Errorf("cannot get home directory for log file")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "darkpath.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, level, "darkpath")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
