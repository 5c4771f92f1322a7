package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/darkpath/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Dark Path SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent world. Nothing is kept
after a session ends.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses server.host_key_path from config, relative to ~/.darkpath
  - The key is generated on first start

Examples:
  darkpath serve                           # Listen on :2222
  darkpath serve --ssh :23234              # Listen on port 23234
  darkpath serve --metrics :9090           # Also serve Prometheus /metrics
  darkpath serve --seed 42                 # Every session gets the same levels

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default: from config, :2222)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default: from config)")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Prometheus /metrics address (empty = from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}
	if flagMetricsAddr != "" {
		cfg.Server.MetricsAddress = flagMetricsAddr
	}

	logger, err := newLogger(os.Stderr, cfg.Log.Level, "darkpath-ssh")
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(cfg, flagSeed, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Dark Path SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
