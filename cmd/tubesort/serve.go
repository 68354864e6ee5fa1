package main

import (
	"fmt"
	"net"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tubesort/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServePacks  string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tube Sort SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the menu.
Scores are stored per-server (all users share the same leaderboard);
campaign progress is tracked per SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tubesort/host_key

Examples:
  tubesort serve                           # Listen on :23234 with auto-generated key
  tubesort serve --ssh :2222               # Listen on port 2222
  tubesort serve --host-key ./my_host_key  # Use specific host key
  tubesort serve --pack ./packs            # Offer puzzle packs to players

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServePacks, "pack", "", "Directory of puzzle packs offered to players")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		PackDir:     flagServePacks,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	logger := log.Default().WithPrefix("tubesort-ssh")
	logger.SetReportTimestamp(true)

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if _, port, err := net.SplitHostPort(cfg.Address); err == nil {
		logger.Info("press Ctrl+C to stop", "connect", "ssh localhost -p "+port)
	}

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
