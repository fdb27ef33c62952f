package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavabreak/internal/config"
	"github.com/vovakirdan/lavabreak/internal/games/lava"
	"github.com/vovakirdan/lavabreak/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeGame   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lavabreak SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent session of --game.
Runs from every connection go to the same run log.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lavabreak/host_key

Examples:
  lavabreak serve                           # Listen on :23234 with auto-generated key
  lavabreak serve --ssh :2222               # Listen on port 2222
  lavabreak serve --game lava_classic       # Serve the frame-locked variant
  lavabreak serve --host-key ./my_host_key  # Use specific host key
  lavabreak serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeGame, "game", "lava", "Game variant served to every connection")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	serveCmd.Flags().DurationVar(&flagKeyHold, "key-hold", tui.DefaultKeyHold, "How long a key stays held after its last event")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	// Fail fast on a broken config instead of once per connection
	if _, err := config.LoadLava(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	lava.SetConfigPath(flagConfig)
	lava.SetDifficultyPreset(flagDifficulty)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		GameID:      flagServeGame,
		TickRate:    flagFPS,
		KeyHold:     flagKeyHold,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting lavabreak SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
