package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lavabreak/internal/config"
	"github.com/vovakirdan/lavabreak/internal/core"
	"github.com/vovakirdan/lavabreak/internal/games/lava"
	"github.com/vovakirdan/lavabreak/internal/platform/tui"
	"github.com/vovakirdan/lavabreak/internal/registry"
	"github.com/vovakirdan/lavabreak/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagKeyHold    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game variant",
	Long: `Start playing the specified variant (default: lava).

Variants:
  lava          - Motion follows wall-clock time
  lava_classic  - One displacement per frame, classic collisions

Controls:
  Left/A/H   - Move paddle left
  Right/D/L  - Move paddle right
  Esc        - End the session
  Q/Ctrl+C   - Close immediately

Terminals report key presses but not releases, so a key counts as held
for --key-hold after its last press or autorepeat.

Difficulty options:
  easy   - Slower ball, faster and wider paddle
  normal - Configured values
  hard   - Faster ball and paddle

Examples:
  lavabreak play
  lavabreak play lava_classic --fps 120
  lavabreak play lava --difficulty hard
  lavabreak play lava --config ./my-lava.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().DurationVar(&flagKeyHold, "key-hold", tui.DefaultKeyHold, "How long a key stays held after its last event")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "lava"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lavabreak list' to see available games.")
		os.Exit(1)
	}

	if flagDifficulty != "" && config.ParseDifficultyPreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "error", termErr)
	}

	cfg := core.RuntimeConfig{
		TermW:    width,
		TermH:    height,
		TickRate: flagFPS,
	}

	// Set config path and difficulty for games before creation
	lava.SetConfigPath(flagConfig)
	lava.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run log", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	run, runErr := tui.Run(game, store, cfg, tui.Options{
		KeyHold: flagKeyHold,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	logger.Info("run finished",
		"game", run.GameID,
		"reason", run.EndReason,
		"frames", run.Frames,
		"bricks", fmt.Sprintf("%d/%d", run.BricksDestroyed, run.BricksTotal),
		"time", run.Duration.Round(10*time.Millisecond),
	)
}
