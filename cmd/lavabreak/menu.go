package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lavabreak/internal/core"
	"github.com/vovakirdan/lavabreak/internal/games/lava"
	"github.com/vovakirdan/lavabreak/internal/platform/tui"
	"github.com/vovakirdan/lavabreak/internal/registry"
	"github.com/vovakirdan/lavabreak/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. After a run ends you
return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Run history
  Esc          - Back
  Q            - Quit

Examples:
  lavabreak menu
  lavabreak menu --fps 30
  lavabreak menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	menuCmd.Flags().DurationVar(&flagKeyHold, "key-hold", tui.DefaultKeyHold, "How long a key stays held after its last event")
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run log", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		TermW:    width,
		TermH:    height,
		TickRate: flagFPS,
	}
	lava.SetConfigPath(flagConfig)

	lastGameID := ""
	for {
		menuResult, err := tui.RunMenu(cfg, lastGameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsHistory {
			if err := tui.RunHistory(store, lastGameID, cfg.TermW, cfg.TermH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue // Back to menu
		}

		lastGameID = menuResult.GameID
		lava.SetDifficultyPreset(string(menuResult.Difficulty))

		game, err := registry.Create(lastGameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		run, err := tui.Run(game, store, cfg, tui.Options{
			KeyHold: flagKeyHold,
			Logger:  logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		logger.Debug("run finished", "game", run.GameID, "reason", run.EndReason, "frames", run.Frames)
	}
}
