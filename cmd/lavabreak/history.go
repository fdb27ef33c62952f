package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lavabreak/internal/platform/tui"
	"github.com/vovakirdan/lavabreak/internal/registry"
	"github.com/vovakirdan/lavabreak/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Browse the run log",
	Long: `Show past runs with how they ended, frames played and bricks destroyed.

Opens an interactive table when stdout is a terminal; use --plain for text.

Examples:
  lavabreak history
  lavabreak history lava_classic --plain
  lavabreak history lava --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs of the game")
}

func runHistory(cmd *cobra.Command, args []string) {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		logger.Info("run log cleared", "game", gameID)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunHistory(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history view: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printHistory(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
}

// printHistory writes the latest runs and a summary to stdout.
func printHistory(store *storage.Store, gameID string) error {
	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.RunStats(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Run History - %s\n", gameID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lavabreak play %s' to start the log!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-6s  %-7s  %-8s  %-7s  %-8s  %s\n", "ID", "Ended", "Frames", "Bricks", "Time", "Date")
	fmt.Printf("  %-6s  %-7s  %-8s  %-7s  %-8s  %s\n", "--", "-----", "------", "------", "----", "----")

	for _, r := range runs {
		fmt.Printf("  %-6d  %-7s  %-8d  %-7s  %-8s  %s\n",
			r.ID,
			r.EndReason,
			r.Frames,
			fmt.Sprintf("%d/%d", r.BricksDestroyed, r.BricksTotal),
			r.Duration.Round(100*time.Millisecond),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	fmt.Printf("Runs: %d (lava %d, quit %d, closed %d)  Best: %d bricks  Played: %s\n",
		stats.Runs, stats.Hazard, stats.Quit, stats.Host, stats.BestDestroyed,
		stats.TotalDuration.Round(time.Second))
	return nil
}
