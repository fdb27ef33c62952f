// lavabreak is a breakout simulation with a lava floor, played in the terminal.
//
// Usage:
//
//	lavabreak list              - List available game variants
//	lavabreak play <game>       - Play a variant
//	lavabreak menu              - Pick a variant from a menu
//	lavabreak serve             - Start SSH server for remote play
//	lavabreak history [game]    - Browse the run log
//	lavabreak config [game]     - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.lavabreak/runs.db)
//	--log-level <level>   - Set log level: debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/lavabreak/internal/games/lava"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

// logger writes CLI diagnostics to stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "lavabreak",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lavabreak",
	Short: "Lava Breakout - bounce the ball, break the bricks, avoid the lava",
	Long: `Lava Breakout is a terminal breakout: a paddle deflects a ball into a
grid of bricks, and the session ends when the ball touches the lava strip
along the bottom of the field.

Available commands:
  list     - Show all game variants
  play     - Play a variant
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  history  - Browse past runs
  config   - Print the default configuration

Examples:
  lavabreak list
  lavabreak play lava
  lavabreak play lava_classic --fps 120
  lavabreak serve --ssh :2222
  lavabreak history lava`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		log.SetDefault(logger)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lavabreak/runs.db", "Path to run log database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
