package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavabreak/internal/config"
	"github.com/vovakirdan/lavabreak/internal/registry"
)

var flagTOML bool

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default configuration",
	Long: `Print the default configuration of a game variant as YAML (or TOML).

Save the output to ~/.lavabreak/configs/lava.yaml (or lava.toml) to change
the defaults, or pass it to 'play --config'.

Examples:
  lavabreak config > ~/.lavabreak/configs/lava.yaml
  lavabreak config lava_classic --toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagTOML, "toml", false, "Print TOML instead of YAML")
}

func runConfig(cmd *cobra.Command, args []string) {
	gameID := "lava"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	// The embedded YAML keeps its comments
	if gameID == "lava" && !flagTOML {
		fmt.Print(string(config.GetDefaultYAML(gameID)))
		return
	}

	cfg := config.DefaultLavaConfig()
	if gameID == "lava_classic" {
		cfg = config.ClassicLavaConfig()
	}

	format := "yaml"
	if flagTOML {
		format = "toml"
	}
	if err := config.Encode(os.Stdout, format, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
}
