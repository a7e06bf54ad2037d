// magictree is a terminal rendition of Magic Tree, a vertical climbing
// platformer: climb the tree, drop apples on the critters and collect the
// diamonds they leave behind.
//
// Usage:
//
//	magictree play                 - Play in the terminal
//	magictree sim                  - Run a headless simulation and print a report
//	magictree config               - Print the default game config
//	magictree settings show        - Show saved player settings
//	magictree settings set <k> <v> - Change a player setting
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log file used while the terminal UI runs
//
// Flag defaults may also come from MAGICTREE_* variables in the
// environment or a .env file in the working directory.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "magictree",
	Short: "Magic Tree - climb the tree in your terminal",
	Long: `Magic Tree is a vertical climbing platformer for the terminal.

Climb the endless tree, drop apples on caterpillars, owls, bugs and
thunderclouds, and collect the diamonds the apples turn into. Reach the
top of the tree to clear the game.

Available commands:
  play      - Play the game
  sim       - Run a headless simulation
  config    - Print the default game config
  settings  - Show or change player settings

Examples:
  magictree play
  magictree play --seed 42
  magictree sim --ticks 3600 --seed 7
  magictree config > ~/.magictree/configs/magictree.yaml
  magictree settings set music_volume 0.5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// A missing .env file is fine; real environment variables win.
	//nolint:errcheck // Best-effort
	godotenv.Load()

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envInt("MAGICTREE_FPS", 60), "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", int64(envInt("MAGICTREE_SEED", 0)), "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("MAGICTREE_CONFIG"), "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envString("MAGICTREE_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", os.Getenv("MAGICTREE_LOG_FILE"), "Log file while playing (default ~/.magictree/magictree.log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(settingsCmd)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q: not a number\n", key, v)
		return fallback
	}
	return n
}
