// pong is a two-player Pong clone for the terminal.
//
// Usage:
//
//	pong                 - Play (same as "pong play")
//	pong play            - Play a match: W/S move the left paddle, Up/Down the right
//	pong shapes          - Show the ball and paddle images in use
//	pong config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.pong, ./configs, built-in)
//	--tick <ms>         - Delay between ticks
//	--seed <value>      - RNG seed for reproducible serves and deflections
//	--shapes <dir>      - Directory with Ball.txt and Plank.txt
//	--mute              - Disable the goal sound
//	--log-file <path>   - Write diagnostics to a rotating log file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/console-pong/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagTick     int
	flagSeed     int64
	flagShapes   string
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Console Pong - two players, one keyboard",
	Long: `Console Pong is a two-player Pong clone rendered in the terminal.

The left player uses W/S, the right player the Up/Down arrows.
Press q or Esc to leave.

Examples:
  pong
  pong play --seed 42
  pong play --shapes ./art --mute
  pong shapes
  pong config > ~/.pong/pong.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Delay between ticks in milliseconds")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagShapes, "shapes", "", "Directory holding Ball.txt and Plank.txt")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable the goal sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		cfg.TickDelayMS = flagTick
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("shapes") {
		cfg.ShapesDir = flagShapes
	}
	if flags.Changed("mute") {
		cfg.Sound.Enabled = !flagMute
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
