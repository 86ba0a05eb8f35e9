// pong is a single-player bouncing ball toy for the terminal.
//
// Usage:
//
//	pong play                - Play with the default Bubble Tea backend
//	pong play --backend tcell - Play on a raw tcell screen
//	pong list                - List available backends
//	pong config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Override the frame rate (default: court.fps from config)
//	--seed <value>        - Set RNG seed for a reproducible serve
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Log destination (default: ~/.pong/pong.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-pong/internal/platform/term"
	_ "github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - bounce a ball off a paddle in your terminal",
	Long: `Pong is a single-player toy: a ball bounces around the terminal and
you steer a paddle on the right edge with the mouse or keyboard.

Reaching the left wall scores a point. Letting the ball past the paddle
loses one.

Available commands:
  play     - Start playing
  list     - Show available render backends
  config   - Print the effective configuration

Examples:
  pong play
  pong play --backend tcell --sound
  pong play --difficulty hard --seed 42
  pong config --config ./my-pong.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = court.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.pong/pong.log", "Log file path (empty = no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
