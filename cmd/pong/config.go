package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after applying the
config file, the difficulty preset and --fps, as YAML.

The output is a valid config file:
  pong config > ~/.pong/configs/pong.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

// loadSettings loads the config file and applies the global flags to it.
func loadSettings() (config.PongConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, err
	}
	if flagFPS < 0 {
		return config.PongConfig{}, fmt.Errorf("--fps must not be negative, got %d", flagFPS)
	}

	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPongPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Court.FPS = flagFPS
	}
	return cfg, nil
}
