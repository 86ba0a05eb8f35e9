package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/sound"
)

var (
	flagBackend string
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play pong",
	Long: `Start the game.

Controls:
  Click       - Steer the paddle toward the pointer, click the paddle to stop it
  Up/W, Down/S - Move the paddle
  Space       - Stop the paddle
  P           - Pause
  R           - Restart
  Ctrl+S      - Screenshot (tui backend)
  ?           - More keys (tui backend)
  Q/Esc       - Quit

Difficulty options:
  easy   - Ball and paddle at 60% speed
  normal - Speeds as configured
  hard   - Ball and paddle at 150% speed
  fixed  - Speeds as configured, no scaling

Examples:
  pong play
  pong play --backend tcell
  pong play --sound --difficulty easy
  pong play --config ./my-pong.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Render backend (see 'pong list')")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a tone on paddle hits, scores and misses")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(ctx context.Context) error {
	// Check if backend exists
	if !registry.Exists(flagBackend) {
		fmt.Fprintln(os.Stderr, "Run 'pong list' to see available backends.")
		return fmt.Errorf("%w %q", registry.ErrUnknownBackend, flagBackend)
	}

	logger, closer, err := logging.Open(flagLogFile, flagLogLevel)
	if err != nil {
		// Logging is optional, the game runs without it
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, closer = logging.Discard(), io.NopCloser(nil)
	}
	defer closer.Close()

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.Cells = cfg.Surface.Cells()
	runtime.TickRate = cfg.Court.FPS
	runtime.Seed = flagSeed

	session := registry.Session{
		Runtime: runtime,
		NewGame: gameFactory(cfg, flagSeed, logger),
		Logger:  logger,
	}

	if flagSound {
		player := sound.NewPlayer(logger)
		defer player.Close()
		if !player.Enabled() {
			fmt.Fprintln(os.Stderr, "Warning: audio unavailable, playing without sound")
		}
		session.Cue = player.Cue
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "backend", backend.ID(), "fps", cfg.Court.FPS, "seed", flagSeed,
		"difficulty", flagDifficulty, "screen", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH))
	if err := backend.Run(ctx, session); err != nil {
		logger.Error("backend stopped", "err", err)
		return err
	}
	logger.Info("stopped")
	return nil
}

// gameFactory returns the constructor backends call at start and on restart.
// A zero seed draws a fresh serve from the clock every time.
func gameFactory(cfg config.PongConfig, seed int64, logger *log.Logger) func() (*pong.Game, error) {
	return func() (*pong.Game, error) {
		s := seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		return pong.New(cfg, s, logger)
	}
}
