package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// withFlags sets the global flags for one test and restores them after.
func withFlags(t *testing.T, fps int, cfgPath, difficulty string) {
	t.Helper()
	oldFPS, oldCfg, oldDiff := flagFPS, flagConfig, flagDifficulty
	flagFPS, flagConfig, flagDifficulty = fps, cfgPath, difficulty
	t.Cleanup(func() {
		flagFPS, flagConfig, flagDifficulty = oldFPS, oldCfg, oldDiff
	})
}

func TestLoadSettingsAppliesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	if err := os.WriteFile(path, []byte("paddle:\n  speed: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	withFlags(t, 30, path, "hard")

	cfg, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() failed: %v", err)
	}
	if cfg.Court.FPS != 30 {
		t.Errorf("fps = %d, expected 30", cfg.Court.FPS)
	}
	if cfg.Paddle.Speed != 15 {
		t.Errorf("paddle speed = %v, expected 15", cfg.Paddle.Speed)
	}
	if cfg.Ball.MaxVelocity != 6 {
		t.Errorf("ball max velocity = %v, expected 6", cfg.Ball.MaxVelocity)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name       string
		fps        int
		path       string
		difficulty string
	}{
		{"unknown difficulty", 0, "", "insane"},
		{"negative fps", -1, "", ""},
		{"missing file", 0, filepath.Join(t.TempDir(), "nope.yaml"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, tt.fps, tt.path, tt.difficulty)
			if _, err := loadSettings(); err == nil {
				t.Error("loadSettings() should fail")
			}
		})
	}
}

func TestGameFactory(t *testing.T) {
	newGame := gameFactory(config.DefaultPongConfig(), 42, nil)

	a, err := newGame()
	if err != nil {
		t.Fatalf("newGame() failed: %v", err)
	}
	b, err := newGame()
	if err != nil {
		t.Fatalf("newGame() failed: %v", err)
	}
	if a == b {
		t.Fatal("each call should build a new game")
	}

	// A fixed seed serves the same way every time.
	a.Update()
	b.Update()
	if a.BallRect() != b.BallRect() {
		t.Errorf("seeded serves differ: %v vs %v", a.BallRect(), b.BallRect())
	}
}

func TestBackendsRegistered(t *testing.T) {
	for _, id := range []string{"tui", "tcell"} {
		if !registry.Exists(id) {
			t.Errorf("backend %q should be registered", id)
		}
	}
}
