package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// newTestModel builds a model on an 80x25 terminal with default settings:
// 8x16 cells give a 640x384 logical surface above the one-line help footer.
func newTestModel(t *testing.T, cfg config.PongConfig) (Model, *int) {
	t.Helper()
	builds := 0
	session := registry.Session{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Cells: core.CellMetrics{W: 8, H: 16}},
		NewGame: func() (*pong.Game, error) {
			builds++
			return pong.New(cfg, 7, nil)
		},
	}
	game, err := session.NewGame()
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	m := NewModel(session, game)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})
	return m, &builds
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResizeLeavesRoomForHelp(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPongConfig())

	if m.screen.Width() != 80 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", m.screen.Width(), m.screen.Height())
	}
	w, h := m.screen.Size()
	if w != 640 || h != 384 {
		t.Errorf("surface = %vx%v, expected 640x384", w, h)
	}
}

func TestFirstFramePlacesPaddleAndDrawsScore(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPongConfig())

	m = update(t, m, FrameMsg{})

	if !m.game.State().Placed {
		t.Fatal("paddle should be placed after the first frame")
	}
	paddle := m.game.PaddleRect()
	if paddle.Left() != 632 || paddle.Top() != 144 {
		t.Errorf("paddle at (%v, %v), expected (632, 144)", paddle.Left(), paddle.Top())
	}
	// Score text sits at 640/2 - 40 = 280, which is column 35.
	if row := m.screen.Row(0); !strings.HasPrefix(row[35:], "Score: 0") {
		t.Errorf("row 0 = %q, expected score at column 35", row)
	}
	if m.game.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", m.game.Frames())
	}
}

func TestMousePressSteersPaddle(t *testing.T) {
	tests := []struct {
		name  string
		row   int
		delta float64
	}{
		{"below paddle moves down", 20, 4},
		{"above paddle moves up", 2, -4},
		{"on paddle stays", 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, config.DefaultPongConfig())
			m = update(t, m, FrameMsg{})
			before := m.game.PaddleRect().Top()

			m = update(t, m, tea.MouseMsg{X: 79, Y: tt.row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			m = update(t, m, FrameMsg{})

			if got := m.game.PaddleRect().Top() - before; got != tt.delta {
				t.Errorf("paddle moved %v, expected %v", got, tt.delta)
			}
		})
	}
}

func TestMouseIgnoresFooterAndReleases(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{"footer row", tea.MouseMsg{X: 10, Y: 24, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
		{"release", tea.MouseMsg{X: 79, Y: 20, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}},
		{"right button", tea.MouseMsg{X: 79, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, config.DefaultPongConfig())
			m = update(t, m, FrameMsg{})
			before := m.game.PaddleRect().Top()

			m = update(t, m, tt.msg)
			m = update(t, m, FrameMsg{})

			if got := m.game.PaddleRect().Top(); got != before {
				t.Errorf("paddle top = %v, expected %v", got, before)
			}
		})
	}
}

func TestKeysSteerPaddle(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPongConfig())
	m = update(t, m, FrameMsg{})
	start := m.game.PaddleRect().Top()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, FrameMsg{})
	if got := m.game.PaddleRect().Top(); got != start+4 {
		t.Errorf("after down, paddle top = %v, expected %v", got, start+4)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, FrameMsg{})
	if got := m.game.PaddleRect().Top(); got != start+4 {
		t.Errorf("after stop, paddle top = %v, expected %v", got, start+4)
	}
}

func TestPauseHoldsGame(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPongConfig())
	m = update(t, m, FrameMsg{})

	m = update(t, m, runes("p"))
	m = update(t, m, FrameMsg{})
	m = update(t, m, FrameMsg{})
	if m.game.Frames() != 1 {
		t.Errorf("Frames() = %d while paused, expected 1", m.game.Frames())
	}
	if !strings.HasPrefix(m.View()[strings.LastIndex(m.View(), "\n")+1:], "paused") {
		t.Error("footer should say paused")
	}

	m = update(t, m, runes("p"))
	m = update(t, m, FrameMsg{})
	if m.game.Frames() != 2 {
		t.Errorf("Frames() = %d after resume, expected 2", m.game.Frames())
	}
}

func TestRestartBuildsNewGame(t *testing.T) {
	m, builds := newTestModel(t, config.DefaultPongConfig())
	m = update(t, m, FrameMsg{})
	old := m.game

	m = update(t, m, runes("r"))

	if m.game == old {
		t.Fatal("restart should replace the game")
	}
	if *builds != 2 {
		t.Errorf("NewGame called %d times, expected 2", *builds)
	}
	if m.game.State().Placed {
		t.Error("a restarted game starts unplaced")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPongConfig())

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command returned %T, expected tea.QuitMsg", cmd())
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("View() after quit = %q, expected empty", view)
	}
}

func TestFrameEventsReachCue(t *testing.T) {
	cfg := config.DefaultPongConfig()
	// Served past the left wall, so the first update scores.
	cfg.Ball.StartX = -20

	var got []pong.Event
	session := registry.Session{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Cells: core.CellMetrics{W: 8, H: 16}},
		NewGame: func() (*pong.Game, error) { return pong.New(cfg, 7, nil) },
		Cue:     func(events []pong.Event) { got = append(got, events...) },
	}
	game, err := session.NewGame()
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	m := NewModel(session, game)
	m = update(t, m, FrameMsg{})

	found := false
	for _, e := range got {
		if e == pong.EventWallScore {
			found = true
		}
	}
	if !found {
		t.Errorf("cue events = %v, expected a wall score", got)
	}
	if m.game.State().Score != 1 {
		t.Errorf("score = %d, expected 1", m.game.State().Score)
	}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runes("w"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runes("j"), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionStop},
		{runes("p"), core.ActionPause},
		{runes("r"), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{runes("?"), core.ActionHelp},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := keys.ActionFor(tt.msg); got != tt.want {
				t.Errorf("ActionFor(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2, core.UnitCells)
	s.Clear(core.MustParseColor("yellow"))
	s.DrawText(2, 0, "Score: 3", core.TextStyle{Color: core.MustParseColor("black")})
	s.DrawRect(core.NewRect(18, 1, 2, 1), core.MustParseColor("blueviolet"))

	out := RenderScreen(s)

	if !strings.Contains(out, "Score: 3") {
		t.Errorf("RenderScreen() lost the score text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should produce 2 lines, got %q", out)
	}
	if !strings.Contains(out, string(core.ShapeRune)) {
		t.Errorf("RenderScreen() lost the paddle cells: %q", out)
	}
}
