package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/scheduler"
)

func init() {
	registry.Register("tui", func() registry.Backend { return &Backend{} })
}

// Backend runs the game inside a Bubble Tea program.
type Backend struct{}

// ID returns the backend identifier.
func (b *Backend) ID() string { return "tui" }

// Title returns the human-readable backend name.
func (b *Backend) Title() string { return "Bubble Tea terminal (lipgloss colors)" }

// Run starts the program and the frame scheduler, blocking until the user quits.
func (b *Backend) Run(ctx context.Context, s registry.Session) error {
	game, err := s.NewGame()
	if err != nil {
		return err
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}

	model := NewModel(s, game)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses steer the paddle
		tea.WithContext(ctx),
	)

	fps := s.Runtime.TickRate
	if fps <= 0 {
		fps = game.FPS()
	}
	sched := scheduler.New(fps, s.Logger)

	schedCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		//nolint:errcheck // Only fails if already running, which cannot happen here
		sched.Run(schedCtx, frameSender(p))
	}()

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Model is the Bubble Tea model hosting one pong game.
type Model struct {
	session registry.Session
	game    *pong.Game
	screen  *core.Screen
	keys    KeyMap
	help    help.Model

	termW    int
	termH    int
	paused   bool
	quitting bool
}

// NewModel creates a model for the given game.
func NewModel(s registry.Session, game *pong.Game) Model {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	m := Model{
		session: s,
		game:    game,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		termW:   s.Runtime.ScreenW,
		termH:   s.Runtime.ScreenH,
	}
	m.screen = core.NewScreen(0, 0, s.Runtime.Cells)
	m.fitScreen()
	return m
}

// Init does nothing; frames come from the scheduler.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.ActionFor(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.session.Logger.Debug("pause toggled", "paused", m.paused)
	case core.ActionRestart:
		m.restart()
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
	default:
		m.game.Steer(action)
	}

	return m, nil
}

// handleMouse turns a left-button press into a touch on the game surface.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	// Presses on the help footer are not on the surface.
	if msg.Y >= m.screen.Height() || msg.X >= m.screen.Width() {
		return m, nil
	}

	x, y := m.screen.Metrics().Center(msg.X, msg.Y)
	m.game.Touch(x, y)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW = msg.Width
	m.termH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// handleFrame runs one game frame, or only repaints while paused.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.paused {
		if m.game.State().Placed {
			m.game.Render(m.screen)
		}
		return m, nil
	}

	result := m.game.Frame(m.screen)
	if m.session.Cue != nil && len(result.Events) > 0 {
		m.session.Cue(result.Events)
	}
	return m, nil
}

// fitScreen sizes the surface to the terminal minus the help footer.
func (m *Model) fitScreen() {
	cols := max(m.termW, 0)
	rows := core.Clamp(m.termH-lipgloss.Height(m.help.View(m.keys)), 0, max(m.termH, 0))
	m.screen.Resize(cols, rows)
}

// restart replaces the game with a fresh one. The old game keeps running
// if a new one cannot be built.
func (m *Model) restart() {
	game, err := m.session.NewGame()
	if err != nil {
		m.session.Logger.Error("restart failed", "err", err)
		return
	}
	m.game = game
	m.paused = false
	m.session.Logger.Info("game restarted")
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.game.State().Placed {
		m.game.Render(m.screen)
	}

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.session.Logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.session.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := RenderScreen(m.screen)
	footer := m.help.View(m.keys)
	if m.paused {
		footer = "paused  " + footer
	}
	if view == "" {
		return footer
	}
	return view + "\n" + footer
}
