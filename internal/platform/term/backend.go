package term

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/scheduler"
)

const statusHint = "w/s move  space stop  click steer  p pause  r restart  q quit"

func init() {
	registry.Register("tcell", func() registry.Backend { return &Backend{} })
}

// Backend runs the game on a raw tcell screen.
type Backend struct {
	// NewScreen overrides screen creation. Nil uses tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)
}

// ID returns the backend identifier.
func (b *Backend) ID() string { return "tcell" }

// Title returns the human-readable backend name.
func (b *Backend) Title() string { return "Direct tcell screen (true color, mouse)" }

// Run initializes the terminal and drives the game until quit or ctx ends.
func (b *Backend) Run(ctx context.Context, s registry.Session) error {
	newScreen := b.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	l, err := newLoop(screen, s)
	if err != nil {
		return err
	}
	return l.run(ctx)
}

// loop owns the game. Frames and terminal events are handled one at a time.
type loop struct {
	screen  tcell.Screen
	canvas  *Canvas
	session registry.Session
	logger  *log.Logger
	game    *pong.Game

	paused  bool
	buttons tcell.ButtonMask
}

func newLoop(screen tcell.Screen, s registry.Session) (*loop, error) {
	game, err := s.NewGame()
	if err != nil {
		return nil, err
	}
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &loop{
		screen:  screen,
		canvas:  NewCanvas(screen, s.Runtime.Cells),
		session: s,
		logger:  logger,
		game:    game,
	}, nil
}

// run multiplexes scheduler frames and polled events until quit.
func (l *loop) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fps := l.session.Runtime.TickRate
	if fps <= 0 {
		fps = l.game.FPS()
	}
	sched := scheduler.New(fps, l.logger)

	// One pending frame is enough; extra signals are dropped.
	frames := make(chan struct{}, 1)
	go func() {
		//nolint:errcheck // Only fails if already running, which cannot happen here
		sched.Run(ctx, func() error {
			select {
			case frames <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	l.logger.Info("tcell loop started", "fps", sched.FPS(), "interval", sched.Interval())
	defer func() {
		l.logger.Info("tcell loop stopped", "frames", sched.Frames(), "failures", sched.Failures())
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !l.handle(ev) {
				return nil
			}
		case <-frames:
			l.frame()
		}
	}
}

// frame advances the game one step, or only repaints while paused.
func (l *loop) frame() {
	if l.paused {
		if l.game.State().Placed {
			l.game.Render(l.canvas)
		}
	} else {
		result := l.game.Frame(l.canvas)
		if l.session.Cue != nil && len(result.Events) > 0 {
			l.session.Cue(result.Events)
		}
	}
	l.drawStatus()
	l.screen.Show()
}

// drawStatus writes the status line under the play surface.
func (l *loop) drawStatus() {
	w, h := l.screen.Size()
	row := h - StatusRows
	if row < 0 {
		return
	}
	text := statusHint
	if l.paused {
		text = "paused  " + text
	}
	style := tcell.StyleDefault.Reverse(true)
	i := 0
	for _, r := range text {
		if i >= w {
			break
		}
		l.screen.SetContent(i, row, r, nil, style)
		i++
	}
	for ; i < w; i++ {
		l.screen.SetContent(i, row, ' ', nil, style)
	}
}

// handle processes one terminal event. Returns false to quit.
func (l *loop) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return l.handleKey(ev)

	case *tcell.EventMouse:
		l.handleMouse(ev)

	case *tcell.EventResize:
		l.screen.Sync()
	}
	return true
}

func (l *loop) handleKey(ev *tcell.EventKey) bool {
	action := core.ActionForKey(keyName(ev))
	switch action {
	case core.ActionQuit:
		return false
	case core.ActionPause:
		l.paused = !l.paused
		l.logger.Debug("pause toggled", "paused", l.paused)
	case core.ActionRestart:
		game, err := l.session.NewGame()
		if err != nil {
			l.logger.Error("restart failed", "err", err)
			break
		}
		l.game = game
		l.paused = false
		l.logger.Info("game restarted")
	default:
		l.game.Steer(action)
	}
	return true
}

// handleMouse touches the game once per left-button press.
// Motion reports with the button held do not repeat the touch.
func (l *loop) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && l.buttons&tcell.Button1 == 0
	l.buttons = buttons
	if !pressed {
		return
	}

	col, row := ev.Position()
	w, h := l.canvas.cells()
	if col >= w || row >= h {
		return
	}
	x, y := l.canvas.Metrics().Center(col, row)
	l.game.Touch(x, y)
}

// keyName converts a tcell key event into the names used by core.ActionForKey.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return "ctrl+" + string(ev.Rune())
		}
		return string(ev.Rune())
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	}
	return ""
}
