// Package pong implements the single-player bouncing ball toy.
// The ball bounces around the surface; the player steers a paddle on the
// right edge. Reaching the left wall scores a point, letting the ball past
// the paddle loses one.
package pong

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// ScorePrefix is drawn before the score value.
const ScorePrefix = "Score: "

// Game holds the whole view state. It is not safe for concurrent use:
// frames, touches and key steering must come from one event loop.
type Game struct {
	ball   *core.Sprite
	paddle *core.Sprite
	score  int
	fps    int

	// placed flips once the surface size is known and the paddle has been
	// put on the right edge. It never flips back.
	placed bool
	width  float64
	height float64

	cfg     config.PongConfig
	palette config.Palette
	text    core.TextStyle
	logger  *log.Logger
	rng     *rand.Rand
	frames  uint64
}

// New creates a game with a freshly served ball.
// The paddle is positioned on the first frame, once the surface size is known.
func New(cfg config.PongConfig, seed int64, logger *log.Logger) (*Game, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("pong: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fps := cfg.Court.FPS
	if fps <= 0 {
		fps = 60
	}

	g := &Game{
		fps:     fps,
		cfg:     cfg,
		palette: palette,
		logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
	}

	g.ball = core.NewSprite(cfg.Ball.Size, cfg.Ball.Size, palette.Ball)
	g.serve()

	g.paddle = core.NewSprite(cfg.Paddle.Width, cfg.Paddle.Height, palette.Paddle)
	g.paddle.SetVelocity(0, 0)

	return g, nil
}

// serve puts the ball at its start position with a random velocity.
func (g *Game) serve() {
	maxV := g.cfg.Ball.MaxVelocity
	g.ball.SetLocation(g.cfg.Ball.StartX, g.cfg.Ball.StartY)
	g.ball.SetVelocity(
		(g.rng.Float64()-0.5)*2*maxV, // dx
		(g.rng.Float64()-0.5)*2*maxV, // dy
	)
}

// FPS returns the frame rate this game wants to be driven at.
func (g *Game) FPS() int {
	return g.fps
}

// Layout records the laid-out surface size. The first call with a usable
// size places the paddle at the middle of the right edge and sets up text
// styling. Later calls only update the size.
func (g *Game) Layout(w, h float64) {
	g.width = w
	g.height = h
	if g.placed || w <= 0 || h <= 0 {
		return
	}

	pw, ph := g.paddle.Size()
	g.paddle.SetLocation(w-pw, h/2-ph/2)
	g.text = core.TextStyle{Color: g.palette.Text, Size: g.cfg.Score.Size}
	g.placed = true

	x, y := g.paddle.Location()
	g.logger.Debug("paddle placed", "x", x, "y", y, "width", w, "height", h)
}

// Frame runs one full cycle: lay out, paint the current state, then advance it.
// A surface with no size yet skips the frame.
func (g *Game) Frame(dst core.Canvas) StepResult {
	w, h := dst.Size()
	if w <= 0 || h <= 0 {
		return StepResult{State: g.State(), Skipped: true}
	}

	g.Layout(w, h)
	g.Render(dst)
	return g.Update()
}

// Render paints the current state without advancing it.
func (g *Game) Render(dst core.Canvas) {
	w, _ := dst.Size()

	dst.Clear(g.palette.Background)
	dst.DrawText(w/2-g.cfg.Score.OffsetX, g.cfg.Score.Y, g.ScoreText(), g.text)
	dst.DrawEllipse(g.ball.Rect(), g.ball.Fill)
	dst.DrawRect(g.paddle.Rect(), g.paddle.Fill)
}

// ScoreText returns the score label as drawn on screen.
func (g *Game) ScoreText() string {
	return fmt.Sprintf("%s%d", ScorePrefix, g.score)
}

// Update advances both sprites by one frame and resolves collisions
// against the last laid-out surface size.
func (g *Game) Update() StepResult {
	g.frames++
	var events []Event

	g.ball.Move()
	g.paddle.Move()

	g.clampPaddle()

	ball := g.ball.Rect()
	paddle := g.paddle.Rect()

	// Order matters: a ball overlapping the paddle at the right edge is a hit,
	// never a miss.
	if ball.Left() < 0 {
		g.ball.DX = -g.ball.DX
		g.score++
		events = append(events, EventWallScore)
	} else if !ball.Intersects(paddle) && ball.Right() >= g.width {
		g.ball.DX = -g.ball.DX
		g.score--
		events = append(events, EventMiss)
	} else if ball.Intersects(paddle) {
		g.ball.DX = -g.ball.DX
		events = append(events, EventPaddleHit)
		g.logger.Debug("collision between ball and paddle", "frame", g.frames, "score", g.score)
	}

	if ball.Top() < 0 || ball.Bottom() >= g.height {
		g.ball.DY = -g.ball.DY
		events = append(events, EventBounceVertical)
	}

	return StepResult{State: g.State(), Events: events}
}

// clampPaddle snaps the paddle back onto the right edge when it leaves the
// surface vertically. Velocity is kept, so a paddle still moving outward
// clamps again next frame.
func (g *Game) clampPaddle() {
	pw, ph := g.paddle.Size()
	r := g.paddle.Rect()

	if r.Bottom() > g.height {
		g.paddle.SetLocation(g.width-pw, g.height-ph)
	} else if r.Top() < 0 {
		g.paddle.SetLocation(g.width-pw, 0)
	}
}

// Touch steers the paddle from a pointer press at surface coordinates (x, y).
// Pressing the paddle stops it; pressing below its top edge moves it down,
// above moves it up.
func (g *Game) Touch(x, y float64) {
	r := g.paddle.Rect()

	if r.Contains(x, y) {
		g.paddle.SetVelocity(0, 0)
		return
	}

	if r.Top() < y {
		g.paddle.DY = g.cfg.Paddle.Speed
	} else if r.Top() > y {
		g.paddle.DY = -g.cfg.Paddle.Speed
	}
}

// Steer applies a keyboard action to the paddle.
// Returns false if the action does not steer.
func (g *Game) Steer(a core.Action) bool {
	switch a {
	case core.ActionUp:
		g.paddle.DY = -g.cfg.Paddle.Speed
	case core.ActionDown:
		g.paddle.DY = g.cfg.Paddle.Speed
	case core.ActionStop:
		g.paddle.SetVelocity(0, 0)
	default:
		return false
	}
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Placed: g.placed,
	}
}

// BallRect returns the ball's bounding box.
func (g *Game) BallRect() core.Rect {
	return g.ball.Rect()
}

// PaddleRect returns the paddle's bounding box.
func (g *Game) PaddleRect() core.Rect {
	return g.paddle.Rect()
}

// Frames returns how many updates have run.
func (g *Game) Frames() uint64 {
	return g.frames
}
