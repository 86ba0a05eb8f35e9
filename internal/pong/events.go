package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Event names a collision outcome that happened during an update.
type Event int

const (
	// EventWallScore: the ball reached the left wall; score went up.
	EventWallScore Event = iota + 1
	// EventMiss: the ball reached the right edge past the paddle; score went down.
	EventMiss
	// EventPaddleHit: the ball bounced off the paddle.
	EventPaddleHit
	// EventBounceVertical: the ball bounced off the top or bottom edge.
	EventBounceVertical
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventWallScore:
		return "wall-score"
	case EventMiss:
		return "miss"
	case EventPaddleHit:
		return "paddle-hit"
	case EventBounceVertical:
		return "bounce-vertical"
	default:
		return "unknown"
	}
}

// StepResult is returned after each frame.
type StepResult struct {
	State   core.GameState
	Events  []Event
	Skipped bool // True when the surface had no size yet
}

// Has reports whether the result contains the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
