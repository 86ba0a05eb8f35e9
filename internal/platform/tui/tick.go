// Package tui hosts the game in a Bubble Tea program.
// Frames, mouse presses and keys all arrive as messages on the program's
// single update loop, which owns the game state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/scheduler"
)

// FrameMsg is sent by the frame scheduler to trigger one frame.
type FrameMsg time.Time

// frameSender returns a scheduler callback that posts frames into the program.
// Send blocks until the update loop takes the message, so a slow frame
// holds the scheduler back instead of queueing frames.
func frameSender(p *tea.Program) scheduler.FrameFunc {
	return func() error {
		p.Send(FrameMsg(time.Now()))
		return nil
	}
}
