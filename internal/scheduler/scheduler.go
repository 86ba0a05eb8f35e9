// Package scheduler drives frames at a fixed rate.
//
// The scheduler runs on its own goroutine and only signals; it never touches
// game state. Backends hand it a callback that posts a frame request into the
// event loop that owns the game, so rendering, updating and input handling
// stay on one logical sequence.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultFPS is used when a non-positive rate is requested.
const DefaultFPS = 60

// FrameFunc is invoked once per frame.
type FrameFunc func() error

// Scheduler invokes a FrameFunc every 1000/fps milliseconds until cancelled.
type Scheduler struct {
	fps      int
	interval time.Duration
	logger   *log.Logger

	frames   atomic.Uint64
	failures atomic.Uint64
	running  atomic.Bool
}

// New creates a scheduler for the given frame rate.
// A nil logger discards diagnostics.
func New(fps int, logger *log.Logger) *Scheduler {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	interval := time.Duration(1000/fps) * time.Millisecond
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Scheduler{
		fps:      fps,
		interval: interval,
		logger:   logger,
	}
}

// FPS returns the target frame rate.
func (s *Scheduler) FPS() int {
	return s.fps
}

// Interval returns the sleep between frames.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Frames returns how many frames have been invoked.
func (s *Scheduler) Frames() uint64 {
	return s.frames.Load()
}

// Failures returns how many frames returned an error or panicked.
func (s *Scheduler) Failures() uint64 {
	return s.failures.Load()
}

// Running reports whether Run is active.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Run sleeps one interval, invokes frame, and repeats until ctx is done.
// Frame failures are logged and the loop keeps going.
// Run returns nil on cancellation; frames in flight are not drained.
func (s *Scheduler) Run(ctx context.Context, frame FrameFunc) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler: already running")
	}
	defer s.running.Store(false)

	s.logger.Debug("frame loop started", "fps", s.fps, "interval", s.interval)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("frame loop stopped", "frames", s.frames.Load(), "failures", s.failures.Load())
			return nil
		case <-timer.C:
		}

		s.invoke(frame)
		timer.Reset(s.interval)
	}
}

// invoke runs one frame, converting a panic into a logged failure.
func (s *Scheduler) invoke(frame FrameFunc) {
	n := s.frames.Add(1)
	defer func() {
		if r := recover(); r != nil {
			s.failures.Add(1)
			s.logger.Error("frame panicked", "frame", n, "panic", r)
		}
	}()

	if err := frame(); err != nil {
		s.failures.Add(1)
		s.logger.Warn("frame failed", "frame", n, "error", err)
	}
}
