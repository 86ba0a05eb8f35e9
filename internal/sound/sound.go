// Package sound plays short tones for game events.
package sound

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Tones maps the events that make a sound to their tone.
var Tones = map[pong.Event]Tone{
	pong.EventPaddleHit: {Freq: 880, Duration: 50 * time.Millisecond},
	pong.EventWallScore: {Freq: 660, Duration: 80 * time.Millisecond},
	pong.EventMiss:      {Freq: 220, Duration: 150 * time.Millisecond},
}

// Streamer builds a finite streamer for the tone.
func (t Tone) Streamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("sound: tone %vHz: %w", t.Freq, err)
	}
	return beep.Take(sampleRate.N(t.Duration), sine), nil
}

// Player turns game events into tones on the default audio device.
type Player struct {
	logger  *log.Logger
	enabled bool
}

// NewPlayer opens the speaker. Audio is optional: if the device cannot be
// opened the player stays silent and logs a warning.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{logger: logger}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, game can run without sound
		logger.Warn("audio initialization failed", "err", err)
		return p
	}
	p.enabled = true
	return p
}

// Enabled reports whether the speaker was opened.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Cue plays the tone of every event that has one.
func (p *Player) Cue(events []pong.Event) {
	if !p.enabled {
		return
	}
	for _, e := range events {
		tone, ok := Tones[e]
		if !ok {
			continue
		}
		s, err := tone.Streamer()
		if err != nil {
			p.logger.Warn("tone failed", "event", e, "err", err)
			continue
		}
		speaker.Play(s)
	}
}

// Close releases the audio device.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}
