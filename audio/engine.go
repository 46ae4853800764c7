// Package audio synthesizes the game's short feedback cues with beep
// streamers; no sample assets, everything is generated.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is the speaker mixing rate
const DefaultSampleRate = beep.SampleRate(44100)

// Engine owns the speaker and plays cues. A failed speaker init flips the
// engine to silent mode; Play becomes a no-op rather than an error source.
type Engine struct {
	rate   beep.SampleRate
	volume float64

	running atomic.Bool
	muted   atomic.Bool
}

// NewEngine creates an engine at the default sample rate
func NewEngine() *Engine {
	return &Engine{
		rate:   DefaultSampleRate,
		volume: 1.0,
	}
}

// Start initializes the speaker. Initialization failure is not an error:
// the engine runs silent and the game stays playable.
func (e *Engine) Start() error {
	if e.running.Load() {
		return nil
	}
	if err := speaker.Init(e.rate, e.rate.N(50*time.Millisecond)); err != nil {
		e.muted.Store(true)
		e.running.Store(true)
		return nil
	}
	e.running.Store(true)
	return nil
}

// Stop shuts the speaker down
func (e *Engine) Stop() {
	if !e.running.Load() {
		return
	}
	if !e.muted.Load() {
		speaker.Close()
	}
	e.running.Store(false)
}

// SetMuted toggles cue playback
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// Muted reports whether cues are suppressed
func (e *Engine) Muted() bool {
	return e.muted.Load()
}

// Play queues a cue on the speaker mixer. Safe to call from the frame loop;
// playback is asynchronous.
func (e *Engine) Play(cue CueType) {
	if !e.running.Load() || e.muted.Load() {
		return
	}
	s := makeCue(cue, e.rate, e.volume)
	if s == nil {
		return
	}
	speaker.Play(s)
}
