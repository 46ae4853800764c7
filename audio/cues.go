package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// CueType identifies a game sound
type CueType uint8

const (
	// CueBlip is the menu navigation tick
	CueBlip CueType = iota

	// CueBump is the denied-move thud when walking into a wall
	CueBump

	// CueWin is the two-note chime on reaching the goal
	CueWin
)

// Cue durations
const (
	blipDuration = 40 * time.Millisecond
	bumpDuration = 90 * time.Millisecond
	winNote      = 160 * time.Millisecond
)

// makeCue builds the streamer for a cue at the given sample rate and volume
func makeCue(cue CueType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch cue {
	case CueBlip:
		osc := NewOscillator(1200.0, blipDuration, WaveSine, rate)
		shaped := NewEnvelope(osc, blipDuration, 2*time.Millisecond, 20*time.Millisecond, rate)
		return newVolume(shaped, 0.35*vol)

	case CueBump:
		osc := NewOscillator(90.0, bumpDuration, WaveSaw, rate)
		shaped := NewEnvelope(osc, bumpDuration, 1*time.Millisecond, 60*time.Millisecond, rate)
		return newVolume(shaped, 0.5*vol)

	case CueWin:
		// B5 then E6
		n1 := NewOscillator(987.77, winNote, WaveSquare, rate)
		n1Shaped := NewEnvelope(n1, winNote, 4*time.Millisecond, 80*time.Millisecond, rate)
		n2 := NewOscillator(1318.51, winNote, WaveSquare, rate)
		n2Shaped := NewEnvelope(n2, winNote, 4*time.Millisecond, 120*time.Millisecond, rate)
		return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.6*vol)

	default:
		return nil
	}
}
