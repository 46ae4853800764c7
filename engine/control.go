package engine

import (
	"time"

	"github.com/lixenwraith/maze3d/constants"
)

// holdIntent is a directional input with an expiry. Terminals report key
// repeats rather than releases, so a held key is simulated by refreshing
// the deadline on every repeat event.
type holdIntent struct {
	Dir   int
	Until time.Time
}

// Set records a direction and refreshes the hold deadline
func (h *holdIntent) Set(dir int, now time.Time) {
	h.Dir = dir
	h.Until = now.Add(constants.HoldTimeout)
}

// Expire clears the intent once its deadline passes
func (h *holdIntent) Expire(now time.Time) {
	if h.Dir != 0 && now.After(h.Until) {
		h.Dir = 0
	}
}

// ControlState aggregates the live movement intents for one frame
type ControlState struct {
	Move  holdIntent // +1 forward, -1 backward
	Rot   holdIntent // +1 right, -1 left
	Pitch holdIntent // +1 down, -1 up; positive pitch lowers the view
	Vert  holdIntent // +1 climb, -1 descend (free flight)

	// MouseDX is the accumulated horizontal mouse motion since the last
	// simulation tick, in cells
	MouseDX   int
	lastMouse int
	mouseSeen bool
}

// Expire drops intents whose hold deadline has passed
func (c *ControlState) Expire(now time.Time) {
	c.Move.Expire(now)
	c.Rot.Expire(now)
	c.Pitch.Expire(now)
	c.Vert.Expire(now)
}

// Reset clears all intents and mouse tracking
func (c *ControlState) Reset() {
	*c = ControlState{}
}

// TrackMouse folds a mouse motion event into the pending horizontal delta
func (c *ControlState) TrackMouse(x int) {
	if c.mouseSeen {
		c.MouseDX += x - c.lastMouse
	}
	c.lastMouse = x
	c.mouseSeen = true
}

// TakeMouseDX returns and clears the accumulated mouse delta
func (c *ControlState) TakeMouseDX() int {
	dx := c.MouseDX
	c.MouseDX = 0
	return dx
}
