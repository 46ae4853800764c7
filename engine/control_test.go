package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/maze3d/constants"
)

// TestHoldIntentExpires verifies a held direction lives exactly as long as
// its hold window
func TestHoldIntentExpires(t *testing.T) {
	now := time.Now()

	var h holdIntent
	h.Set(1, now)

	h.Expire(now.Add(constants.HoldTimeout / 2))
	if h.Dir != 1 {
		t.Errorf("Expected intent alive inside the hold window, got dir %d", h.Dir)
	}

	h.Expire(now.Add(constants.HoldTimeout + time.Millisecond))
	if h.Dir != 0 {
		t.Errorf("Expected intent cleared after the hold window, got dir %d", h.Dir)
	}
}

// TestHoldIntentRefresh verifies a repeat event extends the deadline
func TestHoldIntentRefresh(t *testing.T) {
	now := time.Now()

	var h holdIntent
	h.Set(-1, now)
	h.Set(-1, now.Add(constants.HoldTimeout))

	h.Expire(now.Add(constants.HoldTimeout + constants.HoldTimeout/2))
	if h.Dir != -1 {
		t.Errorf("Expected refreshed intent alive, got dir %d", h.Dir)
	}
}

// TestControlStateExpire verifies all intents share the expiry sweep
func TestControlStateExpire(t *testing.T) {
	now := time.Now()

	var c ControlState
	c.Move.Set(1, now)
	c.Rot.Set(-1, now)
	c.Pitch.Set(1, now)
	c.Vert.Set(-1, now)

	c.Expire(now.Add(time.Second))

	if c.Move.Dir != 0 || c.Rot.Dir != 0 || c.Pitch.Dir != 0 || c.Vert.Dir != 0 {
		t.Errorf("Expected all intents cleared, got %+v", c)
	}
}

// TestTrackMouse verifies motion deltas accumulate from the second sample
func TestTrackMouse(t *testing.T) {
	var c ControlState

	// First sample only establishes the reference position
	c.TrackMouse(40)
	if c.MouseDX != 0 {
		t.Errorf("Expected no delta from the first sample, got %d", c.MouseDX)
	}

	c.TrackMouse(45)
	c.TrackMouse(43)
	if c.MouseDX != 3 {
		t.Errorf("Expected accumulated delta 3, got %d", c.MouseDX)
	}

	if dx := c.TakeMouseDX(); dx != 3 {
		t.Errorf("Expected TakeMouseDX to return 3, got %d", dx)
	}
	if c.MouseDX != 0 {
		t.Errorf("Expected delta cleared after take, got %d", c.MouseDX)
	}
}
