package constants

import "time"

// Input Timing
const (
	// HoldTimeout is how long a movement key press keeps its intent alive;
	// terminals report key repeats, not releases, so held keys are simulated
	// by refreshing this deadline on every repeat
	HoldTimeout = 140 * time.Millisecond

	// FrameSleep is the idle delay between frames of the main loop
	FrameSleep = 10 * time.Millisecond

	// HUDAutoHide is how long the HUD stays visible in auto mode
	HUDAutoHide = 5 * time.Second
)

// MouseSensDefault is the default mouse-look sensitivity in radians per cell
const MouseSensDefault = 0.012
