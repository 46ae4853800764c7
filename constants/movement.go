package constants

import "math"

// Horizontal Movement
const (
	// MoveSpeed is forward/backward speed in grid units per second
	MoveSpeed = 3.2

	// RotSpeed is the turn rate in radians per second
	RotSpeed = 2.2
)

// Camera Pitch
const (
	// PitchSpeed is the pitch rate in radians per second
	PitchSpeed = 1.7

	// PitchMax clamps pitch to +/- 75 degrees
	PitchMax = 75.0 * math.Pi / 180.0
)

// Free-Flight Vertical Motion
const (
	// FreeAccel is vertical acceleration while an up/down key is held
	FreeAccel = 18.0

	// FreeMaxV caps vertical velocity in either direction
	FreeMaxV = 6.0

	// FreeDamp is the per-second velocity damping factor with no vertical input
	FreeDamp = 12.0

	// FreeMaxZ is the ceiling for feet height in free mode
	FreeMaxZ = 6.0
)
