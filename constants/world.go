package constants

// World Geometry
const (
	// WallHeight is the uniform height of every wall cell, in grid units
	WallHeight = 1.0

	// EyeHeight is the camera offset above the player's feet
	EyeHeight = 0.5

	// MaxRayDist caps ray marching; anything farther renders as max-distance
	MaxRayDist = 40.0
)
