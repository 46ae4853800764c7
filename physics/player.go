// Package physics advances the player pose: grid collision for horizontal
// motion, simple vertical flight physics for free mode, and the autopilot
// steppers that drive demo play.
package physics

import (
	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/vmath"
)

// Player is the full camera/collision pose, in continuous grid units.
// Mutated exactly once per tick by one controller (manual, walk autopilot or
// flight autopilot); owned by the running level.
type Player struct {
	X, Y  float64 // horizontal position
	Z     float64 // feet height
	Ang   float64 // heading, wrapped to [-pi, pi]
	Pitch float64 // clamped to +/- PitchMax
	VZ    float64 // vertical velocity, free mode only
}

// NewPlayer places a player at the center of the given cell, level and facing
// east
func NewPlayer(cellX, cellY int) Player {
	return Player{
		X: float64(cellX) + 0.5,
		Y: float64(cellY) + 0.5,
	}
}

// Rotate integrates angular velocity: dir is the signed turn intent
func (p *Player) Rotate(dir int, dt float64) {
	p.Ang = vmath.NormalizeAngle(p.Ang + float64(dir)*constants.RotSpeed*dt)
}

// TiltPitch integrates pitch intent, clamped to the pitch limits
func (p *Player) TiltPitch(dir int, dt float64) {
	p.Pitch = vmath.Clamp(p.Pitch+float64(dir)*constants.PitchSpeed*dt,
		-constants.PitchMax, constants.PitchMax)
}
