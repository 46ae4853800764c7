package physics

import (
	"math"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/vmath"
)

// MoveDefault advances horizontal position in grounded mode. The X and Y
// axes resolve independently so a diagonal approach slides along the wall
// instead of stopping dead.
func MoveDefault(grid maze.Grid, p *Player, forward float64, dt float64) {
	move := forward * constants.MoveSpeed * dt
	dx := math.Cos(p.Ang) * move
	dy := math.Sin(p.Ang) * move

	nx := p.X + dx
	ny := p.Y + dy
	if !grid.IsWall(int(nx), int(p.Y)) {
		p.X = nx
	}
	if !grid.IsWall(int(p.X), int(ny)) {
		p.Y = ny
	}
}

// MoveFree advances horizontal position in free-flight mode: occupancy is
// tested in 3D so the player can fly over wall cells once high enough.
func MoveFree(grid maze.Grid, p *Player, forward float64, dt float64) {
	move := forward * constants.MoveSpeed * dt
	dx := math.Cos(p.Ang) * move
	dy := math.Sin(p.Ang) * move

	nx := p.X + dx
	ny := p.Y + dy
	if grid.CanEnter(nx, p.Y, p.Z) {
		p.X = nx
	}
	if grid.CanEnter(p.X, ny, p.Z) {
		p.Y = ny
	}
	ResolveFloorCollision(grid, p)
}

// UpdateFreeVertical integrates vertical velocity and position for free
// mode: acceleration while a direction is held, exponential damping toward
// zero otherwise.
func UpdateFreeVertical(grid maze.Grid, p *Player, vertDir int, dt float64) {
	switch {
	case vertDir > 0:
		p.VZ += constants.FreeAccel * dt
	case vertDir < 0:
		p.VZ -= constants.FreeAccel * dt
	default:
		k := math.Min(1.0, constants.FreeDamp*dt)
		p.VZ *= 1.0 - k
	}

	p.VZ = vmath.Clamp(p.VZ, -constants.FreeMaxV, constants.FreeMaxV)
	p.Z += p.VZ * dt

	ResolveFloorCollision(grid, p)
}

// ResolveFloorCollision clamps feet height between the occupied cell's floor
// (WallHeight when standing inside a wall cell) and the free-mode ceiling,
// zeroing vertical velocity on the violated side.
func ResolveFloorCollision(grid maze.Grid, p *Player) {
	floor := grid.FloorHeight(int(p.X), int(p.Y))
	if p.Z < floor {
		p.Z = floor
		if p.VZ < 0 {
			p.VZ = 0
		}
	}
	if p.Z > constants.FreeMaxZ {
		p.Z = constants.FreeMaxZ
		if p.VZ > 0 {
			p.VZ = 0
		}
	}
}
