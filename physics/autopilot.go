package physics

import (
	"math"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/vmath"
)

// Walk autopilot tuning
const (
	// walkAngleTol is the heading error below which the walker translates
	// instead of turning in place
	walkAngleTol = 0.07

	// flightAngleTol is the (looser) heading error gate for the flyer
	flightAngleTol = 0.45

	// cruiseAltitude clears the unit wall height with margin
	cruiseAltitude = 1.35

	// descendRadius is the horizontal goal distance at which the flyer
	// stops cruising and descends
	descendRadius = 2.0
)

// WalkStep drives the player one tick along a BFS path in grounded mode and
// returns the updated path index. At each step it first rotates toward the
// axis direction of the next path cell; only within walkAngleTol does it
// translate, using the same per-axis collision as manual movement (the slide
// re-centers the off-axis coordinate so corners aren't grazed).
func WalkStep(grid maze.Grid, p *Player, path []maze.Point, idx int, dt float64) int {
	if len(path) == 0 || idx >= len(path)-1 {
		return idx
	}

	curr := maze.Point{X: int(p.X), Y: int(p.Y)}

	// Consume path cells already reached
	for idx+1 < len(path) && curr == path[idx+1] {
		idx++
		if idx >= len(path)-1 {
			return idx
		}
	}

	next := path[idx+1]
	dx := next.X - curr.X
	dy := next.Y - curr.Y

	var desired float64
	switch {
	case dx > 0:
		desired = 0.0
	case dx < 0:
		desired = math.Pi
	case dy > 0:
		desired = math.Pi / 2.0
	default:
		desired = -math.Pi / 2.0
	}

	diff := vmath.NormalizeAngle(desired - p.Ang)
	maxRot := constants.RotSpeed * dt

	if math.Abs(diff) > walkAngleTol {
		p.Ang = vmath.NormalizeAngle(p.Ang + vmath.Clamp(diff, -maxRot, maxRot))
		return idx
	}

	MoveDefault(grid, p, 1.0, dt)
	return idx
}

// FreeStep drives the player one tick in free-flight mode. Unlike the
// walker it ignores the path's cell sequence: it steers continuously toward
// the goal point while holding cruise altitude over the walls, descending
// only once horizontally close to the goal.
func FreeStep(grid maze.Grid, p *Player, goal maze.Point, dt float64) {
	tx := float64(goal.X) + 0.5
	ty := float64(goal.Y) + 0.5

	dx := tx - p.X
	dy := ty - p.Y
	dist := math.Hypot(dx, dy)

	targetZ := cruiseAltitude
	if dist <= descendRadius {
		targetZ = grid.FloorHeight(goal.X, goal.Y)
	}

	vdir := 0
	if p.Z < targetZ-0.05 {
		vdir = 1
	} else if p.Z > targetZ+0.05 {
		vdir = -1
	}
	UpdateFreeVertical(grid, p, vdir, dt)

	desired := math.Atan2(ty-p.Y, tx-p.X)
	diff := vmath.NormalizeAngle(desired - p.Ang)
	maxRot := constants.RotSpeed * dt
	if math.Abs(diff) > 0.01 {
		p.Ang = vmath.NormalizeAngle(p.Ang + vmath.Clamp(diff, -maxRot, maxRot))
	}

	if math.Abs(diff) < flightAngleTol {
		MoveFree(grid, p, 1.0, dt)
	}
}
