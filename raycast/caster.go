// Package raycast marches rays across the maze grid (DDA) and projects wall
// spans and floor distances onto a terminal viewport.
package raycast

import (
	"math"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
)

// Sides identify which grid axis a ray crossed when it struck a wall. Used
// only for shading asymmetry, never for physics.
const (
	SideX = 0
	SideY = 1
)

// Hit is the result of marching a single ray
type Hit struct {
	// Dist is the perpendicular-plane distance to the struck wall, clamped
	// to [0, MaxRayDist]. Fish-eye correction (multiply by cos of the ray's
	// offset from the view angle) is the caller's job: the same raw hit is
	// reused for floor sub-rows where the correction differs.
	Dist float64

	// Side is SideX or SideY
	Side int
}

// Cast marches a ray from (px, py) at angle ang until it strikes a wall or
// leaves the grid. Leaving the grid yields a MaxRayDist sentinel.
func Cast(grid maze.Grid, px, py, ang float64) Hit {
	rayDirX := math.Cos(ang)
	rayDirY := math.Sin(ang)
	mapX := int(px)
	mapY := int(py)

	// Axis-aligned rays would divide by zero; a huge delta keeps that axis
	// from ever being stepped
	deltaX := 1e30
	if rayDirX != 0 {
		deltaX = math.Abs(1.0 / rayDirX)
	}
	deltaY := 1e30
	if rayDirY != 0 {
		deltaY = math.Abs(1.0 / rayDirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64

	if rayDirX < 0 {
		stepX = -1
		sideDistX = (px - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - px) * deltaX
	}
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (py - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - py) * deltaY
	}

	side := SideX
	for {
		// Advance along whichever axis has the nearer next gridline
		if sideDistX < sideDistY {
			sideDistX += deltaX
			mapX += stepX
			side = SideX
		} else {
			sideDistY += deltaY
			mapY += stepY
			side = SideY
		}

		if !grid.InBounds(mapX, mapY) {
			return Hit{Dist: constants.MaxRayDist, Side: side}
		}

		if grid.IsWall(mapX, mapY) {
			var dist float64
			if side == SideX {
				dist = sideDistX - deltaX
			} else {
				dist = sideDistY - deltaY
			}
			return Hit{Dist: clamp(dist, 0.0, constants.MaxRayDist), Side: side}
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
