package raycast

import (
	"math"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
)

// Projection-plane scale relative to viewport height. Pure tuning constant;
// larger values zoom the vertical projection in.
const planeScale = 1.25

// PlaneConst returns the pinhole projection-plane constant for a viewport of
// viewH rows (or sub-rows)
func PlaneConst(viewH int) float64 {
	return float64(viewH) * planeScale
}

// PitchMidline maps camera pitch to the horizon row: a linear approximation
// shifting the screen midline by pitch * (height / pi)
func PitchMidline(viewH int, pitch float64) float64 {
	h := float64(viewH)
	return h*0.5 - pitch*(h/math.Pi)
}

// WallSpan projects the unit-height wall segment [0, WallHeight] at distance
// dist into screen rows, for a camera eye at camZ and horizon at mid.
// Top and bottom swap if the projection inverts (camera below the floor
// edge), so top <= bottom always holds.
func WallSpan(viewH int, dist, camZ, mid float64) (top, bot int) {
	if dist < 0.0001 {
		dist = 0.0001
	}
	proj := PlaneConst(viewH) / dist
	top = int(mid - (constants.WallHeight-camZ)*proj)
	bot = int(mid - (0.0-camZ)*proj)
	if top > bot {
		top, bot = bot, top
	}
	return top, bot
}

// FloorDist returns the world distance at which screen row y intersects the
// floor plane, or -1 when the row is at or above the horizon. plane is the
// viewport's PlaneConst.
func FloorDist(y int, mid, camZ, plane float64) float64 {
	den := (float64(y) + 0.5) - mid
	if den <= 0.0001 {
		return -1
	}
	return camZ * plane / den
}

// TopDist returns the distance at which screen row y intersects the plane of
// the wall tops, or -1 when the camera is not above the walls or the row
// does not look down onto them. Rows between the two distances see the
// "underside" top surface of elevated wall cells.
func TopDist(y int, mid, camZ, plane float64) float64 {
	if camZ <= constants.WallHeight+0.02 {
		return -1
	}
	den := (float64(y) + 0.5) - mid
	if den <= 0.0001 {
		return -1
	}
	d := (camZ - constants.WallHeight) * plane / den
	if d <= 0 {
		return -1
	}
	return d
}

// UseFloorCast reports whether the camera is elevated or pitched enough that
// per-row world sampling is needed; below the thresholds the cheap
// row-gradient floor shade is visually equivalent.
func UseFloorCast(camZ, pitch float64) bool {
	if pitch < 0 {
		pitch = -pitch
	}
	return camZ > 0.75 || pitch > 0.25
}

// FloorHitMask marks, for each viewport column, whether the world point at
// distance dist along that column's ray direction lands inside a wall cell.
// cos and sin are the precomputed per-column ray direction tables; mask must
// have the same length and is overwritten.
//
// This intentionally re-samples world coordinates per column instead of
// reusing the column's wall distance: it answers a different question
// (top-surface occlusion at one row's depth, not nearest-wall distance).
func FloorHitMask(grid maze.Grid, px, py float64, cos, sin []float64, dist float64, mask []bool) {
	for i := range mask {
		wx := px + cos[i]*dist
		wy := py + sin[i]*dist
		mask[i] = grid.IsWall(int(wx), int(wy))
	}
}
