package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/physics"
	"github.com/lixenwraith/maze3d/raycast"
)

// wallColumns holds the per-column (or per-sub-column) ray results for one
// frame, precomputed so the row loops stay branch-simple.
type wallColumns struct {
	dist []float64 // fish-eye corrected distances
	side []int
	top  []int // wall span rows, in the caller's pixel space
	bot  []int
	cos  []float64 // ray direction tables for floor sampling
	sin  []float64
}

// castWallColumns marches one ray per column. cols is the horizontal ray
// count, pixH the vertical resolution the spans are projected into (equal to
// the viewport height for text, doubled/quadrupled for the sub-cell modes).
func castWallColumns(grid maze.Grid, p physics.Player, fov float64, cols, pixH int, camZ, mid float64) wallColumns {
	w := wallColumns{
		dist: make([]float64, cols),
		side: make([]int, cols),
		top:  make([]int, cols),
		bot:  make([]int, cols),
		cos:  make([]float64, cols),
		sin:  make([]float64, cols),
	}

	denom := float64(cols - 1)
	if denom < 1 {
		denom = 1
	}

	for x := 0; x < cols; x++ {
		rayAng := p.Ang - fov/2.0 + (float64(x)/denom)*fov
		w.cos[x] = math.Cos(rayAng)
		w.sin[x] = math.Sin(rayAng)

		hit := raycast.Cast(grid, p.X, p.Y, rayAng)
		dist := hit.Dist * max(0.0001, math.Cos(rayAng-p.Ang))
		dist = max(0.0001, dist)

		w.dist[x] = dist
		w.side[x] = hit.Side
		w.top[x], w.bot[x] = raycast.WallSpan(pixH, dist, camZ, mid)
	}
	return w
}

// dirTable precomputes per-column ray directions without marching, for
// renderers whose floor sampling runs at a different resolution than their
// wall rays.
func dirTable(ang, fov float64, cols int) (cos, sin []float64) {
	cos = make([]float64, cols)
	sin = make([]float64, cols)
	denom := float64(cols - 1)
	if denom < 1 {
		denom = 1
	}
	for x := 0; x < cols; x++ {
		rayAng := ang - fov/2.0 + (float64(x)/denom)*fov
		cos[x] = math.Cos(rayAng)
		sin[x] = math.Sin(rayAng)
	}
	return cos, sin
}

// floorRow is the per-row floor/ceiling sample shared by all renderers when
// floor casting is active.
type floorRow struct {
	active  bool
	hitTop  []bool // columns looking at the top surface of an elevated wall
	floorCh rune
	floorSt tcell.Style
	topCh   rune
	topSt   tcell.Style
}

// sampleFloorRow computes the floor appearance of the screen row whose pixel
// center is pixY. cos/sin are per-viewport-column direction tables; mask is a
// reusable scratch slice of the same length.
func sampleFloorRow(grid maze.Grid, p physics.Player, cos, sin []float64, mask []bool,
	pixY int, mid, plane, camZ float64, style *Style, shadows bool) floorRow {

	distFloor := raycast.FloorDist(pixY, mid, camZ, plane)
	if distFloor < 0 {
		return floorRow{}
	}

	row := floorRow{active: true}

	if shadows {
		d := min(distFloor, constants.MaxRayDist)
		row.floorCh = style.FloorCharDist(d)
		row.floorSt = style.FloorStyleDist(d)
		row.topCh = row.floorCh
		row.topSt = row.floorSt
	} else {
		row.floorCh = style.FlatFloorChar()
		row.floorSt = style.FlatFloorStyle()
		row.topCh = style.FlatTopChar()
		row.topSt = style.FlatWallStyle()
	}

	distTop := raycast.TopDist(pixY, mid, camZ, plane)
	if distTop > 0 {
		if shadows {
			d := min(distTop, constants.MaxRayDist)
			row.topCh = style.WallCharTop(d)
			row.topSt = style.WallStyle(d, raycast.SideX)
			if !style.ColorsOK {
				row.topSt = tcell.StyleDefault.Bold(true)
			}
		}
		raycast.FloorHitMask(grid, p.X, p.Y, cos, sin, distTop, mask)
		row.hitTop = mask
	}
	return row
}

// tooSmall gates scene rendering on a minimum viewport
func tooSmall(f *Frame, cfg Config) bool {
	if f.Height() < constants.MinViewHeight || f.Width() < constants.MinViewWidth {
		f.WriteString(0, 0, cfg.TooSmallText, tcell.StyleDefault)
		return true
	}
	return false
}

// viewSize returns the scene area left after the HUD reservation
func viewSize(f *Frame, cfg Config) (viewW, viewH int) {
	viewH = max(1, f.Height()-cfg.HUDLines)
	viewW = max(1, f.Width()-1)
	return viewW, viewH
}
