package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/physics"
	"github.com/lixenwraith/maze3d/raycast"
)

// textRenderer maps one ray to one terminal column: lowest resolution,
// works everywhere.
type textRenderer struct{}

func (r *textRenderer) Draw(f *Frame, grid maze.Grid, p physics.Player, cfg Config, style *Style) {
	if tooSmall(f, cfg) {
		return
	}

	viewW, viewH := viewSize(f, cfg)
	camZ := p.Z + constants.EyeHeight
	mid := raycast.PitchMidline(viewH, p.Pitch)
	plane := raycast.PlaneConst(viewH)
	floorcast := raycast.UseFloorCast(camZ, p.Pitch)

	cols := castWallColumns(grid, p, cfg.FOV, viewW, viewH, camZ, mid)

	// Per-column wall appearance
	wallCh := make([]rune, viewW)
	wallSt := make([]tcell.Style, viewW)
	for x := 0; x < viewW; x++ {
		if cfg.Shadows {
			wallCh[x] = style.WallCharText(cols.dist[x])
			wallSt[x] = style.WallStyle(cols.dist[x], cols.side[x])
		} else {
			wallCh[x] = style.FlatWallChar()
			wallSt[x] = style.FlatWallStyle()
		}
	}

	mask := make([]bool, viewW)
	for y := 0; y < viewH; y++ {
		var row floorRow
		if floorcast {
			row = sampleFloorRow(grid, p, cols.cos, cols.sin, mask, y, mid, plane, camZ, style, cfg.Shadows)
		}

		for x := 0; x < viewW; x++ {
			switch {
			case y < cols.top[x]:
				f.SetCell(x, y, ' ', tcell.StyleDefault)
			case y >= cols.bot[x]:
				ch, st := floorRune(row, x, y, viewH, style, cfg.Shadows)
				f.SetCell(x, y, ch, st)
			default:
				f.SetCell(x, y, wallCh[x], wallSt[x])
			}
		}
	}
}

// floorRune resolves the glyph and style of a floor/ceiling cell: the
// sampled row when floor casting is active, otherwise the row gradient (or
// the flat pair with shadows off).
func floorRune(row floorRow, x, y, viewH int, style *Style, shadows bool) (rune, tcell.Style) {
	if row.active {
		if row.hitTop != nil && row.hitTop[x] {
			return row.topCh, row.topSt
		}
		return row.floorCh, row.floorSt
	}
	if shadows {
		return style.FloorCharGrad(y, viewH), style.FloorStyleGrad(y, viewH)
	}
	return style.FlatFloorChar(), style.FlatFloorStyle()
}
