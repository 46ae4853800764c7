package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/physics"
	"github.com/lixenwraith/maze3d/raycast"
)

// halfBlockRenderer doubles vertical resolution: every terminal row carries
// two sub-rows of the wall span, drawn with the half-block glyphs.
type halfBlockRenderer struct{}

func (r *halfBlockRenderer) Draw(f *Frame, grid maze.Grid, p physics.Player, cfg Config, style *Style) {
	if tooSmall(f, cfg) {
		return
	}

	viewW, viewH := viewSize(f, cfg)
	camZ := p.Z + constants.EyeHeight

	pixH := viewH * 2
	mid := raycast.PitchMidline(pixH, p.Pitch)
	plane := raycast.PlaneConst(pixH)
	floorcast := raycast.UseFloorCast(camZ, p.Pitch)

	cols := castWallColumns(grid, p, cfg.FOV, viewW, pixH, camZ, mid)

	// Full-cell wall glyph per column; the span shape picks between it and
	// the half blocks
	fullCh := make([]rune, viewW)
	wallSt := make([]tcell.Style, viewW)
	for x := 0; x < viewW; x++ {
		if cfg.Shadows {
			wallSt[x] = style.WallStyle(cols.dist[x], cols.side[x])
			if style.ColorsOK {
				fullCh[x] = '█'
			} else {
				fullCh[x] = style.WallCharText(cols.dist[x])
			}
		} else {
			wallSt[x] = style.FlatWallStyle()
			fullCh[x] = style.FlatWallChar()
		}
	}

	mask := make([]bool, viewW)
	for y := 0; y < viewH; y++ {
		yTop := 2 * y
		yBot := yTop + 1

		var row floorRow
		if floorcast {
			// Sample at the lower sub-row; half a cell of depth error is
			// invisible at this resolution
			row = sampleFloorRow(grid, p, cols.cos, cols.sin, mask, yBot, mid, plane, camZ, style, cfg.Shadows)
		}

		for x := 0; x < viewW; x++ {
			topOn := cols.top[x] <= yTop && yTop < cols.bot[x]
			botOn := cols.top[x] <= yBot && yBot < cols.bot[x]

			switch {
			case topOn && botOn:
				f.SetCell(x, y, fullCh[x], wallSt[x])
			case topOn:
				f.SetCell(x, y, halfGlyph('▀', fullCh[x], style), wallSt[x])
			case botOn:
				f.SetCell(x, y, halfGlyph('▄', fullCh[x], style), wallSt[x])
			case row.active:
				if row.hitTop != nil && row.hitTop[x] {
					f.SetCell(x, y, row.topCh, row.topSt)
				} else {
					f.SetCell(x, y, row.floorCh, row.floorSt)
				}
			case y < viewH/2:
				f.SetCell(x, y, ' ', tcell.StyleDefault)
			case cfg.Shadows:
				f.SetCell(x, y, style.FloorCharGrad(y, viewH), style.FloorStyleGrad(y, viewH))
			default:
				f.SetCell(x, y, style.FlatFloorChar(), style.FlatFloorStyle())
			}
		}
	}
}

// halfGlyph falls back to the full-cell glyph when the terminal cannot show
// half blocks
func halfGlyph(half, full rune, style *Style) rune {
	if style.UnicodeOK {
		return half
	}
	return full
}
