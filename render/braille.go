package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/physics"
	"github.com/lixenwraith/maze3d/raycast"
)

// brailleBase is the first code point of the braille patterns block
const brailleBase = 0x2800

// brailleBits maps [subCol][subRow] to the dot bit of the braille glyph
var brailleBits = [2][4]int{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleRenderer packs a 2x4 sub-pixel grid into each terminal cell. Rays
// march per sub-column (double horizontal resolution) and the wall span is
// tested per sub-row (quadruple vertical resolution).
type brailleRenderer struct{}

func (r *brailleRenderer) Draw(f *Frame, grid maze.Grid, p physics.Player, cfg Config, style *Style) {
	if !style.UnicodeOK {
		// Braille needs UTF-8; the factory normally resolves this away, but
		// degrade gracefully if called directly
		(&textRenderer{}).Draw(f, grid, p, cfg, style)
		return
	}
	if tooSmall(f, cfg) {
		return
	}

	viewW, viewH := viewSize(f, cfg)
	camZ := p.Z + constants.EyeHeight

	subW := viewW * 2
	pixH := viewH * 4
	mid := raycast.PitchMidline(pixH, p.Pitch)
	plane := raycast.PlaneConst(pixH)
	floorcast := raycast.UseFloorCast(camZ, p.Pitch)

	// One ray per sub-column for geometry, plus a per-cell direction table
	// for floor sampling
	cols := castWallColumns(grid, p, cfg.FOV, subW, pixH, camZ, mid)
	cosCell, sinCell := dirTable(p.Ang, cfg.FOV, viewW)

	mask := make([]bool, viewW)
	for y := 0; y < viewH; y++ {
		var row floorRow
		if floorcast {
			// Sample at the cell's center sub-row
			row = sampleFloorRow(grid, p, cosCell, sinCell, mask, y*4+2, mid, plane, camZ, style, cfg.Shadows)
		}

		for x := 0; x < viewW; x++ {
			bits := 0
			for subCol := 0; subCol < 2; subCol++ {
				sx := 2*x + subCol
				for subRow := 0; subRow < 4; subRow++ {
					py := 4*y + subRow
					if cols.top[sx] <= py && py < cols.bot[sx] {
						bits |= brailleBits[subCol][subRow]
					}
				}
			}

			if bits != 0 {
				// Shade from the nearer of the two sub-columns
				sx := 2 * x
				d, side := cols.dist[sx], cols.side[sx]
				if cols.dist[sx+1] < d {
					d, side = cols.dist[sx+1], cols.side[sx+1]
				}
				st := style.FlatWallStyle()
				if cfg.Shadows {
					st = style.WallStyle(d, side)
				}
				f.SetCell(x, y, rune(brailleBase+bits), st)
				continue
			}

			switch {
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

// BrailleBit exposes the dot bit for a sub-pixel position; sub-column 0 or
// 1, sub-row 0 (top) through 3.
func BrailleBit(subCol, subRow int) int {
	if subCol < 0 || subCol > 1 || subRow < 0 || subRow > 3 {
		return 0
	}
	return brailleBits[subCol][subRow]
}
