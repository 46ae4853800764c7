package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/physics"
	"github.com/lixenwraith/maze3d/vmath"
)

// PlayerDirGlyph returns the arrow glyph for the player's heading quadrant
func PlayerDirGlyph(style *Style, ang float64) rune {
	a := vmath.NormalizeAngle(ang)
	// Screen Y grows downward, so pi/2 points south
	switch {
	case a >= -math.Pi/4 && a < math.Pi/4:
		return pick(style, '►', '>')
	case a >= math.Pi/4 && a < 3*math.Pi/4:
		return pick(style, '▼', 'v')
	case a >= -3*math.Pi/4 && a < -math.Pi/4:
		return pick(style, '▲', '^')
	default:
		return pick(style, '◄', '<')
	}
}

func pick(style *Style, unicode, ascii rune) rune {
	if style.UnicodeOK {
		return unicode
	}
	return ascii
}

// DrawMap renders the top-down minimap with a one-line title, scaling the
// grid to the frame. Unicode terminals pack two map rows per terminal row
// with half blocks.
func DrawMap(f *Frame, grid maze.Grid, p physics.Player, goal maze.Point, style *Style, title string) {
	hdr := style.HUD.Reverse(true)
	f.WriteString(0, 0, title, hdr)

	outH := max(1, f.Height()-1)
	outW := max(1, f.Width()-1)
	mapW := grid.Width()
	mapH := grid.Height()
	if mapW == 0 || mapH == 0 {
		return
	}

	if style.UnicodeOK {
		drawMapHalf(f, grid, p, goal, style, outW, outH)
	} else {
		drawMapPlain(f, grid, p, goal, style, outW, outH)
	}
}

func drawMapHalf(f *Frame, grid maze.Grid, p physics.Player, goal maze.Point, style *Style, outW, outH int) {
	mapW := grid.Width()
	mapH := grid.Height()
	halfRows := outH * 2

	pX := int(p.X) * outW / mapW
	pY := (int(p.Y) * halfRows / mapH) / 2
	gX := goal.X * outW / mapW
	gY := (goal.Y * halfRows / mapH) / 2

	playerCh := PlayerDirGlyph(style, p.Ang)

	for oy := 0; oy < outH; oy++ {
		yTop := (2 * oy) * mapH / halfRows
		yBot := (2*oy + 1) * mapH / halfRows
		if yTop >= mapH {
			break
		}
		if yBot >= mapH {
			yBot = mapH - 1
		}

		for ox := 0; ox < outW; ox++ {
			mx := ox * mapW / outW
			if mx >= mapW {
				break
			}

			topWall := grid.IsWall(mx, yTop)
			botWall := grid.IsWall(mx, yBot)

			var ch rune
			var st tcell.Style
			switch {
			case topWall && botWall:
				ch, st = '█', style.MapWall
			case topWall:
				ch, st = '▀', style.MapWall
			case botWall:
				ch, st = '▄', style.MapWall
			case style.ColorsOK:
				ch, st = ' ', style.MapFloor
			default:
				ch, st = '·', tcell.StyleDefault
			}

			if oy == gY && ox == gX {
				ch, st = '✚', style.MapGoal
			}
			if oy == pY && ox == pX {
				ch, st = playerCh, style.MapPlayer
			}

			f.SetCell(ox, oy+1, ch, st)
		}
	}
}

func drawMapPlain(f *Frame, grid maze.Grid, p physics.Player, goal maze.Point, style *Style, outW, outH int) {
	mapW := grid.Width()
	mapH := grid.Height()

	pX := int(p.X) * outW / mapW
	pY := int(p.Y) * outH / mapH
	gX := goal.X * outW / mapW
	gY := goal.Y * outH / mapH
	playerCh := PlayerDirGlyph(style, p.Ang)

	for oy := 0; oy < outH; oy++ {
		my := oy * mapH / outH
		if my >= mapH {
			break
		}
		for ox := 0; ox < outW; ox++ {
			mx := ox * mapW / outW
			if mx >= mapW {
				f.SetCell(ox, oy+1, ' ', tcell.StyleDefault)
				continue
			}

			ch := '.'
			if grid.IsWall(mx, my) {
				ch = '#'
			}
			if ox == gX && oy == gY {
				ch = 'X'
			}
			if ox == pX && oy == pY {
				ch = playerCh
			}
			f.SetCell(ox, oy+1, ch, tcell.StyleDefault)
		}
	}
}
