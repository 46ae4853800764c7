package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/vmath"
)

// ColorMode is the detected color tier of the terminal
type ColorMode uint8

const (
	ColorNone ColorMode = iota
	ColorBasic
	Color256
)

// Style bundles terminal capabilities with the distance shading ramps. One
// value is derived per level from the detected capabilities and the user's
// overrides, then treated as read-only by the renderers.
type Style struct {
	UnicodeOK bool
	ColorsOK  bool
	ColorMode ColorMode

	wallRamp  []tcell.Style
	floorRamp []tcell.Style

	HUD       tcell.Style
	MapWall   tcell.Style
	MapFloor  tcell.Style
	MapPlayer tcell.Style
	MapGoal   tcell.Style
}

// NewStyle builds the ramp set for a terminal reporting the given color
// count and charset support.
func NewStyle(colors int, unicodeOK bool) *Style {
	s := &Style{
		UnicodeOK: unicodeOK,
		HUD:       tcell.StyleDefault.Bold(true),
		MapWall:   tcell.StyleDefault,
		MapFloor:  tcell.StyleDefault,
		MapPlayer: tcell.StyleDefault.Bold(true),
		MapGoal:   tcell.StyleDefault.Bold(true),
	}

	switch {
	case colors >= 256:
		s.ColorsOK = true
		s.ColorMode = Color256

		// Grayscale ramps: bright near, dim far
		for c := 255; c > 231; c-- {
			s.wallRamp = append(s.wallRamp, tcell.StyleDefault.Foreground(tcell.PaletteColor(c)))
		}
		for c := 244; c > 235; c-- {
			s.floorRamp = append(s.floorRamp, tcell.StyleDefault.Foreground(tcell.PaletteColor(c)))
		}

		s.HUD = tcell.StyleDefault.Foreground(tcell.PaletteColor(15)).Bold(true)
		s.MapWall = tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
		s.MapFloor = tcell.StyleDefault.Foreground(tcell.PaletteColor(238))
		s.MapPlayer = tcell.StyleDefault.Foreground(tcell.PaletteColor(226)).Bold(true)
		s.MapGoal = tcell.StyleDefault.Foreground(tcell.PaletteColor(46)).Bold(true)

	case colors >= 8:
		s.ColorsOK = true
		s.ColorMode = ColorBasic

		for _, c := range []tcell.Color{tcell.ColorWhite, tcell.ColorTeal, tcell.ColorNavy} {
			s.wallRamp = append(s.wallRamp, tcell.StyleDefault.Foreground(c))
		}
		for _, c := range []tcell.Color{tcell.ColorOlive, tcell.ColorPurple, tcell.ColorMaroon} {
			s.floorRamp = append(s.floorRamp, tcell.StyleDefault.Foreground(c))
		}

		s.HUD = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		s.MapWall = tcell.StyleDefault.Foreground(tcell.ColorWhite)
		s.MapFloor = tcell.StyleDefault.Foreground(tcell.ColorGray)
		s.MapPlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		s.MapGoal = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	}

	return s
}

// Override switches describe the user's capability overrides (auto/on/off
// resolved by the caller to booleans).
func (s *Style) Override(unicodeOK, colorsOK bool) *Style {
	out := *s
	out.UnicodeOK = unicodeOK
	if !colorsOK {
		out.ColorsOK = false
		out.ColorMode = ColorNone
		out.wallRamp = nil
		out.floorRamp = nil
		out.HUD = tcell.StyleDefault.Bold(true)
		out.MapWall = tcell.StyleDefault
		out.MapFloor = tcell.StyleDefault
		out.MapPlayer = tcell.StyleDefault.Bold(true)
		out.MapGoal = tcell.StyleDefault.Bold(true)
	}
	return &out
}

// rampIndex maps a clamped [0, 1] parameter onto a ramp slot
func rampIndex(t float64, n int) int {
	return int(vmath.Clamp(t, 0.0, 1.0) * float64(n-1))
}

// WallStyle shades a wall strike: ramp position from distance, Y-axis
// strikes dimmed for a cheap pseudo-normal, near walls bolded.
func (s *Style) WallStyle(dist float64, side int) tcell.Style {
	if !s.ColorsOK || len(s.wallRamp) == 0 {
		return tcell.StyleDefault
	}
	st := s.wallRamp[rampIndex(dist/constants.MaxRayDist, len(s.wallRamp))]
	if side == 1 {
		st = st.Dim(true)
	}
	if dist < 3.5 {
		st = st.Bold(true)
	}
	return st
}

// FloorStyleDist shades floor sampled at a world distance
func (s *Style) FloorStyleDist(dist float64) tcell.Style {
	if !s.ColorsOK || len(s.floorRamp) == 0 {
		return tcell.StyleDefault
	}
	return s.floorRamp[rampIndex(dist/constants.MaxRayDist, len(s.floorRamp))]
}

// FloorStyleGrad shades floor by screen row only: the cheap path used when
// the camera is low and level
func (s *Style) FloorStyleGrad(y, viewH int) tcell.Style {
	if !s.ColorsOK || len(s.floorRamp) == 0 {
		return tcell.StyleDefault
	}
	t := (float64(y) - float64(viewH)*0.5) / max(1.0, float64(viewH)*0.5)
	return s.floorRamp[rampIndex(t, len(s.floorRamp))]
}

// WallCharText picks the full-cell wall glyph for a distance
func (s *Style) WallCharText(dist float64) rune {
	if !s.UnicodeOK {
		shades := []rune(constants.ASCIIWallShades)
		return shades[rampIndex(dist/constants.MaxRayDist, len(shades))]
	}
	switch {
	case dist < 2.5:
		return '█'
	case dist < 5.5:
		return '▓'
	case dist < 10.0:
		return '▒'
	default:
		return '░'
	}
}

// WallCharTop picks the glyph for the top surface of walls seen from above;
// one shade sparser than the face at the same distance
func (s *Style) WallCharTop(dist float64) rune {
	if !s.UnicodeOK {
		shades := []rune(constants.ASCIIWallShades)
		return shades[rampIndex(dist/constants.MaxRayDist, len(shades))]
	}
	switch {
	case dist < 2.5:
		return '▓'
	case dist < 6.0:
		return '▒'
	case dist < 14.0:
		return '░'
	default:
		return '·'
	}
}

// FloorCharDist picks the floor glyph for a world distance
func (s *Style) FloorCharDist(dist float64) rune {
	shades := []rune(constants.ASCIIFloorShades)
	if s.UnicodeOK {
		shades = []rune(constants.UnicodeFloorChars)
	}
	return shades[rampIndex(dist/constants.MaxRayDist, len(shades))]
}

// FloorCharGrad picks the floor glyph by screen row only
func (s *Style) FloorCharGrad(y, viewH int) rune {
	shades := []rune(constants.ASCIIFloorShades)
	if s.UnicodeOK {
		shades = []rune(constants.UnicodeFloorChars)
	}
	t := (float64(y) - float64(viewH)*0.5) / max(1.0, float64(viewH)*0.5)
	return shades[rampIndex(t, len(shades))]
}

// FlatWallStyle is the single wall style used with shadows off
func (s *Style) FlatWallStyle() tcell.Style {
	if s.ColorsOK && len(s.wallRamp) > 0 {
		return s.wallRamp[0].Bold(true)
	}
	if s.UnicodeOK {
		return tcell.StyleDefault.Bold(true)
	}
	return tcell.StyleDefault
}

// FlatFloorStyle is the single floor style used with shadows off
func (s *Style) FlatFloorStyle() tcell.Style {
	if s.ColorsOK && len(s.floorRamp) > 0 {
		idx := 0
		if s.ColorMode == Color256 {
			idx = len(s.floorRamp) / 2
		}
		return s.floorRamp[idx]
	}
	return tcell.StyleDefault
}

// FlatWallChar is the single wall glyph used with shadows off
func (s *Style) FlatWallChar() rune {
	if s.UnicodeOK {
		return '█'
	}
	return '#'
}

// FlatFloorChar is the single floor glyph used with shadows off
func (s *Style) FlatFloorChar() rune {
	if s.UnicodeOK {
		return '·'
	}
	return '.'
}

// FlatTopChar is the wall-top glyph used with shadows off
func (s *Style) FlatTopChar() rune {
	if s.UnicodeOK {
		return '▓'
	}
	return '#'
}
