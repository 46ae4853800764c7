package engine

import (
	"fmt"

	"github.com/lixenwraith/maze3d/render"
)

// menu option indices; actions follow the settings rows
const (
	optDifficulty = iota
	optMode
	optRender
	optShadows
	optColors
	optUnicode
	optMouse
	optHUD
	optFOV
	optLanguage
	optStart
	optNewMaze
	optQuit
	optCount
)

// menu is the start/pause option list. The same rows serve both; the pause
// variant shows Resume and New maze instead of Start.
type menu struct {
	selected int
	paused   bool
}

func newMenu(paused bool) *menu {
	return &menu{paused: paused}
}

// visible reports whether an option row applies in the current variant
func (m *menu) visible(opt int) bool {
	switch opt {
	case optStart:
		return true
	case optNewMaze:
		return m.paused
	default:
		return true
	}
}

// MoveSelection steps the cursor up or down, skipping hidden rows
func (m *menu) MoveSelection(delta int) {
	for {
		m.selected = (m.selected + delta + optCount) % optCount
		if m.visible(m.selected) {
			return
		}
	}
}

// Adjust changes the selected setting by delta (left/right keys). Action
// rows ignore adjustment.
func (m *menu) Adjust(s *Settings, delta int) bool {
	switch m.selected {
	case optDifficulty:
		s.Difficulty = min(max(s.Difficulty+delta*5, 1), 100)
	case optMode:
		s.Mode = cycle(s.Mode, delta, ModeDefault, ModeFree, ModeDemoDefault, ModeDemoFree)
	case optRender:
		s.Render = cycle(s.Render, delta, "auto", "text", "half", "braille")
	case optShadows:
		s.Shadows = !s.Shadows
	case optColors:
		s.Colors = cycle(s.Colors, delta, TriAuto, TriOn, TriOff)
	case optUnicode:
		s.Unicode = cycle(s.Unicode, delta, TriAuto, TriOn, TriOff)
	case optMouse:
		s.Mouse = !s.Mouse
	case optHUD:
		s.HUD = cycle(s.HUD, delta, HUDAuto, HUDOn, HUDOff)
	case optFOV:
		s.FOVDegrees = min(max(s.FOVDegrees+delta*5, 40), 120)
	case optLanguage:
		s.Language = cycle(s.Language, delta, LangEN, LangRU)
	default:
		return false
	}
	return true
}

// menuAction identifies what an Enter press on the current row means
type menuAction int

const (
	actionNone menuAction = iota
	actionStart
	actionNewMaze
	actionQuit
)

// Activate resolves an Enter press. Settings rows adjust forward instead.
func (m *menu) Activate(s *Settings) menuAction {
	switch m.selected {
	case optStart:
		return actionStart
	case optNewMaze:
		return actionNewMaze
	case optQuit:
		return actionQuit
	default:
		m.Adjust(s, 1)
		return actionNone
	}
}

// cycle steps through an enum list in either direction
func cycle(current string, delta int, values ...string) string {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	n := len(values)
	return values[(idx+delta+n)%n]
}

// onOff localizes a boolean setting
func onOff(lang string, v bool) string {
	if v {
		return Tr(lang, "on")
	}
	return Tr(lang, "off")
}

// Draw renders the boxed menu centered in the frame
func (m *menu) Draw(f *render.Frame, style *render.Style, s Settings) {
	lang := s.Language

	startLabel := Tr(lang, "menu.start")
	if m.paused {
		startLabel = Tr(lang, "menu.resume")
	}

	type row struct {
		opt   int
		label string
		value string
	}
	rows := []row{
		{optDifficulty, Tr(lang, "menu.diff"), fmt.Sprintf("%d", s.Difficulty)},
		{optMode, Tr(lang, "menu.mode"), Tr(lang, "mode."+s.Mode)},
		{optRender, Tr(lang, "menu.render"), s.Render},
		{optShadows, Tr(lang, "menu.shadows"), onOff(lang, s.Shadows)},
		{optColors, Tr(lang, "menu.colors"), Tr(lang, s.Colors)},
		{optUnicode, Tr(lang, "menu.unicode"), Tr(lang, s.Unicode)},
		{optMouse, Tr(lang, "menu.mouse"), onOff(lang, s.Mouse)},
		{optHUD, Tr(lang, "menu.hud"), s.HUD},
		{optFOV, Tr(lang, "menu.fov"), fmt.Sprintf("%d°", s.FOVDegrees)},
		{optLanguage, Tr(lang, "menu.lang"), s.Language},
		{optStart, startLabel, ""},
	}
	if m.paused {
		rows = append(rows, row{optNewMaze, Tr(lang, "menu.new"), ""})
	}
	rows = append(rows, row{optQuit, Tr(lang, "menu.quit"), ""})

	const boxW = 38
	boxH := len(rows) + 4
	left := max((f.Width()-boxW)/2, 0)
	top := max((f.Height()-boxH)/2, 0)

	drawBox(f, style, left, top, boxW, boxH)
	title := Tr(lang, "title")
	f.WriteString(left+(boxW-len([]rune(title)))/2, top+1, title, style.HUD)

	for i, r := range rows {
		y := top + 3 + i
		line := "  " + r.label
		if r.value != "" {
			line = fmt.Sprintf("  %-12s < %s >", r.label, r.value)
		}
		st := style.MapFloor
		if r.opt == m.selected {
			st = style.HUD.Reverse(true)
			line = ">" + line[1:]
		}
		f.WriteString(left+2, y, pad(line, boxW-4), st)
	}

	hint := Tr(lang, "menu.hint")
	f.WriteString(max((f.Width()-len([]rune(hint)))/2, 0), top+boxH, hint, style.MapFloor)
}

// drawBox paints a bordered rectangle; ASCII borders without Unicode
func drawBox(f *render.Frame, style *render.Style, x, y, w, h int) {
	tl, tr, bl, br, hr, vr := '┌', '┐', '└', '┘', '─', '│'
	if !style.UnicodeOK {
		tl, tr, bl, br, hr, vr = '+', '+', '+', '+', '-', '|'
	}

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			var r rune
			switch {
			case dy == 0 && dx == 0:
				r = tl
			case dy == 0 && dx == w-1:
				r = tr
			case dy == h-1 && dx == 0:
				r = bl
			case dy == h-1 && dx == w-1:
				r = br
			case dy == 0 || dy == h-1:
				r = hr
			case dx == 0 || dx == w-1:
				r = vr
			default:
				r = ' '
			}
			f.SetCell(x+dx, y+dy, r, style.HUD)
		}
	}
}

// pad right-pads or truncates a string to width cells
func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	for len(r) < width {
		r = append(r, ' ')
	}
	return string(r)
}
