package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/audio"
)

// handleEvent dispatches one tcell event by game state
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()

	case *tcell.EventMouse:
		if g.state == statePlaying && g.settings.Mouse {
			x, _ := ev.Position()
			g.ctl.TrackMouse(x)
		}

	case *tcell.EventKey:
		g.hudUntil = time.Now().Add(g.hudTimeout())
		switch g.state {
		case stateMenu:
			g.handleMenuKey(ev)
		case stateWin:
			g.handleWinKey(ev)
		default:
			g.handlePlayKey(ev)
		}
	}
}

// handleMenuKey drives the option list
func (g *Game) handleMenuKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		g.menu.MoveSelection(-1)
		g.audio.Play(audio.CueBlip)
	case tcell.KeyDown:
		g.menu.MoveSelection(1)
		g.audio.Play(audio.CueBlip)
	case tcell.KeyLeft:
		if g.menu.Adjust(&g.settings, -1) {
			g.onSettingsChanged()
		}
	case tcell.KeyRight:
		if g.menu.Adjust(&g.settings, 1) {
			g.onSettingsChanged()
		}
	case tcell.KeyEnter:
		switch g.menu.Activate(&g.settings) {
		case actionStart:
			g.onSettingsChanged()
			g.saveSettings()
			if g.menu.paused && g.level != nil {
				g.resumePlay()
			} else {
				g.startLevel()
			}
		case actionNewMaze:
			g.onSettingsChanged()
			g.saveSettings()
			g.startLevel()
		case actionQuit:
			g.running = false
		default:
			g.onSettingsChanged()
		}
	case tcell.KeyEscape:
		// Resume only makes sense from the pause menu
		if g.menu.paused && g.level != nil {
			g.saveSettings()
			g.resumePlay()
		}
	case tcell.KeyCtrlC:
		g.running = false
	}
}

// handleWinKey leaves the win screen
func (g *Game) handleWinKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		g.running = false
		return
	}
	g.openMenu()
}

// handlePlayKey maps gameplay keys: WASD move and turn, arrows camera,
// Space/X and PgUp/PgDn vertical in free flight, 1/2/3 FOV, 4 shadows,
// R camera reset, M map, Q quit with confirm, ESC menu. The camera arrows
// stay live in demo modes; only translation belongs to the autopilot.
func (g *Game) handlePlayKey(ev *tcell.EventKey) {
	now := time.Now()
	demo := g.settings.Demo()

	switch ev.Key() {
	case tcell.KeyUp:
		g.ctl.Pitch.Set(-1, now)
		return
	case tcell.KeyDown:
		g.ctl.Pitch.Set(1, now)
		return
	case tcell.KeyLeft:
		g.ctl.Rot.Set(-1, now)
		return
	case tcell.KeyRight:
		g.ctl.Rot.Set(1, now)
		return
	case tcell.KeyPgUp:
		if !demo && g.settings.FreeFlight() {
			g.ctl.Vert.Set(1, now)
		}
		return
	case tcell.KeyPgDn:
		if !demo && g.settings.FreeFlight() {
			g.ctl.Vert.Set(-1, now)
		}
		return
	case tcell.KeyEscape:
		g.openMenu()
		return
	case tcell.KeyCtrlC:
		g.running = false
		return
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}

	if g.quitArmed && r != 'q' {
		g.quitArmed = false
	}

	switch r {
	case 'w':
		if !demo {
			g.ctl.Move.Set(1, now)
		}
	case 's':
		if !demo {
			g.ctl.Move.Set(-1, now)
		}
	case 'a':
		if !demo {
			g.ctl.Rot.Set(-1, now)
		}
	case 'd':
		if !demo {
			g.ctl.Rot.Set(1, now)
		}
	case ' ':
		if !demo && g.settings.FreeFlight() {
			g.ctl.Vert.Set(1, now)
		}
	case 'x':
		if !demo && g.settings.FreeFlight() {
			g.ctl.Vert.Set(-1, now)
		}
	case '1':
		g.settings.FOVDegrees = max(g.settings.FOVDegrees-5, 40)
	case '2':
		g.settings.FOVDegrees = min(g.settings.FOVDegrees+5, 120)
	case '3':
		g.settings.FOVDegrees = 60
	case '4':
		g.settings.Shadows = !g.settings.Shadows
	case 'r':
		g.level.ResetCamera()
	case 'm':
		g.level.ShowMap = !g.level.ShowMap
		g.audio.Play(audio.CueBlip)
	case 'q':
		if g.quitArmed {
			g.running = false
		} else {
			g.quitArmed = true
		}
	}
}
