// Package engine owns the game loop: settings, level state, input
// translation, and frame pacing. Rendering and simulation are delegated to
// the render and physics packages; everything here runs on one goroutine.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze3d/audio"
	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/render"
)

// gameState selects the active screen
type gameState uint8

const (
	stateMenu gameState = iota
	statePlaying
	stateWin
)

// Game ties the terminal, audio, settings, and level together and runs the
// frame loop
type Game struct {
	screen tcell.Screen
	audio  *audio.Engine
	frame  *render.Frame

	settings Settings
	style    *render.Style
	level    *LevelState
	ctl      ControlState
	menu     *menu

	state     gameState
	running   bool
	quitArmed bool
	hudUntil  time.Time
	lastTick  time.Time

	// detected terminal capabilities, before user overrides
	detectedColors  int
	detectedUnicode bool
}

// NewGame probes the terminal capabilities and prepares the start menu
func NewGame(screen tcell.Screen, audioEng *audio.Engine, settings Settings) *Game {
	settings.Normalize()

	g := &Game{
		screen:          screen,
		audio:           audioEng,
		frame:           render.NewFrame(1, 1),
		settings:        settings,
		menu:            newMenu(false),
		state:           stateMenu,
		detectedColors:  screen.Colors(),
		detectedUnicode: strings.Contains(strings.ToUpper(screen.CharacterSet()), "UTF-8"),
	}
	g.rebuildStyle()

	log.WithFields(log.Fields{
		"colors":  g.detectedColors,
		"unicode": g.detectedUnicode,
	}).Debug("Terminal capabilities")

	return g
}

// rebuildStyle resolves the detected capabilities against the user's
// overrides into the active style
func (g *Game) rebuildStyle() {
	unicodeOK := resolveTri(g.settings.Unicode, g.detectedUnicode)
	colorsOK := resolveTri(g.settings.Colors, g.detectedColors >= 8)

	base := render.NewStyle(g.detectedColors, unicodeOK)
	g.style = base.Override(unicodeOK, colorsOK)
}

// resolveTri folds an auto/on/off override onto a detected capability. An
// "on" override cannot conjure a capability the terminal lacks; it only
// declines the auto heuristic's pessimism for Unicode detection.
func resolveTri(override string, detected bool) bool {
	switch override {
	case TriOn:
		return true
	case TriOff:
		return false
	default:
		return detected
	}
}

// onSettingsChanged re-derives everything that hangs off the settings
func (g *Game) onSettingsChanged() {
	g.settings.Normalize()
	g.rebuildStyle()
	g.audio.Play(audio.CueBlip)
}

// saveSettings persists the settings, logging rather than surfacing failure
func (g *Game) saveSettings() {
	if err := SaveSettings(g.settings); err != nil {
		log.WithError(err).Warn("Failed to save settings")
	}
}

// startLevel generates a fresh maze and enters play
func (g *Game) startLevel() {
	g.level = NewLevel(g.settings)
	g.ctl.Reset()
	g.quitArmed = false
	g.hudUntil = time.Now().Add(constants.HUDAutoHide)
	g.state = statePlaying
}

// resumePlay returns from the pause menu to the scene. If the mode is now
// demo walk, the route is recomputed from wherever the player wandered to.
func (g *Game) resumePlay() {
	if g.settings.Mode == ModeDemoDefault {
		g.level.RefreshDemoPath()
	}
	g.state = statePlaying
}

// openMenu pauses into the option list
func (g *Game) openMenu() {
	g.menu = newMenu(g.level != nil)
	g.ctl.Reset()
	g.quitArmed = false
	g.state = stateMenu
}

// hudTimeout returns the auto-hide window
func (g *Game) hudTimeout() time.Duration {
	return constants.HUDAutoHide
}

// hudVisible resolves the HUD setting for this frame
func (g *Game) hudVisible(now time.Time) bool {
	switch g.settings.HUD {
	case HUDOn:
		return true
	case HUDOff:
		return false
	default:
		return now.Before(g.hudUntil)
	}
}

// Run executes the frame loop until quit. Events are drained without
// blocking, hold intents expire, the simulation advances by wall-clock dt,
// and the frame is rasterized and flushed, with a short sleep to pace the
// loop.
func (g *Game) Run() {
	g.running = true
	g.lastTick = time.Now()

	for g.running {
		now := time.Now()
		dt := now.Sub(g.lastTick).Seconds()
		g.lastTick = now
		// A stall (suspend, debugger) must not turn into a teleport
		if dt > 0.1 {
			dt = 0.1
		}

		for g.screen.HasPendingEvent() {
			ev := g.screen.PollEvent()
			if ev == nil {
				g.running = false
				break
			}
			g.handleEvent(ev)
		}

		g.ctl.Expire(now)

		if g.state == statePlaying && g.level != nil {
			bumped := g.level.Update(g.settings.Mode, &g.ctl, g.settings.MouseSens, dt)
			if bumped {
				g.audio.Play(audio.CueBump)
			}
			if g.level.Won {
				g.audio.Play(audio.CueWin)
				g.state = stateWin
			}
		}

		// Demo runs unattended; roll a fresh maze after the win screen
		if g.state == stateWin && g.settings.Demo() && time.Since(g.level.WonAt) > 3*time.Second {
			g.startLevel()
		}

		g.draw(now)
		time.Sleep(constants.FrameSleep)
	}

	g.saveSettings()
}

// draw rasterizes the current state into the frame and flushes it
func (g *Game) draw(now time.Time) {
	w, h := g.screen.Size()
	g.frame.Reset(w, h)
	lang := g.settings.Language

	hud := g.hudVisible(now)
	cfg := render.Config{
		FOV:          g.settings.FOV(),
		Shadows:      g.settings.Shadows,
		TooSmallText: Tr(lang, "too_small"),
	}
	if hud {
		cfg.HUDLines = 2
	}

	if g.level != nil {
		mode := render.ModeFromString(g.settings.Render)
		render.For(mode, g.style).Draw(g.frame, g.level.Grid, g.level.Player, cfg, g.style)

		if g.level.ShowMap {
			render.DrawMap(g.frame, g.level.Grid, g.level.Player, g.level.Goal, g.style, Tr(lang, "map.title"))
		}
		if hud && g.state == statePlaying {
			g.drawHUD()
		}
	}

	switch g.state {
	case stateMenu:
		g.menu.Draw(g.frame, g.style, g.settings)
	case stateWin:
		g.drawWin()
	}

	g.frame.Flush(g.screen)
	g.screen.Show()
}

// drawHUD composes the two bottom status lines
func (g *Game) drawHUD() {
	lang := g.settings.Language

	line1 := Tr(lang, "hud.controls")
	if g.quitArmed {
		line1 = Tr(lang, "quit.confirm")
	}

	line2 := fmt.Sprintf("%s:%s  %s:%d  %s:%d  %s:%d°",
		Tr(lang, "hud.mode"), Tr(lang, "mode."+g.settings.Mode),
		Tr(lang, "hud.diff"), g.settings.Difficulty,
		Tr(lang, "hud.dist"), g.level.RemainingPath(),
		Tr(lang, "hud.fov"), g.settings.FOVDegrees)

	render.DrawHUD(g.frame, g.style, line1, line2)
}

// drawWin overlays the win box with the elapsed time
func (g *Game) drawWin() {
	lang := g.settings.Language
	elapsed := g.level.WonAt.Sub(g.level.StartedAt).Round(100 * time.Millisecond)

	lines := []string{
		Tr(lang, "win.title"),
		fmt.Sprintf("%s: %s", Tr(lang, "win.time"), elapsed),
		"",
		Tr(lang, "win.key"),
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l))+6)
	}
	boxH := len(lines) + 2
	left := max((g.frame.Width()-boxW)/2, 0)
	top := max((g.frame.Height()-boxH)/2, 0)

	drawBox(g.frame, g.style, left, top, boxW, boxH)
	for i, l := range lines {
		f := left + (boxW-len([]rune(l)))/2
		g.frame.WriteString(f, top+1+i, l, g.style.HUD)
	}
}
