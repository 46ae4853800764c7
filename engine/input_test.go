package engine

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/audio"
	"github.com/lixenwraith/maze3d/raycast"
)

// testGame builds a game on a simulation screen, already in play
func testGame(t *testing.T) *Game {
	t.Helper()
	// Keep settings writes out of the real user config dir
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)

	g := NewGame(screen, audio.NewEngine(), DefaultSettings())
	g.startLevel()
	return g
}

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

// TestKeyUpLooksUp verifies the up arrow raises the view: pitch goes
// negative and the horizon midline moves below the screen center
func TestKeyUpLooksUp(t *testing.T) {
	g := testGame(t)

	g.handlePlayKey(keyEvent(tcell.KeyUp, 0))
	if g.ctl.Pitch.Dir != -1 {
		t.Fatalf("Expected up arrow to set pitch intent -1, got %d", g.ctl.Pitch.Dir)
	}

	g.level.Update(g.settings.Mode, &g.ctl, 0, 0.1)

	if g.level.Player.Pitch >= 0 {
		t.Errorf("Expected negative pitch when looking up, got %f", g.level.Player.Pitch)
	}
	if mid := raycast.PitchMidline(40, g.level.Player.Pitch); mid <= 20 {
		t.Errorf("Expected horizon below center when looking up, got midline %f", mid)
	}
}

// TestKeyDownLooksDown verifies the down arrow lowers the view
func TestKeyDownLooksDown(t *testing.T) {
	g := testGame(t)

	g.handlePlayKey(keyEvent(tcell.KeyDown, 0))
	g.level.Update(g.settings.Mode, &g.ctl, 0, 0.1)

	if g.level.Player.Pitch <= 0 {
		t.Errorf("Expected positive pitch when looking down, got %f", g.level.Player.Pitch)
	}
	if mid := raycast.PitchMidline(40, g.level.Player.Pitch); mid >= 20 {
		t.Errorf("Expected horizon above center when looking down, got midline %f", mid)
	}
}

// TestFOVKeys verifies 1 narrows, 2 widens, 3 resets to the default
func TestFOVKeys(t *testing.T) {
	g := testGame(t)
	g.settings.FOVDegrees = 60

	g.handlePlayKey(keyEvent(tcell.KeyRune, '1'))
	if g.settings.FOVDegrees != 55 {
		t.Errorf("Expected 1 to narrow FOV to 55, got %d", g.settings.FOVDegrees)
	}

	g.handlePlayKey(keyEvent(tcell.KeyRune, '2'))
	g.handlePlayKey(keyEvent(tcell.KeyRune, '2'))
	if g.settings.FOVDegrees != 65 {
		t.Errorf("Expected 2 to widen FOV to 65, got %d", g.settings.FOVDegrees)
	}

	g.handlePlayKey(keyEvent(tcell.KeyRune, '3'))
	if g.settings.FOVDegrees != 60 {
		t.Errorf("Expected 3 to reset FOV to 60, got %d", g.settings.FOVDegrees)
	}

	g.settings.FOVDegrees = 40
	g.handlePlayKey(keyEvent(tcell.KeyRune, '1'))
	if g.settings.FOVDegrees != 40 {
		t.Errorf("Expected FOV floored at 40, got %d", g.settings.FOVDegrees)
	}
}

// TestDemoArrowsStayLive verifies the camera arrows register intents even
// while an autopilot drives
func TestDemoArrowsStayLive(t *testing.T) {
	g := testGame(t)
	g.settings.Mode = ModeDemoDefault

	g.handlePlayKey(keyEvent(tcell.KeyLeft, 0))
	g.handlePlayKey(keyEvent(tcell.KeyUp, 0))

	if g.ctl.Rot.Dir != -1 {
		t.Errorf("Expected rotation intent in demo mode, got %d", g.ctl.Rot.Dir)
	}
	if g.ctl.Pitch.Dir != -1 {
		t.Errorf("Expected pitch intent in demo mode, got %d", g.ctl.Pitch.Dir)
	}

	// Translation stays with the autopilot
	g.handlePlayKey(keyEvent(tcell.KeyRune, 'w'))
	if g.ctl.Move.Dir != 0 {
		t.Errorf("Expected no manual move intent in demo mode, got %d", g.ctl.Move.Dir)
	}
}

// TestResumeRecomputesDemoRoute verifies switching to demo walk in the
// pause menu re-aims the route from the player's current cell
func TestResumeRecomputesDemoRoute(t *testing.T) {
	g := testGame(t)

	// Advance the walker partway so the stock route is stale
	var ctl ControlState
	for i := 0; i < 200; i++ {
		g.level.Update(ModeDemoDefault, &ctl, 0, 0.016)
	}
	g.level.PathIdx = 0 // stale index, as after a mode round-trip

	g.openMenu()
	g.settings.Mode = ModeDemoDefault
	g.menu.selected = optStart
	g.handleMenuKey(keyEvent(tcell.KeyEnter, 0))

	if g.state != statePlaying {
		t.Fatalf("Expected resume into play, got state %d", g.state)
	}
	if got := g.level.Path[0]; got != g.level.PlayerCell() {
		t.Errorf("Expected route to start at the player's cell %v, got %v",
			g.level.PlayerCell(), got)
	}
}
