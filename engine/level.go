package engine

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/physics"
	"github.com/lixenwraith/maze3d/vmath"
)

// demoLookFactor damps manual camera input while an autopilot drives, so
// looking around doesn't visibly fight the steering
const demoLookFactor = 0.6

// LevelState is everything that belongs to one generated maze. The grid is
// read-only after generation; the player pose and timers are the only
// mutable parts.
type LevelState struct {
	Grid   maze.Grid
	Goal   maze.Point
	Seed   int64
	Player physics.Player

	// Path is the BFS route start to goal, used by the demo autopilots and
	// the HUD distance readout
	Path    []maze.Point
	PathIdx int

	ShowMap bool
	Won     bool

	StartedAt time.Time
	WonAt     time.Time

	// remaining-distance cache, keyed by the player's cell
	remainCell  maze.Point
	remain      int
	remainValid bool
}

// NewLevel generates a maze for the configured difficulty and places the
// player at the start cell
func NewLevel(s Settings) *LevelState {
	cw, ch := maze.DifficultyToSize(s.Difficulty)
	res := maze.Generate(maze.Config{CellsWide: cw, CellsHigh: ch})

	l := &LevelState{
		Grid:      res.Grid,
		Goal:      res.Goal,
		Seed:      res.Seed,
		Player:    physics.NewPlayer(res.Start.X, res.Start.Y),
		Path:      maze.FindPath(res.Grid, res.Start, res.Goal),
		StartedAt: time.Now(),
	}

	log.WithFields(log.Fields{
		"seed":  res.Seed,
		"size":  [2]int{res.Grid.Width(), res.Grid.Height()},
		"start": res.Start,
		"goal":  res.Goal,
		"path":  len(l.Path),
	}).Debug("Level generated")

	return l
}

// PlayerCell returns the grid cell containing the player
func (l *LevelState) PlayerCell() maze.Point {
	return maze.Point{X: int(l.Player.X), Y: int(l.Player.Y)}
}

// RemainingPath counts cells left to the goal along the BFS route. The
// result is cached until the player changes cells.
func (l *LevelState) RemainingPath() int {
	if l.Won {
		return 0
	}
	cell := l.PlayerCell()
	if !l.remainValid || cell != l.remainCell {
		path := maze.FindPath(l.Grid, cell, l.Goal)
		l.remainCell = cell
		l.remain = max(len(path)-1, 0)
		l.remainValid = true
	}
	return l.remain
}

// ResetCamera levels the pitch and kills vertical drift. Height is owned
// by the movement mode, so z stays put.
func (l *LevelState) ResetCamera() {
	l.Player.Pitch = 0
	l.Player.VZ = 0
}

// RefreshDemoPath re-aims the walk autopilot from the player's current
// cell. Needed when the mode switches to demo after manual wandering, or
// the walker would chase a route computed from the original start.
func (l *LevelState) RefreshDemoPath() {
	l.Path = maze.FindPath(l.Grid, l.PlayerCell(), l.Goal)
	l.PathIdx = 0
}

// Update advances the simulation one tick. Exactly one of manual movement,
// the walk autopilot, or the flight autopilot mutates the pose, selected by
// the game mode. Returns true when a manual move was fully blocked, for the
// bump cue.
func (l *LevelState) Update(mode string, ctl *ControlState, mouseSens float64, dt float64) bool {
	if l.Won {
		return false
	}

	bumped := false

	switch mode {
	case ModeDemoDefault:
		// Grounded modes pin the player to the floor every tick so a
		// mid-flight mode switch lands immediately
		l.Player.Z, l.Player.VZ = 0, 0
		l.applyLook(ctl, mouseSens*demoLookFactor, dt*demoLookFactor)
		l.PathIdx = physics.WalkStep(l.Grid, &l.Player, l.Path, l.PathIdx, dt)

	case ModeDemoFree:
		l.applyLook(ctl, mouseSens*demoLookFactor, dt*demoLookFactor)
		physics.FreeStep(l.Grid, &l.Player, l.Goal, dt)

	case ModeFree:
		l.applyLook(ctl, mouseSens, dt)
		if ctl.Move.Dir != 0 {
			physics.MoveFree(l.Grid, &l.Player, float64(ctl.Move.Dir), dt)
		}
		physics.UpdateFreeVertical(l.Grid, &l.Player, ctl.Vert.Dir, dt)

	default:
		l.Player.Z, l.Player.VZ = 0, 0
		l.applyLook(ctl, mouseSens, dt)
		if ctl.Move.Dir != 0 {
			px, py := l.Player.X, l.Player.Y
			physics.MoveDefault(l.Grid, &l.Player, float64(ctl.Move.Dir), dt)
			if l.Player.X == px && l.Player.Y == py {
				bumped = true
			}
		}
	}

	if !l.Won && l.PlayerCell() == l.Goal {
		l.Won = true
		l.WonAt = time.Now()
		log.WithField("elapsed", l.WonAt.Sub(l.StartedAt)).Info("Level won")
	}

	return bumped
}

// applyLook turns and tilts the camera from key intents and mouse motion
func (l *LevelState) applyLook(ctl *ControlState, mouseSens float64, dt float64) {
	if ctl.Rot.Dir != 0 {
		l.Player.Rotate(ctl.Rot.Dir, dt)
	}
	if ctl.Pitch.Dir != 0 {
		l.Player.TiltPitch(ctl.Pitch.Dir, dt)
	}
	if dx := ctl.TakeMouseDX(); dx != 0 && mouseSens > 0 {
		l.Player.Ang = vmath.NormalizeAngle(l.Player.Ang + float64(dx)*mouseSens)
	}
}
