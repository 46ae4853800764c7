package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
)

func corridorGrid() maze.Grid {
	return maze.Parse([]string{
		"#####",
		"#   #",
		"#####",
	})
}

func TestMoveDefaultStopsAtWall(t *testing.T) {
	grid := corridorGrid()
	p := NewPlayer(1, 1) // (1.5, 1.5) facing east

	// Walk east long enough to cross the whole corridor
	for i := 0; i < 100; i++ {
		MoveDefault(grid, &p, 1.0, 0.05)
	}

	if int(p.X) != 3 || int(p.Y) != 1 {
		t.Errorf("Expected player stopped in cell (3, 1), got (%d, %d)", int(p.X), int(p.Y))
	}
	if p.X >= 4.0 {
		t.Errorf("Expected X < 4.0 (east wall), got %v", p.X)
	}
}

func TestMoveDefaultSlidesAlongWall(t *testing.T) {
	grid := corridorGrid()
	p := NewPlayer(1, 1)
	p.Ang = math.Pi / 4 // diagonally into the south wall

	startX := p.X
	startY := p.Y
	MoveDefault(grid, &p, 1.0, 0.5)

	if p.X <= startX {
		t.Errorf("Expected X to advance while sliding, got %v", p.X)
	}
	if p.Y != startY {
		t.Errorf("Expected Y blocked by the wall, got %v", p.Y)
	}
}

func TestMoveFreeCrossesWallWhenHigh(t *testing.T) {
	grid := maze.Parse([]string{
		"#####",
		"# # #",
		"#####",
	})
	p := NewPlayer(1, 1)
	p.Z = constants.WallHeight + 0.5 // above the dividing wall

	for i := 0; i < 100; i++ {
		MoveFree(grid, &p, 1.0, 0.05)
		p.Z = constants.WallHeight + 0.5 // hold altitude for the test
	}

	if int(p.X) < 3 {
		t.Errorf("Expected elevated player to cross the wall, stuck at X=%v", p.X)
	}
}

func TestMoveFreeBlockedWhenLow(t *testing.T) {
	grid := maze.Parse([]string{
		"#####",
		"# # #",
		"#####",
	})
	p := NewPlayer(1, 1) // feet on the floor

	for i := 0; i < 100; i++ {
		MoveFree(grid, &p, 1.0, 0.05)
	}

	if int(p.X) != 1 {
		t.Errorf("Expected grounded player blocked by the wall, got X=%v", p.X)
	}
}

func TestResolveFloorCollisionClampsUp(t *testing.T) {
	grid := maze.Parse([]string{
		"###",
		"###",
		"###",
	})
	// Embedded in a wall cell with downward velocity
	p := Player{X: 1.5, Y: 1.5, Z: 0.0, VZ: -1.0}

	ResolveFloorCollision(grid, &p)

	if p.Z != constants.WallHeight {
		t.Errorf("Expected Z clamped up to %v, got %v", constants.WallHeight, p.Z)
	}
	if p.VZ != 0 {
		t.Errorf("Expected downward velocity zeroed, got %v", p.VZ)
	}
}

func TestResolveFloorCollisionClampsDown(t *testing.T) {
	grid := corridorGrid()
	p := Player{X: 1.5, Y: 1.5, Z: constants.FreeMaxZ + 10.0, VZ: 1.0}

	ResolveFloorCollision(grid, &p)

	if p.Z != constants.FreeMaxZ {
		t.Errorf("Expected Z clamped down to %v, got %v", constants.FreeMaxZ, p.Z)
	}
	if p.VZ != 0 {
		t.Errorf("Expected upward velocity zeroed, got %v", p.VZ)
	}
}

func TestUpdateFreeVerticalDampsWithoutInput(t *testing.T) {
	grid := corridorGrid()
	p := Player{X: 1.5, Y: 1.5, Z: 2.0, VZ: 4.0}

	UpdateFreeVertical(grid, &p, 0, 0.05)

	if p.VZ >= 4.0 {
		t.Errorf("Expected damping to reduce VZ, got %v", p.VZ)
	}
	if p.VZ <= 0 {
		t.Errorf("Expected damping, not reversal, got %v", p.VZ)
	}
}

func TestUpdateFreeVerticalClampsVelocity(t *testing.T) {
	grid := corridorGrid()
	p := Player{X: 1.5, Y: 1.5, Z: 2.0, VZ: constants.FreeMaxV}

	UpdateFreeVertical(grid, &p, 1, 1.0)

	if p.VZ > constants.FreeMaxV {
		t.Errorf("Expected VZ clamped to %v, got %v", constants.FreeMaxV, p.VZ)
	}
}

func TestRotateWraps(t *testing.T) {
	p := Player{Ang: math.Pi - 0.01}
	p.Rotate(1, 1.0) // turn well past pi

	if p.Ang < -math.Pi || p.Ang > math.Pi {
		t.Errorf("Expected wrapped heading, got %v", p.Ang)
	}
}

func TestTiltPitchClamps(t *testing.T) {
	p := Player{}
	for i := 0; i < 100; i++ {
		p.TiltPitch(1, 0.1)
	}
	if p.Pitch != constants.PitchMax {
		t.Errorf("Expected pitch clamped to %v, got %v", constants.PitchMax, p.Pitch)
	}
}
