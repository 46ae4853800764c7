package maze

import "testing"

func TestGenerateDimensionsAndBorders(t *testing.T) {
	res := Generate(Config{CellsWide: 4, CellsHigh: 3, Seed: 1})
	grid := res.Grid

	if grid.Height() != 3*2+1 {
		t.Errorf("Expected height %d, got %d", 3*2+1, grid.Height())
	}
	if grid.Width() != 4*2+1 {
		t.Errorf("Expected width %d, got %d", 4*2+1, grid.Width())
	}

	for x := 0; x < grid.Width(); x++ {
		if !grid.IsWall(x, 0) || !grid.IsWall(x, grid.Height()-1) {
			t.Errorf("Expected wall on horizontal border at x=%d", x)
		}
	}
	for y := 0; y < grid.Height(); y++ {
		if !grid.IsWall(0, y) || !grid.IsWall(grid.Width()-1, y) {
			t.Errorf("Expected wall on vertical border at y=%d", y)
		}
	}
}

func TestGenerateSpanningTree(t *testing.T) {
	// A perfect maze is a spanning tree over the open cells: connected, and
	// edge count equals open-cell count minus one.
	res := Generate(Config{CellsWide: 10, CellsHigh: 7, Seed: 42})
	grid := res.Grid

	open := 0
	edges := 0
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if grid.IsWall(x, y) {
				continue
			}
			open++
			// Count each adjacency once (right and down neighbors)
			if !grid.IsWall(x+1, y) {
				edges++
			}
			if !grid.IsWall(x, y+1) {
				edges++
			}
		}
	}

	if open == 0 {
		t.Fatal("Expected at least one open cell")
	}
	if edges != open-1 {
		t.Errorf("Expected %d edges for %d open cells (tree), got %d", open-1, open, edges)
	}

	// Connectivity: BFS from start must reach every open cell
	reached := floodCount(grid, res.Start)
	if reached != open {
		t.Errorf("Expected %d reachable open cells, got %d", open, reached)
	}
}

func floodCount(grid Grid, start Point) int {
	seen := map[Point]bool{start: true}
	queue := []Point{start}
	dirs := []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	count := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		count++
		for _, d := range dirs {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			if !grid.IsWall(next.X, next.Y) && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return count
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := Generate(Config{CellsWide: 8, CellsHigh: 6, Seed: 1234})
	b := Generate(Config{CellsWide: 8, CellsHigh: 6, Seed: 1234})

	for y := 0; y < a.Grid.Height(); y++ {
		for x := 0; x < a.Grid.Width(); x++ {
			if a.Grid[y][x] != b.Grid[y][x] {
				t.Fatalf("Expected identical grids for same seed, differ at (%d, %d)", x, y)
			}
		}
	}
}

func TestGenerateClampsTinySizes(t *testing.T) {
	res := Generate(Config{CellsWide: 0, CellsHigh: -3, Seed: 7})
	if res.Grid.Width() != 5 || res.Grid.Height() != 5 {
		t.Errorf("Expected 5x5 grid from clamped 2x2 lattice, got %dx%d",
			res.Grid.Width(), res.Grid.Height())
	}
	if res.Grid.IsWall(res.Start.X, res.Start.Y) {
		t.Error("Expected start cell to be open")
	}
	if res.Grid.IsWall(res.Goal.X, res.Goal.Y) {
		t.Error("Expected goal cell to be open")
	}
}

func TestDifficultyToSize(t *testing.T) {
	tests := []struct {
		difficulty int
		wantW      int
		wantH      int
	}{
		{1, 8, 8},
		{30, 23, 18},
		{100, 58, 43},
		{-5, 8, 8},   // clamped to 1
		{500, 58, 43}, // clamped to 100
	}
	for _, tt := range tests {
		w, h := DifficultyToSize(tt.difficulty)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("DifficultyToSize(%d): expected (%d, %d), got (%d, %d)",
				tt.difficulty, tt.wantW, tt.wantH, w, h)
		}
	}
}
