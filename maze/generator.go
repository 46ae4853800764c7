package maze

import (
	"math/rand"
	"time"
)

type Config struct {
	// CellsWide and CellsHigh size the passage lattice, not the map grid.
	// The generated grid is (2*CellsWide+1) x (2*CellsHigh+1).
	// Values below 2 are clamped up to 2.
	CellsWide, CellsHigh int

	Seed int64 // Optional (0 = Random)
}

type Result struct {
	Grid  Grid
	Start Point
	Goal  Point
	Seed  int64
}

// Generate carves a perfect maze: the open cells form a spanning tree of the
// cell lattice, so exactly one simple path connects any two passages.
//
// Iterative growing-tree carve. A visited matrix tracks lattice cells; the
// stack top inspects its four lattice neighbors, picks an unvisited one
// uniformly at random, opens the neighbor's map cell plus the wall cell
// between them, and pushes it. Dead ends pop. Every lattice cell is visited
// exactly once, so connectivity and acyclicity hold by construction.
func Generate(cfg Config) Result {
	cellW := max(2, cfg.CellsWide)
	cellH := max(2, cfg.CellsHigh)
	cols := cellW*2 + 1
	rows := cellH*2 + 1

	grid := make(Grid, rows)
	for y := range grid {
		grid[y] = make([]bool, cols)
		for x := range grid[y] {
			grid[y][x] = Wall
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	carve(grid, cellW, cellH, rng)

	// Fixed corners: lattice (0,0) to lattice (cellW-1, cellH-1)
	start := cellToMap(0, 0)
	goal := cellToMap(cellW-1, cellH-1)

	return Result{
		Grid:  grid,
		Start: start,
		Goal:  goal,
		Seed:  seed,
	}
}

// cellToMap maps a lattice coordinate to its map grid coordinate. Odd map
// coordinates are passages; the even ones between them are the wall lattice.
func cellToMap(cx, cy int) Point {
	return Point{X: 2*cx + 1, Y: 2*cy + 1}
}

func carve(grid Grid, cellW, cellH int, rng *rand.Rand) {
	visited := make([][]bool, cellH)
	for i := range visited {
		visited[i] = make([]bool, cellW)
	}

	stack := []Point{{0, 0}}
	visited[0][0] = true
	s := cellToMap(0, 0)
	grid[s.Y][s.X] = Open

	dirs := []Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]Point, 0, 4)

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if nx >= 0 && nx < cellW && ny >= 0 && ny < cellH && !visited[ny][nx] {
				candidates = append(candidates, Point{nx, ny})
			}
		}

		if len(candidates) > 0 {
			next := candidates[rng.Intn(len(candidates))]
			visited[next.Y][next.X] = true

			a := cellToMap(curr.X, curr.Y)
			b := cellToMap(next.X, next.Y)
			grid[b.Y][b.X] = Open
			// The map cell exactly between two lattice cells is the wall
			// separating them
			grid[(a.Y+b.Y)/2][(a.X+b.X)/2] = Open

			stack = append(stack, next)
		} else {
			stack = stack[:len(stack)-1]
		}
	}
}

// DifficultyToSize maps the menu difficulty (1..100, clamped) to lattice
// dimensions. Width grows faster than height to suit terminal aspect ratios.
func DifficultyToSize(d int) (cellW, cellH int) {
	if d < 1 {
		d = 1
	}
	if d > 100 {
		d = 100
	}
	return 8 + d/2, 8 + d*35/100
}
