package maze

import "github.com/lixenwraith/maze3d/constants"

// Cell types
const (
	Wall = true
	Open = false
)

// Point is a cell coordinate on the map grid
type Point struct {
	X, Y int
}

// Grid is the occupancy map for one level. Dimensions are always odd in both
// axes (2*cells+1): odd coordinates are carved passages, even rows/columns are
// the permanent wall lattice. Read-only after generation.
type Grid [][]bool

// Width returns the horizontal extent of the grid
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the vertical extent of the grid
func (g Grid) Height() int {
	return len(g)
}

// InBounds reports whether (x, y) lies on the grid
func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < g.Width()
}

// IsWall reports whether (x, y) is a wall cell. Out-of-bounds counts as wall
// so collision and shading code never needs separate bounds handling.
func (g Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g[y][x]
}

// FloorHeight returns the walkable surface height of the cell containing
// (x, y): wall cells have their top at WallHeight, open cells at zero.
func (g Grid) FloorHeight(x, y int) float64 {
	if g.IsWall(x, y) {
		return constants.WallHeight
	}
	return 0.0
}

// CanEnter reports whether a player whose feet are at zFeet may occupy the
// cell containing the continuous position (x, y). In free flight this lets
// the player pass over walls once high enough.
func (g Grid) CanEnter(x, y, zFeet float64) bool {
	return zFeet >= g.FloorHeight(int(x), int(y))-0.01
}

// Parse builds a grid from rows of '#' (wall) and ' ' (open). Any other rune
// counts as open. Intended for fixtures and debugging, not generation.
func Parse(rows []string) Grid {
	grid := make(Grid, len(rows))
	for y, row := range rows {
		grid[y] = make([]bool, len(row))
		for x, r := range row {
			grid[y][x] = r == '#'
		}
	}
	return grid
}
