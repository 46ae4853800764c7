package maze

// FindPath runs breadth-first search over open cells with 4-connectivity and
// returns the cell sequence from start to goal inclusive. The neighbor order
// is fixed, so the result is deterministic for a given grid.
//
// An unreachable goal or out-of-bounds input yields []Point{start}; callers
// treat a single-element path as "no route".
func FindPath(grid Grid, start, goal Point) []Point {
	if !grid.InBounds(start.X, start.Y) || !grid.InBounds(goal.X, goal.Y) {
		return []Point{start}
	}

	prev := make(map[Point]Point)
	seen := map[Point]bool{start: true}
	queue := []Point{start}

	dirs := []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	found := false
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == goal {
			found = true
			break
		}

		for _, d := range dirs {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			if grid.InBounds(next.X, next.Y) && !grid.IsWall(next.X, next.Y) && !seen[next] {
				seen[next] = true
				prev[next] = curr
				queue = append(queue, next)
			}
		}
	}

	if !found {
		return []Point{start}
	}

	// Reconstruct goal -> start, then reverse
	path := []Point{goal}
	for curr := goal; curr != start; {
		curr = prev[curr]
		path = append(path, curr)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
