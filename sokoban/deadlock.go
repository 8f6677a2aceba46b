package sokoban

// SimpleDeadlockMap computes, for a puzzle's static layout (walls only —
// crates and the player are ignored), the set of squares from which a
// crate can still reach some goal. It returns a BitGrid where true means
// "reachable" (safe to place or push a crate onto) and false means "simple
// deadlock": no sequence of pushes can ever move a crate placed there to
// any goal.
//
// Computed by dragging a crate backwards from every goal: a square n is
// reachable if some already-reachable square p is adjacent to it (n =
// p.Shift(dir) for one of the four directions), n is not a wall, and the
// square one step farther from p in that same direction (n.Shift(dir)) —
// the spot the player would need to occupy to push the crate from n to p —
// is not a wall. This mirrors
// the forward push rule without needing the player to actually be able to
// reach that spot.
func SimpleDeadlockMap(walls *Grid, goals []Point) *BitGrid {
	reach := NewBitGrid(walls.Width, walls.Height)
	var stack []Point
	for _, g := range goals {
		if !reach.Get(g) {
			reach.Set(g, true)
			stack = append(stack, g)
		}
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dir := range [4]Action{Up, Down, Left, Right} {
			n := p.Shift(dir)
			farther := n.Shift(dir)
			if reach.Get(n) {
				continue
			}
			if walls.At(n) == Wall || walls.At(farther) == Wall {
				continue
			}
			reach.Set(n, true)
			stack = append(stack, n)
		}
	}
	return reach
}

// WallsOnly returns a grid the same shape as grid with every non-Wall tile
// replaced by Floor, for use as the walls argument to SimpleDeadlockMap.
func WallsOnly(grid *Grid) *Grid {
	walls := NewGrid(grid.Width, grid.Height)
	for i, t := range grid.Tiles {
		if t == Wall {
			walls.Tiles[i] = Wall
		} else {
			walls.Tiles[i] = Floor
		}
	}
	return walls
}
