package sokoban

// FloodFill marks, in reach, the full 4-connected set of Floor/Goal squares
// reachable from start under the current crate configuration of grid. reach
// must already be sized to grid's shape; start is marked reachable
// unconditionally. Walls, crates and crates-on-goal block traversal.
//
// Uses an explicit stack rather than recursion: open Sokoban rooms can be
// large enough that a naive recursive flood fill would blow the goroutine
// stack.
func FloodFill(grid *Grid, start Point, reach *BitGrid) {
	reach.Set(start, true)
	stack := []Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range [4]Point{
			{p.X - 1, p.Y},
			{p.X + 1, p.Y},
			{p.X, p.Y - 1},
			{p.X, p.Y + 1},
		} {
			if reach.Get(n) {
				continue
			}
			switch grid.At(n) {
			case Floor, Goal:
				reach.Set(n, true)
				stack = append(stack, n)
			}
		}
	}
}
