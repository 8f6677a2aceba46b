package sokoban

import "github.com/cbrgm/sokosolve/search"

// moverContext is the Context.Custom payload for the A* mover: the grid the
// player walks on (crates block like walls) and the action appended once
// goal is reached.
type moverContext struct {
	grid   *Grid
	goal   Point
	pushed Action
}

// moveState is one player position in the A* mover search, carrying the
// move action that reached it so the winning path can be replayed.
type moveState struct {
	pos    Point
	via    Action
	cost   float64
}

func (s moveState) Cost(search.Context) float64 { return s.cost }

func (s moveState) IsGoal(ctx search.Context) bool {
	return s.pos == ctx.Custom.(moverContext).goal
}

func (s moveState) Heuristic(ctx search.Context) float64 {
	return float64(ManhattanDistance(s.pos, ctx.Custom.(moverContext).goal))
}

func (s moveState) Expand(ctx search.Context) []search.State {
	mc := ctx.Custom.(moverContext)
	var children []search.State
	for _, d := range [4]Action{Up, Down, Left, Right} {
		n := s.pos.Shift(d)
		switch mc.grid.At(n) {
		case Wall, Crate, CrateOnGoal:
			continue
		}
		children = append(children, moveState{n, d, s.cost + 1})
	}
	return children
}

// FindMovePath returns the shortest 4-connected move path from start to
// goal on grid (crates block like walls), followed by pushed as the final
// action. Returns an empty slice if start and goal are mutually
// unreachable — callers must ensure this cannot happen for pushes the
// solver actually generates.
func FindMovePath(grid *Grid, start, goal Point, pushed Action) []Action {
	if start == goal {
		return []Action{pushed}
	}
	root := moveState{pos: start}
	samePos := func(a, b search.State) bool { return a.(moveState).pos == b.(moveState).pos }
	result := search.NewSolver(root).
		Algorithm(search.Astar).
		Constraint(search.NoLoopConstraint(grid.Width*grid.Height, samePos)).
		Context(moverContext{grid: grid, goal: goal, pushed: pushed}).
		Solve()
	if !result.Solved() {
		return nil
	}
	path := make([]Action, 0, len(result.Solution))
	for _, s := range result.Solution[1:] {
		path = append(path, s.(moveState).via)
	}
	path = append(path, pushed)
	return path
}
