package sokoban

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeBudget is the wall-clock cap on a single solve, per the design.
const DefaultTimeBudget = 300 * time.Second

// perNodeTimeCheck is how often (in nodes checked) the DFS samples the
// timer; sampling every node would dominate the cost of cheap puzzles.
const perNodeTimeCheck = 10_000

// sentinelInfinity stands in for "no bound was exceeded below infinity" —
// both "search exhausted, no solution" and "time budget expired" return it
// from search so the outer loop can tell them apart only via searchOver.
const sentinelInfinity = int(^uint(0) >> 1)

// RunStats counts what a single solve's IDA* pass did: nodes visited,
// expanded, and pruned, for the verbose run-data printout.
type RunStats struct {
	NodesChecked    int
	NodesGenerated  int
	NodesDeadlocked int
	NodesSkipped    int
}

// Solver owns one puzzle's search state: the goal list, the immutable
// simple-deadlock bitmap, the chosen heuristic, the current path stack, the
// solutions found at the current bound, run counters, the optional
// deadlock-state memoization set, and a timer. Build one with NewSolver and
// call Solve once; a Solver is not reusable across puzzles.
type Solver struct {
	goals           []Point
	simpleDeadlock  *BitGrid
	heuristic       Heuristic
	deadlockHashing bool

	path      []*Node
	solutions [][]*Node
	stats     RunStats
	deadlocks map[string]struct{}

	timer      time.Time
	budget     time.Duration
	searchOver bool

	runID uuid.UUID
}

// NewSolver builds a Solver for grid: it extracts the player, crate list and
// goal list, precomputes the simple-deadlock map, and computes the root
// node's heuristic. grid's ownership transfers to the Solver's root node;
// callers must not mutate grid afterward.
func NewSolver(grid *Grid, heuristic Heuristic, deadlockHashing bool) (*Solver, error) {
	var goals, crates []Point
	var player *Point
	for i, t := range grid.Tiles {
		p := Point{X: i % grid.Width, Y: i / grid.Width}
		switch t {
		case Player:
			pp := p
			player = &pp
		case PlayerOnGoal:
			pp := p
			player = &pp
			goals = append(goals, p)
		case Crate:
			crates = append(crates, p)
		case CrateOnGoal:
			goals = append(goals, p)
			crates = append(crates, p)
		case Goal:
			goals = append(goals, p)
		}
	}
	if player == nil {
		return nil, fmt.Errorf("sokoban: grid has no player tile")
	}
	if len(crates) != len(goals) {
		return nil, fmt.Errorf("sokoban: %d crates but %d goals", len(crates), len(goals))
	}

	simpleDeadlock := SimpleDeadlockMap(WallsOnly(grid), goals)

	root := NewRootNode(grid, crates, *player)
	s := &Solver{
		goals:           goals,
		simpleDeadlock:  simpleDeadlock,
		heuristic:       heuristic,
		deadlockHashing: deadlockHashing,
		path:            []*Node{root},
		deadlocks:       make(map[string]struct{}),
		runID:           uuid.New(),
	}
	root.H = heuristic.Estimate(goals, root.Crates, grid)
	return s, nil
}

// RunID identifies this solve attempt, for correlating verbose/silent
// output and batch CSV rows back to a single invocation.
func (s *Solver) RunID() uuid.UUID { return s.runID }

func (s *Solver) isSimpleDeadlock(p Point) bool {
	return !s.simpleDeadlock.Get(p)
}

func (s *Solver) isGoalNode(n *Node) bool {
	for _, t := range n.Grid.Tiles {
		if t == Crate {
			return false
		}
	}
	return true
}

// successors returns the children of the current top-of-path node, sorted
// ascending by f = g+h (ties keep crate/direction enumeration order, which
// is already stable).
func (s *Solver) successors() []*Node {
	node := s.path[len(s.path)-1]

	reach := NewBitGrid(node.Grid.Width, node.Grid.Height)
	FloodFill(node.Grid, node.Player, reach)

	var succ []*Node
	for i, crate := range node.Crates {
		for _, push := range [4]Action{PushRight, PushLeft, PushDown, PushUp} {
			crateTo := crate.Shift(push)
			pushFrom := crate.Shift(push.Inverse())

			if !reach.Get(pushFrom) {
				continue
			}
			if s.isSimpleDeadlock(crateTo) {
				s.stats.NodesSkipped++
				continue
			}
			switch node.Grid.At(crateTo) {
			case Wall, Crate, CrateOnGoal:
				continue
			}

			newGrid := node.Grid.Clone()
			newGrid.ApplyPush(push, crate, node.Player, node.Grid)

			newCrates := append([]Point(nil), node.Crates...)
			newCrates[i] = crateTo

			if IsFrozen(newGrid, crateTo) {
				s.stats.NodesDeadlocked++
				continue
			}

			child := NewChildNode(node, push, newGrid, newCrates, crate)
			child.H = s.heuristic.Estimate(s.goals, newCrates, newGrid)
			s.stats.NodesGenerated++
			succ = append(succ, child)
		}
	}

	sort.SliceStable(succ, func(i, j int) bool {
		return succ[i].F() < succ[j].F()
	})
	return succ
}

func gridKey(g *Grid) string {
	buf := make([]byte, len(g.Tiles))
	for i, t := range g.Tiles {
		buf[i] = byte(t)
	}
	return string(buf)
}

// search is one bounded depth-first pass, adapted directly from the
// original ida_star_solver's recursive search: it returns the f-cost to use
// as the next bound, or sentinelInfinity if the time budget expired or the
// whole subtree below bound was exhausted without a goal.
func (s *Solver) search(bound int) int {
	node := s.path[len(s.path)-1]
	f := node.F()

	if s.stats.NodesChecked%perNodeTimeCheck == 0 && time.Since(s.timer) > s.budget {
		s.searchOver = true
	}
	if s.searchOver {
		return sentinelInfinity
	}
	s.stats.NodesChecked++

	if f > bound {
		return f
	}
	if s.isGoalNode(node) {
		s.solutions = append(s.solutions, append([]*Node(nil), s.path...))
		return f
	}
	if s.deadlockHashing {
		if _, dead := s.deadlocks[gridKey(node.Grid)]; dead {
			return sentinelInfinity
		}
	}

	min := sentinelInfinity
	for _, child := range s.successors() {
		duplicate := false
		for _, onPath := range s.path {
			if onPath.Fingerprint == child.Fingerprint {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		s.path = append(s.path, child)
		result := s.search(bound)
		if result < min {
			min = result
		}
		s.path = s.path[:len(s.path)-1]

		if s.deadlockHashing && min == sentinelInfinity {
			s.deadlocks[gridKey(child.Grid)] = struct{}{}
		}
	}
	return min
}

// idaStar runs the bound-progression outer loop until a bound yields a
// solution, the search is exhausted, or the timer fires.
func (s *Solver) idaStar() (bound int) {
	bound = s.path[0].F()
	for len(s.solutions) == 0 {
		next := s.search(bound)
		if next == sentinelInfinity {
			return bound
		}
		bound = next
	}
	return bound
}

// lowerToMoves runs C8: for every equal-push solution path it undoes each
// push to recover the pre-push grid, A*-lowers the walk to the push's
// start square, and appends the push action. It returns the shortest move
// sequence across all equal-push solutions.
func (s *Solver) lowerToMoves() []Action {
	var best []Action
	for _, path := range s.solutions {
		var moves []Action
		for i := 1; i < len(path); i++ {
			before := path[i-1].Player
			n := path[i]
			pushFrom := n.Player
			after := n.Player.Shift(n.Action.Inverse())

			undone := n.Grid.Clone()
			undone.UndoPush(n.Action, pushFrom)

			moves = append(moves, FindMovePath(undone, before, after, n.Action)...)
		}
		if best == nil || len(moves) < len(best) {
			best = moves
		}
	}
	return best
}

// Outcome classifies a finished solve.
type Outcome int

const (
	Solved Outcome = iota
	NoSolution
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case NoSolution:
		return "no solution"
	case TimedOut:
		return "timed out"
	default:
		return "<unknown outcome>"
	}
}

// SolveReport is the result of a solve: outcome, timing, run statistics,
// and (on Solved) the push count, move count and serialized move string.
type SolveReport struct {
	RunID     uuid.UUID
	Outcome   Outcome
	Elapsed   time.Duration
	Stats     RunStats
	Solutions int
	Bound     int
	Pushes    int
	Moves     string
}

// Solve runs the IDA* push search (per budget, default DefaultTimeBudget if
// zero) and, on success, lowers the best equal-push solution to a move
// string.
func (s *Solver) Solve(budget time.Duration) SolveReport {
	if budget == 0 {
		budget = DefaultTimeBudget
	}
	s.budget = budget
	s.timer = time.Now()

	bound := s.idaStar()
	elapsed := time.Since(s.timer)

	if s.searchOver {
		return SolveReport{RunID: s.runID, Outcome: TimedOut, Elapsed: elapsed, Stats: s.stats, Bound: bound}
	}
	if len(s.solutions) == 0 {
		return SolveReport{RunID: s.runID, Outcome: NoSolution, Elapsed: elapsed, Stats: s.stats, Bound: bound}
	}

	moves := s.lowerToMoves()
	return SolveReport{
		RunID:     s.runID,
		Outcome:   Solved,
		Elapsed:   elapsed,
		Stats:     s.stats,
		Solutions: len(s.solutions),
		Bound:     bound,
		Pushes:    bound,
		Moves:     ActionsToString(moves),
	}
}
