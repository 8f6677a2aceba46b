// Package search is a small best-first/depth-first search toolkit: A*, IDA*,
// breadth-first and depth-first, all driven through a single State/Context
// contract and composed with pluggable Constraints.
//
// A problem is modelled by implementing State. The solver is built with
// NewSolver and configured with the builder methods before Solve is called.
// Solve can be called repeatedly on the same Solver to enumerate further
// solutions (in non-decreasing cost order for Astar and IDAstar); once no
// further solution exists, Result.Solved reports false.
package search

import "math"

// Context carries a caller-supplied value to every State method call, so a
// State implementation can stay small while still reaching precomputed,
// read-mostly data (a map, a static obstacle grid, ...).
type Context struct {
	Custom interface{}
}

// State represents one node of the problem being searched.
type State interface {
	// Cost is the accumulated cost to reach this state from the root.
	Cost(ctx Context) float64

	// IsGoal reports whether this state satisfies the search's goal test.
	IsGoal(ctx Context) bool

	// Expand returns the states directly reachable from this one.
	Expand(ctx Context) []State

	// Heuristic estimates the remaining cost to a goal. Use 0 for no
	// heuristic. A* and IDA* only find an optimal solution if this is
	// admissible, i.e. it never overestimates the true remaining cost.
	Heuristic(ctx Context) float64
}

// Algorithm selects the search strategy used by a Solver.
type Algorithm int

const (
	Astar Algorithm = iota
	DepthFirst
	BreadthFirst
	IDAstar
)

func (a Algorithm) String() string {
	switch a {
	case Astar:
		return "A*"
	case DepthFirst:
		return "DepthFirst"
	case BreadthFirst:
		return "BreadthFirst"
	case IDAstar:
		return "IDA*"
	}
	return "<unknown algorithm>"
}

// Result is returned by Solve.
type Result struct {
	// Solution is the path from the root state to the goal state,
	// root first. Empty if no (further) solution exists.
	Solution []State

	// Visited is the number of nodes dequeued so far, counted from the
	// Solver's first Solve call.
	Visited int

	// Expanded is the number of nodes enqueued so far, counted from the
	// Solver's first Solve call.
	Expanded int
}

// Solved reports whether this Result carries a solution.
func (r Result) Solved() bool {
	return len(r.Solution) > 0
}

// GoalState returns the final state of Solution. Panics if !Solved.
func (r Result) GoalState() State {
	return r.Solution[len(r.Solution)-1]
}

// internal search-tree node; forms the path as a parent-linked list so a
// Constraint can walk ancestors without the Solver keeping a separate stack.
type node struct {
	parent *node
	state  State
	value  float64 // f = max(parent.value, cost+heuristic) along the A*/IDA* path
}

// result is the internal, resumable counterpart of Result: node is nil when
// no solution was found this pass, and next (when non-nil) resumes the
// search from exactly where it left off to find the next solution.
type result struct {
	node     *node
	contour  float64
	visited  int
	expanded int
	next     *func() result
}

func toSlice(n *node) []State {
	if n == nil {
		return make([]State, 0)
	}
	return append(toSlice(n.parent), n.state)
}

func toResult(r *result) Result {
	return Result{toSlice(r.node), r.visited, r.expanded}
}

// generalSearch drains queue, applying constr at both dequeue (onVisit) and
// enqueue (onExpand) time. ubound is a strict lower bound goal states must
// exceed to be accepted — used by IDA* to skip a goal state already reported
// by a previous call at this bound. limit caps the f-value of nodes that may
// be enqueued; contour accumulates the minimum f-value seen above limit, so
// the caller can use it as the next IDA* bound.
func generalSearch(queue strategy, visited, expanded int, constr iconstraint, ubound, limit, contour float64, ctx Context) result {
	for {
		n := queue.Take()
		if n == nil {
			return result{nil, contour, visited, expanded, nil}
		}
		visited++
		if constr.onVisit(n) {
			continue
		}
		if n.state.IsGoal(ctx) && n.value > ubound {
			next := func() result {
				return generalSearch(queue, visited, expanded, constr, ubound, limit, contour, ctx)
			}
			return result{n, contour, visited, expanded, &next}
		}
		for _, child := range n.state.Expand(ctx) {
			childNode := &node{n, child, math.Max(n.value, child.Cost(ctx)+child.Heuristic(ctx))}
			if constr.onExpand(childNode) {
				continue
			}
			if childNode.value > limit {
				contour = math.Min(contour, childNode.value)
				continue
			}
			queue.Add(childNode)
			expanded++
		}
	}
}

// idaStar runs the classic iterative-deepening loop: each pass is a bounded
// depth-first search, and a pass that finds nothing returns the smallest
// f-value it pruned, which becomes the next bound. nextfn, when set, resumes
// the prior pass's generalSearch closure instead of starting a fresh one —
// this is how repeated Solve() calls surface further equal-or-greater-cost
// solutions.
func idaStar(root State, constraint iconstraint, bound, ubound, limit float64, ctx Context, nextfn *func() result) result {
	visited, expanded := 0, 0
	for {
		var last result
		if nextfn != nil {
			fn := *nextfn
			nextfn = nil
			last = fn()
		} else {
			s := depthFirst()
			s.Add(&node{nil, root, root.Cost(ctx) + root.Heuristic(ctx)})
			constraint.reset()
			last = generalSearch(s, visited, expanded, constraint, ubound, bound, math.Inf(1), ctx)
		}
		if last.node != nil {
			underlying := last.next
			resume := func() result {
				return idaStar(root, constraint, bound, ubound, limit, ctx, underlying)
			}
			last.next = &resume
			return last
		}
		if last.contour > limit || math.IsInf(last.contour, 1) || math.IsNaN(last.contour) {
			last.next = nil
			return last
		}
		last.next = nil
		ubound = bound
		visited, expanded = last.visited, last.expanded
		bound = last.contour
	}
}

type solver struct {
	rootState  State
	algorithm  Algorithm
	constraint Constraint
	limit      float64
	context    interface{}

	started bool
	result  *result
}

func solve(s *solver) Result {
	if s.started {
		if s.result.next == nil {
			return Result{[]State{}, s.result.visited, s.result.expanded}
		}
		next := (*s.result.next)()
		s.result = &next
		return toResult(s.result)
	}
	s.started = true
	ctx := Context{s.context}
	constraint := s.constraint.(iconstraint)

	if s.algorithm == IDAstar {
		res := idaStar(s.rootState, constraint, s.rootState.Cost(ctx)+s.rootState.Heuristic(ctx), -1.0, s.limit, ctx, nil)
		s.result = &res
		return toResult(s.result)
	}

	var q strategy
	switch s.algorithm {
	case Astar:
		q = aStar()
	case DepthFirst:
		q = depthFirst()
	case BreadthFirst:
		q = breadthFirst()
	default:
		q = aStar()
	}
	q.Add(&node{nil, s.rootState, s.rootState.Cost(ctx) + s.rootState.Heuristic(ctx)})
	constraint.reset()
	res := generalSearch(q, 0, 0, constraint, -1.0, s.limit, math.Inf(1), ctx)
	s.result = &res
	return toResult(s.result)
}

// Solver configures and runs a search. Obtain one with NewSolver.
type Solver interface {
	// Algorithm selects the search strategy. Defaults to Astar.
	Algorithm(algorithm Algorithm) Solver

	// Constraint installs a Constraint built by NoConstraint, NoLoopConstraint
	// or CheapestPathConstraint. Defaults to NoConstraint().
	Constraint(constraint Constraint) Solver

	// Limit caps the f-value (cost plus heuristic) a node may have to be
	// expanded. Defaults to +Inf.
	Limit(limit float64) Solver

	// Context installs the value passed to every State method as
	// Context.Custom.
	Context(context interface{}) Solver

	// Solve runs (or resumes) the search and returns its Result.
	Solve() Result
}

func (s *solver) Algorithm(a Algorithm) Solver  { s.algorithm = a; return s }
func (s *solver) Constraint(c Constraint) Solver { s.constraint = c; return s }
func (s *solver) Limit(l float64) Solver         { s.limit = l; return s }
func (s *solver) Context(c interface{}) Solver   { s.context = c; return s }
func (s *solver) Solve() Result                  { return solve(s) }

// NewSolver creates a Solver for rootState, defaulting to A* with no
// constraint and no limit.
func NewSolver(rootState State) Solver {
	return &solver{rootState: rootState, algorithm: Astar, constraint: NoConstraint(), limit: math.Inf(1)}
}
