package sokoban_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbrgm/sokosolve/sokoban"
)

func TestHeuristicsAgreeOnSimpleCase(t *testing.T) {
	goals := []sokoban.Point{{X: 5, Y: 0}, {X: 0, Y: 5}}
	crates := []sokoban.Point{{X: 5, Y: 1}, {X: 1, Y: 5}}
	grid := sokoban.NewGrid(8, 8)
	grid.Set(goals[0], sokoban.Goal)
	grid.Set(goals[1], sokoban.Goal)

	closest := sokoban.ClosestBox.Estimate(goals, crates, grid)
	greedy := sokoban.GreedyPerfectMatch.Estimate(goals, crates, grid)
	counted := sokoban.GoalCount.Estimate(goals, crates, grid)

	assert.Equal(t, 2, closest)
	assert.Equal(t, 2, greedy)
	assert.Equal(t, 2, counted)
}

// TestGreedyPerfectMatchForbidsDoubleAssignment exercises the case that
// makes greedy-perfect-match dominate closest-box: two crates equidistant
// from the same single goal and far from the other, where closest-box lets
// both "claim" the near goal while greedy-perfect-match must spread them.
func TestGreedyPerfectMatchForbidsDoubleAssignment(t *testing.T) {
	goals := []sokoban.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}
	crates := []sokoban.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}

	closest := sokoban.ClosestBox.Estimate(goals, crates, sokoban.NewGrid(12, 12))
	greedy := sokoban.GreedyPerfectMatch.Estimate(goals, crates, sokoban.NewGrid(12, 12))

	assert.Equal(t, 2, closest, "closest-box double-assigns both crates to the near goal")
	assert.Greater(t, greedy, closest, "greedy-perfect-match must route one crate to the far goal")
}

func TestGreedyPerfectMatchIsAdmissibleOnFixedCases(t *testing.T) {
	// A handful of fixed crate/goal layouts; greedy-perfect-match must never
	// exceed the brute-force optimal assignment cost.
	cases := [][2][]sokoban.Point{
		{
			{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 2, Y: 7}},
			{{X: 1, Y: 1}, {X: 6, Y: 6}, {X: 3, Y: 8}},
		},
		{
			{{X: 0, Y: 0}, {X: 0, Y: 9}},
			{{X: 9, Y: 0}, {X: 9, Y: 9}},
		},
	}
	for _, c := range cases {
		crates, goals := c[0], c[1]
		greedy := sokoban.GreedyPerfectMatch.Estimate(goals, crates, sokoban.NewGrid(12, 12))
		optimal := bruteForceAssignment(crates, goals)
		assert.LessOrEqual(t, greedy, optimal)
	}
}

func bruteForceAssignment(crates, goals []sokoban.Point) int {
	n := len(crates)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := -1
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			total := 0
			for i, g := range perm {
				total += sokoban.ManhattanDistance(crates[i], goals[g])
			}
			if best < 0 || total < best {
				best = total
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)
	return best
}
