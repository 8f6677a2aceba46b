package sokoban_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbrgm/sokosolve/sokoban"
)

func gridFromRows(rows []string) *sokoban.Grid {
	height := len(rows)
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	grid := sokoban.NewGrid(width, height)
	for y, row := range rows {
		for x, c := range row {
			p := sokoban.Point{X: x, Y: y}
			switch c {
			case '#':
				grid.Set(p, sokoban.Wall)
			case '$':
				grid.Set(p, sokoban.Crate)
			case '*':
				grid.Set(p, sokoban.CrateOnGoal)
			case '.':
				grid.Set(p, sokoban.Goal)
			}
		}
	}
	return grid
}

func TestIsFrozenCornerWalls(t *testing.T) {
	grid := gridFromRows([]string{
		"###",
		"#$ ",
		" # ",
	})
	assert.True(t, sokoban.IsFrozen(grid, sokoban.Point{X: 1, Y: 1}))
}

func TestIsFrozenOpenCrateIsNotFrozen(t *testing.T) {
	grid := gridFromRows([]string{
		"   ",
		" $ ",
		"   ",
	})
	assert.False(t, sokoban.IsFrozen(grid, sokoban.Point{X: 1, Y: 1}))
}

func TestIsFrozenLTripleNeedsPureCrateOnGoalSquare(t *testing.T) {
	// All three tiles of the L-triple are CrateOnGoal: no pure crate present,
	// so a crate-on-goal at the corner must not be flagged.
	grid := gridFromRows([]string{
		"***",
		"** ",
		"   ",
	})
	assert.False(t, sokoban.IsFrozen(grid, sokoban.Point{X: 1, Y: 1}))
}

func TestIsFrozenLTripleWithPureCrateOnGoalSquare(t *testing.T) {
	grid := gridFromRows([]string{
		"*$*",
		"** ",
		"   ",
	})
	assert.True(t, sokoban.IsFrozen(grid, sokoban.Point{X: 1, Y: 1}))
}

// TestIsFrozenFreezeTrap uses the freeze-trap layout of the end-to-end
// corpus and checks the crate at its starting square: walls above and below
// but open squares to either side, so it is not frozen.
func TestIsFrozenFreezeTrap(t *testing.T) {
	grid := gridFromRows([]string{
		"#######",
		"#@ $  #",
		"# ### #",
		"# .   #",
		"#######",
	})
	// The crate at (3,1) has walls at 0,1,2 and 6,7,8 of its neighborhood
	// but floor at 3 and 5: no wall corner pair and no freezable L-triple.
	assert.False(t, sokoban.IsFrozen(grid, sokoban.Point{X: 3, Y: 1}), "the crate at its start position is not yet frozen")
}
