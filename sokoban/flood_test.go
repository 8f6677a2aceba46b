package sokoban_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbrgm/sokosolve/puzzle"
	"github.com/cbrgm/sokosolve/sokoban"
)

// TestFloodFillReachableSeed checks the reachable-seed invariant locally:
// the start square is always marked reachable, and every other marked
// square has at least one marked 4-neighbor.
func TestFloodFillReachableSeed(t *testing.T) {
	grid, err := puzzle.Parse("#######\n#@   .#\n#   $ #\n# ### #\n#     #\n#######\n")
	require.NoError(t, err)

	player := findPlayer(grid)
	reach := sokoban.NewBitGrid(grid.Width, grid.Height)
	sokoban.FloodFill(grid, player, reach)

	assert.True(t, reach.Get(player))

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := sokoban.Point{X: x, Y: y}
			if !reach.Get(p) {
				continue
			}
			if p == player {
				continue
			}
			assert.True(t, hasReachableNeighbor(reach, p), "reachable square %v has no reachable 4-neighbor", p)
		}
	}
}

func hasReachableNeighbor(reach *sokoban.BitGrid, p sokoban.Point) bool {
	for _, n := range [4]sokoban.Point{
		{X: p.X - 1, Y: p.Y}, {X: p.X + 1, Y: p.Y}, {X: p.X, Y: p.Y - 1}, {X: p.X, Y: p.Y + 1},
	} {
		if n.X >= 0 && n.Y >= 0 && reach.Get(n) {
			return true
		}
	}
	return false
}

func TestFloodFillBlockedByCrateAndWall(t *testing.T) {
	grid, err := puzzle.Parse("#####\n#@$.#\n#####\n")
	require.NoError(t, err)

	reach := sokoban.NewBitGrid(grid.Width, grid.Height)
	sokoban.FloodFill(grid, sokoban.Point{X: 1, Y: 1}, reach)

	assert.False(t, reach.Get(sokoban.Point{X: 2, Y: 1}), "crate square must not be reachable")
	assert.False(t, reach.Get(sokoban.Point{X: 3, Y: 1}), "square behind the crate must not be reached")
}
