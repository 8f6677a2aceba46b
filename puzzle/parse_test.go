package puzzle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbrgm/sokosolve/puzzle"
	"github.com/cbrgm/sokosolve/sokoban"
)

func TestParseTrivialPuzzle(t *testing.T) {
	grid, err := puzzle.Parse("#####\n#@$.#\n#####\n")
	require.NoError(t, err)
	assert.Equal(t, 5, grid.Width)
	assert.Equal(t, 3, grid.Height)
	assert.Equal(t, sokoban.Player, grid.At(sokoban.Point{X: 1, Y: 1}))
	assert.Equal(t, sokoban.Crate, grid.At(sokoban.Point{X: 2, Y: 1}))
	assert.Equal(t, sokoban.Goal, grid.At(sokoban.Point{X: 3, Y: 1}))
}

func TestParsePadsRaggedRows(t *testing.T) {
	grid, err := puzzle.Parse("#####\n#@$.#\n#\n#####\n")
	require.NoError(t, err)
	assert.Equal(t, sokoban.Floor, grid.At(sokoban.Point{X: 2, Y: 2}))
}

func TestParseRejectsNoNewline(t *testing.T) {
	_, err := puzzle.Parse("#####")
	assert.ErrorIs(t, err, puzzle.ErrNoNewline)
}

func TestParseRejectsWrongPlayerCount(t *testing.T) {
	_, err := puzzle.Parse("#####\n#@@.#\n#####\n")
	assert.ErrorIs(t, err, puzzle.ErrPlayerCount)
}

func TestParseRejectsCrateGoalMismatch(t *testing.T) {
	_, err := puzzle.Parse("#####\n#@$$#\n#####\n")
	assert.ErrorIs(t, err, puzzle.ErrCrateGoalMismatch)
}

func TestParseRejectsBadChar(t *testing.T) {
	_, err := puzzle.Parse("#####\n#@$?#\n#####\n")
	assert.ErrorIs(t, err, puzzle.ErrBadChar)
}

func TestParseCollection(t *testing.T) {
	header := strings.Repeat(":", 70)
	text := header + "\n" + header + "\n1\n#####\n#@$.#\n#####\n\n2\n#####\n#.$@#\n#####\n"
	grids, err := puzzle.ParseCollection(text)
	require.NoError(t, err)
	require.Len(t, grids, 2)
	assert.Equal(t, sokoban.Player, grids[0].At(sokoban.Point{X: 1, Y: 1}))
	assert.Equal(t, sokoban.Player, grids[1].At(sokoban.Point{X: 3, Y: 1}))
}

func TestParseCollectionRequiresAtLeastOnePuzzle(t *testing.T) {
	_, err := puzzle.ParseCollection("just some text\nwith no header\n")
	assert.Error(t, err)
}
