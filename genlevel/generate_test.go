package genlevel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbrgm/sokosolve/genlevel"
	"github.com/cbrgm/sokosolve/puzzle"
	"github.com/cbrgm/sokosolve/sokoban"
)

func TestGenerateProducesParseableCollection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	text, err := genlevel.Generate(rng, genlevel.Options{
		Name: "test", Width: 8, Height: 8, Batch: 3, Goals: 2, Walls: 3,
	})
	require.NoError(t, err)

	grids, err := puzzle.ParseCollection(text)
	require.NoError(t, err)
	require.Len(t, grids, 3)

	for _, grid := range grids {
		players, goals, crates := 0, 0, 0
		for _, tile := range grid.Tiles {
			switch tile {
			case sokoban.Player, sokoban.PlayerOnGoal:
				players++
			}
			switch tile {
			case sokoban.Goal, sokoban.PlayerOnGoal, sokoban.CrateOnGoal:
				goals++
			}
			switch tile {
			case sokoban.Crate, sokoban.CrateOnGoal:
				crates++
			}
		}
		assert.Equal(t, 1, players)
		assert.Equal(t, 2, goals)
		assert.Equal(t, 2, crates)
	}
}

func TestGenerateRejectsTooManyGoalsAndWalls(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := genlevel.Generate(rng, genlevel.Options{
		Name: "test", Width: 4, Height: 4, Batch: 1, Goals: 10, Walls: 10,
	})
	assert.Error(t, err)
}

func TestGenerateRejectsNameWithSlash(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := genlevel.Generate(rng, genlevel.Options{
		Name: "a/b", Width: 8, Height: 8, Batch: 1, Goals: 1, Walls: 1,
	})
	assert.Error(t, err)
}
