package render_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbrgm/sokosolve/puzzle"
	"github.com/cbrgm/sokosolve/render"
)

func TestFrameSizeMatchesGrid(t *testing.T) {
	grid, err := puzzle.Parse("#####\n#@$.#\n#####\n")
	require.NoError(t, err)

	img := render.Frame(grid, "")
	assert.Equal(t, grid.Width*render.CellSize, img.Bounds().Dx())
	assert.Equal(t, grid.Height*render.CellSize, img.Bounds().Dy())
}

func TestFrameReservesCaptionMargin(t *testing.T) {
	grid, err := puzzle.Parse("#####\n#@$.#\n#####\n")
	require.NoError(t, err)

	withCaption := render.Frame(grid, "push 1/1")
	withoutCaption := render.Frame(grid, "")
	assert.Greater(t, withCaption.Bounds().Dy(), withoutCaption.Bounds().Dy())
}

func TestWritePNGProducesDecodableImage(t *testing.T) {
	grid, err := puzzle.Parse("#####\n#@$.#\n#####\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, grid, "push 1/1"))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, grid.Width*render.CellSize, img.Bounds().Dx())
}
