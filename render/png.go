// Package render draws a sokoban grid to a PNG frame, for the CLI's
// --render flag and for stepping through a solved push sequence.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/cbrgm/sokosolve/sokoban"
)

// CellSize is the edge length, in pixels, of one grid tile.
const CellSize = 32

var (
	colorWall        = color.RGBA{0x33, 0x33, 0x33, 0xff}
	colorFloor       = color.RGBA{0xee, 0xee, 0xee, 0xff}
	colorGoal        = color.RGBA{0xcf, 0xe8, 0xcf, 0xff}
	colorCrate       = color.RGBA{0xb0, 0x7b, 0x3e, 0xff}
	colorCrateOnGoal = color.RGBA{0x3e, 0x8e, 0x3e, 0xff}
	colorPlayer      = color.RGBA{0x2f, 0x4f, 0xb0, 0xff}
)

func tileColor(t sokoban.Tile) color.RGBA {
	switch t {
	case sokoban.Wall:
		return colorWall
	case sokoban.Goal, sokoban.PlayerOnGoal:
		return colorGoal
	case sokoban.Crate:
		return colorCrate
	case sokoban.CrateOnGoal:
		return colorCrateOnGoal
	case sokoban.Player:
		return colorPlayer
	default:
		return colorFloor
	}
}

// Frame rasterizes grid into an RGBA image, one CellSize square per tile,
// with a one-line caption (e.g. "push 3/7") drawn along the bottom margin
// when caption is non-empty.
func Frame(grid *sokoban.Grid, caption string) *image.RGBA {
	margin := 0
	if caption != "" {
		margin = 16
	}
	width := grid.Width * CellSize
	height := grid.Height*CellSize + margin

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colorFloor}, image.Point{}, draw.Src)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := sokoban.Point{X: x, Y: y}
			cell := image.Rect(x*CellSize, y*CellSize, (x+1)*CellSize, (y+1)*CellSize)
			drawCell(img, cell, tileColor(grid.At(p)))
		}
	}

	if caption != "" {
		drawCaption(img, caption, height-margin+2)
	}
	return img
}

func drawCell(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	inset := rect.Inset(1)
	draw.Draw(img, inset, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func drawCaption(img *image.RGBA, text string, baselineY int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, baselineY+10),
	}
	d.DrawString(text)
}

// WritePNG encodes a single frame of grid, captioned with caption, to w.
func WritePNG(w io.Writer, grid *sokoban.Grid, caption string) error {
	if err := png.Encode(w, Frame(grid, caption)); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
