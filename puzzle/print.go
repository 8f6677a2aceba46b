package puzzle

import (
	"fmt"
	"io"

	"github.com/cbrgm/sokosolve/sokoban"
)

// Print writes grid in the original row/column-ruler style: a header row
// of column indices (ones digit only, every ten columns), then each row
// prefixed with its index.
func Print(w io.Writer, grid *sokoban.Grid) {
	fmt.Fprint(w, "  ")
	for i := 0; i < grid.Width; i++ {
		fmt.Fprintf(w, "%d", i%10)
	}
	fmt.Fprintln(w)
	for y := 0; y < grid.Height; y++ {
		fmt.Fprintf(w, "%d ", y)
		for x := 0; x < grid.Width; x++ {
			fmt.Fprint(w, grid.At(sokoban.Point{X: x, Y: y}))
		}
		fmt.Fprintln(w)
	}
}
