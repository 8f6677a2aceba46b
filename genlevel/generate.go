// Package genlevel generates random ".sok" puzzle collections, placing
// crates only on squares the simple-deadlock map marks safe.
package genlevel

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/cbrgm/sokosolve/sokoban"
)

// Options configures Generate, mirroring the puzzle-gen command surface:
// name <W> <H> <batch> <goals> <walls>.
type Options struct {
	Name    string
	Width   int
	Height  int
	Batch   int
	Goals   int
	Walls   int
}

// maxRetriesPerPuzzle bounds how many times Generate resamples wall/goal
// placement for a single puzzle before giving up, in case an unlucky wall
// layout leaves too few safe squares for the requested crate count.
const maxRetriesPerPuzzle = 200

// Validate checks Options against the external-interface constraints.
func (o Options) Validate() error {
	if o.Width < 4 {
		return errors.New("genlevel: width must be >= 4")
	}
	if o.Height < 4 {
		return errors.New("genlevel: height must be >= 4")
	}
	if o.Batch < 1 {
		return errors.New("genlevel: batch must be >= 1")
	}
	if strings.Contains(o.Name, "/") {
		return errors.New("genlevel: name must not contain '/'")
	}
	perimeter := 2*o.Width + 2*o.Height - 4
	if o.Goals+o.Walls > (o.Width*o.Height-perimeter)/2 {
		return errors.New("genlevel: goals+walls exceeds (W*H-perimeter)/2")
	}
	return nil
}

// Generate produces the full text of a ".sok" collection: a header block
// followed by opts.Batch numbered puzzles, each with a walled perimeter,
// exactly one player tile, opts.Goals goals, opts.Goals crates placed only
// on simple-deadlock-safe squares, and opts.Walls interior walls.
func Generate(rng *rand.Rand, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Date of Last Change:\n\nSet: %s\nCopyright: sokosolve\nEmail:\nHomepage:\n\n", opts.Name)
	out.WriteString("This sokoban puzzle set was automatically generated\n\n")

	for i := 1; i <= opts.Batch; i++ {
		grid, err := generateOne(rng, opts)
		if err != nil {
			return "", fmt.Errorf("puzzle %d: %w", i, err)
		}
		fmt.Fprintf(&out, "%d\n%s\n\n", i, strings.TrimRight(grid.String(), "\n"))
	}
	return out.String(), nil
}

func generateOne(rng *rand.Rand, opts Options) (*sokoban.Grid, error) {
	w, h := opts.Width, opts.Height
	inner := (w - 2) * (h - 2)

	for attempt := 0; attempt < maxRetriesPerPuzzle; attempt++ {
		grid := sokoban.NewGrid(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if x == 0 || x == w-1 || y == 0 || y == h-1 {
					grid.Set(sokoban.Point{X: x, Y: y}, sokoban.Wall)
				}
			}
		}

		randomInnerPoint := func() sokoban.Point {
			idx := rng.Intn(inner)
			return sokoban.Point{X: idx%(w-2) + 1, Y: idx/(w-2) + 1}
		}

		var goals []sokoban.Point
		for len(goals) < opts.Goals {
			p := randomInnerPoint()
			if grid.At(p) == sokoban.Floor {
				grid.Set(p, sokoban.Goal)
				goals = append(goals, p)
			}
		}

		wallsAdded := 0
		for wallsAdded < opts.Walls {
			p := randomInnerPoint()
			if grid.At(p) == sokoban.Floor {
				grid.Set(p, sokoban.Wall)
				wallsAdded++
			}
		}

		safe := sokoban.SimpleDeadlockMap(sokoban.WallsOnly(grid), goals)

		crateSpaces := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := sokoban.Point{X: x, Y: y}
				if grid.At(p) == sokoban.Floor && safe.Get(p) {
					crateSpaces++
				}
			}
		}
		if crateSpaces < opts.Goals {
			continue
		}

		cratesAdded := 0
		for cratesAdded < opts.Goals {
			p := randomInnerPoint()
			if grid.At(p) == sokoban.Floor && safe.Get(p) {
				grid.Set(p, sokoban.Crate)
				cratesAdded++
			}
		}

		for {
			p := randomInnerPoint()
			switch grid.At(p) {
			case sokoban.Floor:
				grid.Set(p, sokoban.Player)
			case sokoban.Goal:
				grid.Set(p, sokoban.PlayerOnGoal)
			default:
				continue
			}
			break
		}

		return grid, nil
	}
	return nil, fmt.Errorf("genlevel: could not place %d crates on safe squares after %d attempts", opts.Goals, maxRetriesPerPuzzle)
}
