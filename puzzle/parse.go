// Package puzzle parses and prints Sokoban puzzle text, both the
// single-puzzle format and the multi-puzzle ".sok" collection format.
package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cbrgm/sokosolve/sokoban"
)

// Sentinel errors returned by Parse, wrapped with context via %w.
var (
	ErrNoNewline     = errors.New("puzzle: must contain at least one newline")
	ErrEmptyFirstRow = errors.New("puzzle: first line cannot be empty")
	ErrBadChar       = errors.New("puzzle: invalid character")
	ErrPlayerCount   = errors.New("puzzle: must contain exactly one player tile")
	ErrCrateGoalMismatch = errors.New("puzzle: crate count must equal goal count")
)

// Parse reads the single-puzzle text format: one puzzle, '#'/' '/'.'/'@'/
// '+'/'$'/'*' characters, '\n' row terminators, '\r' ignored. Rows may be
// ragged; each is padded with Floor to the width of the longest row.
func Parse(text string) (*sokoban.Grid, error) {
	if !strings.Contains(text, "\n") {
		return nil, ErrNoNewline
	}

	lines := strings.Split(text, "\n")
	// Parse dropped a trailing empty line produced by a final '\n'.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyFirstRow
	}

	width := 0
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) > width {
			width = len(line)
		}
	}

	grid := sokoban.NewGrid(width, len(lines))
	playerCount, goalCount, crateCount := 0, 0, 0

	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		for x := 0; x < width; x++ {
			var ch byte = ' '
			if x < len(line) {
				ch = line[x]
			}
			p := sokoban.Point{X: x, Y: y}
			switch ch {
			case '#':
				grid.Set(p, sokoban.Wall)
			case ' ':
				grid.Set(p, sokoban.Floor)
			case '.':
				grid.Set(p, sokoban.Goal)
				goalCount++
			case '@':
				grid.Set(p, sokoban.Player)
				playerCount++
			case '+':
				grid.Set(p, sokoban.PlayerOnGoal)
				playerCount++
				goalCount++
			case '$':
				grid.Set(p, sokoban.Crate)
				crateCount++
			case '*':
				grid.Set(p, sokoban.CrateOnGoal)
				goalCount++
				crateCount++
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadChar, ch, y, x)
			}
		}
	}

	if playerCount != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrPlayerCount, playerCount)
	}
	if crateCount != goalCount {
		return nil, fmt.Errorf("%w: %d crates, %d goals", ErrCrateGoalMismatch, crateCount, goalCount)
	}
	return grid, nil
}
