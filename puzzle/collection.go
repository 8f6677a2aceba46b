package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cbrgm/sokosolve/sokoban"
)

// headerRule is the recognized ".sok" header: two lines of 70 colons.
var headerRule = strings.Repeat(":", 70)

// puzzleLineChars are the characters a line must start with to be
// considered part of a puzzle body rather than commentary/title text.
const puzzleLineChars = "# @$.+*"

type sokState int

const (
	lookingForHeader sokState = iota
	lookingForHeaderEnd
	lookingForPuzzleNumber
	savingPuzzle
)

// ParseCollection reads the ".sok" multi-puzzle format: an optional header
// (two lines of 70 colons), then puzzles introduced by their 1-based
// number on its own line, numbered consecutively from 1. A line belongs to
// the current puzzle iff its first character is in "# @$.+*"; any other
// line ends it. At least one puzzle must be found.
func ParseCollection(text string) ([]*sokoban.Grid, error) {
	var grids []*sokoban.Grid
	var current strings.Builder
	state := lookingForHeader
	nextNumber := 1

	flush := func() error {
		grid, err := Parse(current.String())
		if err != nil {
			return fmt.Errorf("puzzle %d: %w", nextNumber, err)
		}
		grids = append(grids, grid)
		current.Reset()
		return nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		switch state {
		case lookingForHeader:
			if line == headerRule {
				state = lookingForHeaderEnd
			} else if n, err := strconv.Atoi(line); err == nil && n == nextNumber {
				state = savingPuzzle
			}
		case lookingForHeaderEnd:
			if line == headerRule {
				state = lookingForPuzzleNumber
			}
		case lookingForPuzzleNumber:
			if n, err := strconv.Atoi(line); err == nil && n == nextNumber {
				state = savingPuzzle
			}
		case savingPuzzle:
			if len(line) != 0 && strings.ContainsRune(puzzleLineChars, rune(line[0])) {
				current.WriteString(line)
				current.WriteByte('\n')
			} else {
				if err := flush(); err != nil {
					return nil, err
				}
				nextNumber++
				state = lookingForPuzzleNumber
			}
		}
	}
	if state == savingPuzzle && current.Len() > 0 {
		if err := flush(); err != nil {
			return nil, err
		}
	}

	if len(grids) == 0 {
		return nil, fmt.Errorf("puzzle: no puzzles found in collection (expected a header and numbered blocks)")
	}
	return grids, nil
}
