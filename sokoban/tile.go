// Package sokoban implements the push-optimal solver: grid geometry, flood
// fill, the A* mover, deadlock detection, heuristics and the IDA* push
// engine.
package sokoban

// Tile is the content of one grid square.
type Tile byte

const (
	Wall Tile = iota
	Floor
	Goal
	Player
	PlayerOnGoal
	Crate
	CrateOnGoal
)

// Freezable reports whether this tile counts as an obstacle for the
// freeze-deadlock test: a wall or a crate (on or off a goal) can pin a
// neighboring crate in place.
func (t Tile) Freezable() bool {
	switch t {
	case Wall, Crate, CrateOnGoal:
		return true
	default:
		return false
	}
}

// PureCrate reports whether this tile is a crate not sitting on a goal.
func (t Tile) PureCrate() bool {
	return t == Crate
}

func (t Tile) String() string {
	switch t {
	case Wall:
		return "#"
	case Floor:
		return " "
	case Goal:
		return "."
	case Player:
		return "@"
	case PlayerOnGoal:
		return "+"
	case Crate:
		return "$"
	case CrateOnGoal:
		return "*"
	default:
		return "?"
	}
}
