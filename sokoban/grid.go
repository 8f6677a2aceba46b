package sokoban

// Grid is a rectangular, row-major buffer of tiles. The outer ring must be
// Wall in every puzzle the loader accepts, so interior neighbor access never
// needs a bounds check.
type Grid struct {
	Width, Height int
	Tiles         []Tile
}

// NewGrid returns a width×height grid of Floor tiles.
func NewGrid(width, height int) *Grid {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Floor
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

func (g *Grid) index(p Point) int {
	return p.Y*g.Width + p.X
}

// At returns the tile at p.
func (g *Grid) At(p Point) Tile {
	return g.Tiles[g.index(p)]
}

// Set writes the tile at p.
func (g *Grid) Set(p Point, t Tile) {
	g.Tiles[g.index(p)] = t
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return &Grid{Width: g.Width, Height: g.Height, Tiles: tiles}
}

// Equal reports whether two grids have identical shape and content.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i, t := range g.Tiles {
		if other.Tiles[i] != t {
			return false
		}
	}
	return true
}

// ApplyPush mutates g in place to reflect pushing the crate at crateFrom in
// the direction of action, where priorGrid/priorPlayer describe the state
// before the push. The three writes are: clear the player's previous
// square, occupy the crate's origin square with the player, and occupy the
// crate's destination square (crateFrom.Shift(action)) with the crate.
func (g *Grid) ApplyPush(action Action, crateFrom, priorPlayer Point, priorGrid *Grid) {
	crateTo := crateFrom.Shift(action)

	switch priorGrid.At(priorPlayer) {
	case Player:
		g.Set(priorPlayer, Floor)
	case PlayerOnGoal:
		g.Set(priorPlayer, Goal)
	}

	switch g.At(crateFrom) {
	case Crate:
		g.Set(crateFrom, Player)
	case CrateOnGoal:
		g.Set(crateFrom, PlayerOnGoal)
	}

	switch g.At(crateTo) {
	case Goal, PlayerOnGoal:
		g.Set(crateTo, CrateOnGoal)
	default:
		g.Set(crateTo, Crate)
	}
}

// UndoPush is the exact inverse of ApplyPush: playerAfter is the player
// position after the push it undoes (i.e. the crate's prior origin square).
func (g *Grid) UndoPush(action Action, playerAfter Point) {
	emptyPos := playerAfter.Shift(action.Inverse())
	crateFrom := playerAfter.Shift(action)

	switch g.At(emptyPos) {
	case Floor:
		g.Set(emptyPos, Player)
	case Goal:
		g.Set(emptyPos, PlayerOnGoal)
	}

	switch g.At(playerAfter) {
	case Player:
		g.Set(playerAfter, Crate)
	case PlayerOnGoal:
		g.Set(playerAfter, CrateOnGoal)
	}

	switch g.At(crateFrom) {
	case Crate:
		g.Set(crateFrom, Floor)
	case CrateOnGoal:
		g.Set(crateFrom, Goal)
	}
}

// String renders the grid using the puzzle-file character set, one
// newline-terminated line per row.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.Width+1)*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			buf = append(buf, tileChar(g.Tiles[y*g.Width+x]))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func tileChar(t Tile) byte {
	switch t {
	case Wall:
		return '#'
	case Floor:
		return ' '
	case Goal:
		return '.'
	case Player:
		return '@'
	case PlayerOnGoal:
		return '+'
	case Crate:
		return '$'
	case CrateOnGoal:
		return '*'
	default:
		return '?'
	}
}
