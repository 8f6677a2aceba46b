package sokoban

// neighborhood3x3 returns the nine tiles around (and including) p, row
// major, index 4 being p itself:
//
//	0 1 2
//	3 4 5
//	6 7 8
func neighborhood3x3(grid *Grid, p Point) [9]Tile {
	ul := Point{p.X - 1, p.Y - 1}
	ur := Point{p.X + 1, p.Y - 1}
	dl := Point{p.X - 1, p.Y + 1}
	dr := Point{p.X + 1, p.Y + 1}
	return [9]Tile{
		grid.At(ul), grid.At(Point{p.X, p.Y - 1}), grid.At(ur),
		grid.At(Point{p.X - 1, p.Y}), grid.At(p), grid.At(Point{p.X + 1, p.Y}),
		grid.At(dl), grid.At(Point{p.X, p.Y + 1}), grid.At(dr),
	}
}

// IsFrozen reports whether the crate just pushed to moved is locally
// freeze-deadlocked: pinned against walls or other crates so it can never
// move again. Only the immediate 3x3 neighborhood is examined; false does
// not rule out a deadlock involving crates farther away.
func IsFrozen(grid *Grid, moved Point) bool {
	s := neighborhood3x3(grid, moved)
	switch s[4] {
	case Crate:
		corners := [4][2]int{{1, 3}, {1, 5}, {3, 7}, {5, 7}}
		for _, c := range corners {
			if s[c[0]] == Wall && s[c[1]] == Wall {
				return true
			}
		}
		triples := [4][3]int{{0, 1, 3}, {1, 2, 5}, {3, 6, 7}, {5, 7, 8}}
		for _, tr := range triples {
			if s[tr[0]].Freezable() && s[tr[1]].Freezable() && s[tr[2]].Freezable() {
				return true
			}
		}
		return false
	case CrateOnGoal:
		triples := [4][3]int{{0, 1, 3}, {1, 2, 5}, {3, 6, 7}, {5, 7, 8}}
		for _, tr := range triples {
			if !s[tr[0]].Freezable() || !s[tr[1]].Freezable() || !s[tr[2]].Freezable() {
				continue
			}
			if s[tr[0]].PureCrate() || s[tr[1]].PureCrate() || s[tr[2]].PureCrate() {
				return true
			}
		}
		return false
	default:
		return false
	}
}
