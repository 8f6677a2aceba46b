package sokoban

import "hash/fnv"

// Node is one state of the IDA* push search: the push that produced it, a
// full grid snapshot, the crate positions (same order as the root's
// enumeration, one slot mutated per push), the player square the crate was
// pushed from, the accumulated push count g, the heuristic estimate h, and
// a 64-bit fingerprint of (crates, player) used for cheap path-cycle
// detection.
type Node struct {
	Action      Action
	Grid        *Grid
	Crates      []Point
	Player      Point
	G           int
	H           int
	Fingerprint uint64
}

// F is the node's total estimated cost, g+h.
func (n *Node) F() int {
	return n.G + n.H
}

func fingerprint(crates []Point, player Point) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	write := func(v int) {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		buf[4] = byte(v >> 32)
		buf[5] = byte(v >> 40)
		buf[6] = byte(v >> 48)
		buf[7] = byte(v >> 56)
		h.Write(buf[:])
	}
	for _, c := range crates {
		write(c.X)
		write(c.Y)
	}
	write(player.X)
	write(player.Y)
	return h.Sum64()
}

// NewRootNode builds the root node of a search: no producing action, g=h=0
// (h is filled in by the caller once the heuristic is known).
func NewRootNode(grid *Grid, crates []Point, player Point) *Node {
	sorted := append([]Point(nil), crates...)
	return &Node{
		Action:      NoMove,
		Grid:        grid,
		Crates:      sorted,
		Player:      player,
		Fingerprint: fingerprint(sorted, player),
	}
}

// NewChildNode builds the node produced from parent by the push action,
// given the post-push grid, the updated crate list and the player square
// after the push.
func NewChildNode(parent *Node, action Action, grid *Grid, crates []Point, player Point) *Node {
	return &Node{
		Action:      action,
		Grid:        grid,
		Crates:      crates,
		Player:      player,
		G:           parent.G + 1,
		Fingerprint: fingerprint(crates, player),
	}
}
