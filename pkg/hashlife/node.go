package hashlife

// QuadNode is one node of the canonical quadtree: an immutable record of
// four equal-level children plus the two fields derivable from them
// (level, population), and two mutable memoization slots that are filled in
// by the successor engine as it is asked about this node.
//
// QuadNodes are never constructed directly outside of this package; the
// only way to obtain one is through (*Interner).Intern, which guarantees
// that structurally-equal child tuples always yield the same *QuadNode
// (invariant I3 in the design notes).
type QuadNode struct {
	nw, ne, sw, se *QuadNode
	level          int
	population     Population

	// result is the memoized center of this node advanced 2^step
	// generations, valid only for the Universe's current step and rules.
	result *QuadNode
	// quickResult is the memoized center of this node advanced
	// 2^(level-2) generations (the maximum for this node), valid only
	// for the Universe's current rules.
	quickResult *QuadNode

	// marked is scratch state for (*Interner).collectGarbage; it is
	// always false outside of a GC pass.
	marked bool
}

// leaf values: exactly two exist for the lifetime of the process, dead
// (population 0) and alive (population 1). Leaves carry no children —
// unlike some hashlife implementations, which thread a self-referential
// sentinel through a leaf's child slots to keep traversal code uniform,
// every traversal here checks Level()==0 before following a child, so the
// nil is never dereferenced. See the design notes on why a cyclic ownership
// edge was rejected.
var (
	deadLeaf = &QuadNode{population: 0}
	liveLeaf = &QuadNode{population: 1}
)

// leafFor returns the canonical leaf for the given boolean cell state.
func leafFor(alive bool) *QuadNode {
	if alive {
		return liveLeaf
	}
	return deadLeaf
}

// Level returns the node's level: 0 for a leaf, otherwise one more than its
// children's (equal) level.
func (n *QuadNode) Level() int { return n.level }

// Population returns the count of live cells under this node.
func (n *QuadNode) Population() Population { return n.population }

// IsLeaf reports whether n is one of the two level-0 singletons.
func (n *QuadNode) IsLeaf() bool { return n.level == 0 }

// Alive reports a leaf's cell state. Calling Alive on an internal node is a
// programmer error.
func (n *QuadNode) Alive() bool {
	if n.level != 0 {
		panic("hashlife: Alive called on non-leaf node")
	}
	return n.population != 0
}

// NW, NE, SW, SE expose a node's children. Calling them on a leaf is a
// programmer error, since leaves have none.
func (n *QuadNode) NW() *QuadNode { n.requireInternal(); return n.nw }
func (n *QuadNode) NE() *QuadNode { n.requireInternal(); return n.ne }
func (n *QuadNode) SW() *QuadNode { n.requireInternal(); return n.sw }
func (n *QuadNode) SE() *QuadNode { n.requireInternal(); return n.se }

func (n *QuadNode) requireInternal() {
	if n.level == 0 {
		panic("hashlife: child access on leaf node")
	}
}

// childKey is the Interner's map key: the identity-tuple of four children.
// Because children are themselves interned, identity equality on this
//4-tuple is equivalent to full structural equality of the node it would
// construct (by induction on level) — this is what makes canonicalization
// by child identity alone sufficient (invariant I3).
type childKey struct {
	nw, ne, sw, se *QuadNode
}
