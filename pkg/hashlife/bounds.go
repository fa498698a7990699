package hashlife

import "math"

// Boundary-traversal find-masks: which of the four extremes a subtree still
// needs to contribute to.
const (
	maskLeft   = 1
	maskTop    = 2
	maskRight  = 4
	maskBottom = 8
	maskAll    = maskLeft | maskTop | maskRight | maskBottom
)

// getBoundary is a DFS over node that tightens boundary = [left, right,
// top, bottom] to the minimal axis-aligned box containing every live cell,
// pruning a subtree entirely once its extent already lies inside the
// current best rectangle (findMask tracks which edges of boundary this
// subtree could still move) or its population is 0.
func (u *Universe) getBoundary(node *QuadNode, left, top Dim, findMask int, boundary []Dim) {
	if node.population == 0 || findMask == 0 {
		return
	}

	if node.level == 0 {
		if left < boundary[0] {
			boundary[0] = left
		}
		if left > boundary[1] {
			boundary[1] = left
		}
		if top < boundary[2] {
			boundary[2] = top
		}
		if top > boundary[3] {
			boundary[3] = top
		}
		return
	}

	offset := pow2(node.level - 1)

	if left >= boundary[0] && left+offset*2 <= boundary[1] &&
		top >= boundary[2] && top+offset*2 <= boundary[3] {
		// this square already lies inside the found boundary
		return
	}

	findNW, findNE, findSW, findSE := findMask, findMask, findMask, findMask

	if node.nw.population != 0 {
		findSW &^= maskTop
		findNE &^= maskLeft
		findSE &^= maskTop | maskLeft
	}
	if node.sw.population != 0 {
		findSE &^= maskLeft
		findNW &^= maskBottom
		findNE &^= maskBottom | maskLeft
	}
	if node.ne.population != 0 {
		findNW &^= maskRight
		findSE &^= maskTop
		findSW &^= maskTop | maskRight
	}
	if node.se.population != 0 {
		findSW &^= maskRight
		findNE &^= maskBottom
		findNW &^= maskBottom | maskRight
	}

	u.getBoundary(node.nw, left, top, findNW, boundary)
	u.getBoundary(node.sw, left, top+offset, findSW, boundary)
	u.getBoundary(node.ne, left+offset, top, findNE, boundary)
	u.getBoundary(node.se, left+offset, top+offset, findSE, boundary)
}

// GetRootBounds returns the minimal axis-aligned box [left, right, top,
// bottom] containing every live cell (P6), or [0, 0, 0, 0] for an empty
// universe.
func (u *Universe) GetRootBounds() [4]Dim {
	if u.root.population == 0 {
		return [4]Dim{0, 0, 0, 0}
	}

	boundary := []Dim{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	offset := pow2(u.root.level - 1)

	u.getBoundary(u.root, -offset, -offset, maskAll, boundary)

	return [4]Dim{boundary[0], boundary[1], boundary[2], boundary[3]}
}
