package hashlife

// collectGarbage runs a mark-and-evict pass over the Interner: it marks
// every node reachable from the current GC roots (the owning Universe's
// root, its rewind snapshot if any, and every node cached directly in
// emptyTreeCache/level2Cache — see gcRoots), drops every interned entry
// whose node was not marked, and grows the high-water mark so the post-GC
// load factor stays at or below 0.5 (§4.9 of the design).
//
// An equivalent clear-and-rehash formulation — wipe the table, then
// re-insert every node reachable from root by recursion — is valid too and
// is what the reference implementation this engine was modeled on does.
// This pass marks from the roots instead, then rebuilds the bucket array
// from the marked set alone: every marked node is re-inserted into a fresh
// table, and unmarked entries are not carried over.
func (in *Interner) collectGarbage() {
	var marked []*QuadNode

	var mark func(n *QuadNode)
	mark = func(n *QuadNode) {
		if n == nil || n.level == 0 || n.marked {
			return
		}
		n.marked = true
		marked = append(marked, n)
		mark(n.nw)
		mark(n.ne)
		mark(n.sw)
		mark(n.se)
		mark(n.result)
		mark(n.quickResult)
	}

	if in.roots != nil {
		for _, root := range in.roots() {
			mark(root)
		}
	}

	survivors := make([]*QuadNode, 0, len(marked))
	for _, n := range marked {
		survivors = append(survivors, n)
		n.marked = false
	}

	newSize := nextPowerOfTwo(len(survivors)*2 + 1)
	if newSize < initialBucketCount {
		newSize = initialBucketCount
	}
	in.buckets = make([]*entry, newSize)
	in.count = 0
	for _, n := range survivors {
		key := childKey{n.nw, n.ne, n.sw, n.se}
		in.insert(key, in.hasher.Hash(key), n)
	}

	if in.highWaterMark < in.count*2 {
		in.highWaterMark = in.count * 2
	}
}

func nextPowerOfTwo(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
