package hashlife

// DefaultHighWaterMark is the number of distinct interned nodes a fresh
// Universe allows before the first garbage collection.
const DefaultHighWaterMark = 1 << 16

// Universe is the engine's public controller: it holds the current root,
// the generation counter, the rule parameters, the step exponent, and an
// optional rewind snapshot, and exposes the mutation/query/advance
// operations as its methods.
//
// A Universe is not safe for concurrent use: the Interner, the two cache
// slots on every QuadNode, and the root pointer are all unsynchronized
// mutable state (see the concurrency design notes). A caller that needs
// parallelism must confine each Universe to one goroutine.
type Universe struct {
	interner *Interner

	root       *QuadNode
	rewindRoot *QuadNode

	generation float64
	step       int
	rules      RuleSet

	emptyTreeCache []*QuadNode
	level2Cache    []*QuadNode
}

// New creates a Universe at the default rules (Conway Life), step 0, with
// an empty pattern at level 3 (mirroring the reference implementation's
// minimum starting level).
func New() *Universe {
	u := &Universe{
		interner: NewInterner(DefaultHighWaterMark),
		rules:    ConwayRules,
	}
	u.interner.SetRoots(u.gcRoots)
	u.ClearPattern()
	return u
}

// gcRoots reports the nodes that must survive a GC pass: the current root,
// the rewind snapshot if one is saved (§9 "Rewind GC interaction"), and
// every node cached directly in emptyTreeCache/level2Cache. Those two
// caches are returned by Empty/level2FromMask on a cache hit without going
// through Intern, so any of their entries not already reachable from root
// or rewindRoot must be root-marked explicitly here — otherwise a GC pass
// would evict them from the Interner's buckets while the cache slice kept
// handing out the now-uninterned pointer, letting a later Intern() call on
// the same child tuple mint a second, non-canonical node (invariant I3).
func (u *Universe) gcRoots() []*QuadNode {
	roots := []*QuadNode{u.root}
	if u.rewindRoot != nil {
		roots = append(roots, u.rewindRoot)
	}
	for _, n := range u.emptyTreeCache {
		if n != nil {
			roots = append(roots, n)
		}
	}
	for _, n := range u.level2Cache {
		if n != nil {
			roots = append(roots, n)
		}
	}
	return roots
}

// ClearPattern resets the universe to an empty level-3 tree, generation 0,
// with no rewind snapshot, keeping the current rules, step, and interner.
// The empty-tree and level-2 tables are reset too, since every prior node
// is about to become unreachable.
func (u *Universe) ClearPattern() {
	u.emptyTreeCache = nil
	u.level2Cache = make([]*QuadNode, 1<<16)
	u.root = u.Empty(3)
	u.generation = 0
	u.rewindRoot = nil
}

// Interner exposes the underlying node interner, mainly for diagnostics
// (Stats) and tests; ordinary callers never need to reach for it.
func (u *Universe) Interner() *Interner { return u.interner }

// GetGeneration returns the number of elementary generations elapsed.
// Accumulated in a float64 because step sizes grow as 2^step without
// integer bound; this sacrifices exactness above 2^53 generations.
func (u *Universe) GetGeneration() float64 { return u.generation }

// GetPopulation returns the live-cell count of the current root.
func (u *Universe) GetPopulation() Population { return u.root.population }

// GetLevel returns the level of the current root.
func (u *Universe) GetLevel() int { return u.root.level }

// Root returns the current root node, mainly for tests and for hosts that
// want to walk the tree directly (e.g. a custom draw routine).
func (u *Universe) Root() *QuadNode { return u.root }

// GetStep returns the current step exponent k (one tick advances 2^k
// generations).
func (u *Universe) GetStep() int { return u.step }

// SetStep changes the step exponent. If it actually changes, every node's
// memoized `result` slot is invalidated, because that slot's meaning is
// tied to the step it was computed under (invariant I5). The empty-tree and
// level-2 tables are reset too, since they're cheap to rebuild and this
// keeps the invalidation logic in one place.
func (u *Universe) SetStep(step int) {
	if step == u.step {
		return
	}
	u.step = step
	u.uncacheResults(false)
	u.resetTables()
}

// SetRules changes the rule masks. If either actually changes, both
// memoized cache slots (`result` and `quick_result`) are invalidated on
// every node, since both depend on the rule in effect when they were
// computed (invariant I5).
func (u *Universe) SetRules(survive, birth uint16) {
	if survive == u.rules.Survive && birth == u.rules.Birth {
		return
	}
	u.rules = RuleSet{Survive: survive, Birth: birth}
	u.uncacheResults(true)
	u.resetTables()
}

// GetRuleS returns the current survive mask.
func (u *Universe) GetRuleS() uint16 { return u.rules.Survive }

// GetRuleB returns the current birth mask.
func (u *Universe) GetRuleB() uint16 { return u.rules.Birth }

// uncacheResults walks every interned node clearing its `result` slot, and
// its `quick_result` slot too when alsoQuick is set.
func (u *Universe) uncacheResults(alsoQuick bool) {
	u.interner.forEach(func(n *QuadNode) {
		n.result = nil
		if alsoQuick {
			n.quickResult = nil
		}
	})
}

func (u *Universe) resetTables() {
	u.emptyTreeCache = nil
	u.level2Cache = make([]*QuadNode, 1<<16)
}

// SaveRewind captures the current root as a restoration point.
func (u *Universe) SaveRewind() {
	u.rewindRoot = u.root
}

// RestoreRewind replaces the root with the saved snapshot, resets the
// generation counter to 0, and immediately triggers a garbage collection —
// matching the reference implementation's behavior, which otherwise risks
// the snapshot's cached successors dangling across the restore.
func (u *Universe) RestoreRewind() {
	if u.rewindRoot == nil {
		return
	}
	u.root = u.rewindRoot
	u.generation = 0
	u.interner.collectGarbage()
}

// HasRewind reports whether a rewind snapshot is saved.
func (u *Universe) HasRewind() bool {
	return u.rewindRoot != nil
}

// Stats is a diagnostic snapshot of the universe and its interner, grounded
// on the teacher's (*Quadtree).Stats(): node count, cache hit/miss totals,
// and a per-level histogram of currently-interned nodes.
type Stats struct {
	Level          int
	Generation     float64
	Population     Population
	NodeCount      int
	CacheHits      uint64
	CacheMisses    uint64
	LevelHistogram map[int]int
}

// Stats computes the current diagnostic snapshot. It is O(NodeCount), since
// it must walk the interner to build the level histogram; callers that only
// need population/generation/level should use the dedicated getters
// instead.
func (u *Universe) Stats() Stats {
	hist := make(map[int]int)
	u.interner.forEach(func(n *QuadNode) {
		hist[n.level]++
	})
	return Stats{
		Level:          u.root.level,
		Generation:     u.generation,
		Population:     u.root.population,
		NodeCount:      u.interner.Count(),
		CacheHits:      u.interner.hits,
		CacheMisses:    u.interner.misses,
		LevelHistogram: hist,
	}
}
