package hashlife

import (
	"fmt"

	"github.com/dolthub/maphash"
)

// entry is one slot of an Interner bucket's collision chain.
type entry struct {
	key  childKey
	node *QuadNode
	next *entry
}

// Interner is the hash table that gives every distinct (nw, ne, sw, se)
// child tuple a single canonical *QuadNode (invariant I3). It is keyed by
// child identity, not child structure — because children are themselves
// interned, identity alone is enough.
//
// Hashing uses a fast, low-quality mix of the four child pointers
// (github.com/dolthub/maphash, wrapping the runtime's maphash so identical
// keys still hash identically across a GC cycle); this is adequate because
// pointer values are already well distributed allocator output and do not
// need a cryptographic or even a particularly careful hash.
//
// An Interner grows on demand; when it reaches its high-water mark,
// Intern triggers a mark-and-evict garbage collection pass (see gc.go)
// before retrying the insert.
type Interner struct {
	hasher  maphash.Hasher[childKey]
	buckets []*entry
	count   int

	highWaterMark int
	hits, misses  uint64

	// roots supplies the GC mark roots (the owning Universe's current
	// root, its rewind snapshot if set, and its empty-tree and level-2
	// tables). It is wired up once by New; a nil roots func makes Intern
	// grow unboundedly
	// instead of collecting, which is useful for package-internal tests
	// that construct bare Interners.
	roots func() []*QuadNode
}

const initialBucketCount = 1 << 10 // 1024, matches the teacher's modest default map size

// NewInterner creates an empty Interner whose GC is triggered once it holds
// highWaterMark distinct nodes.
func NewInterner(highWaterMark int) *Interner {
	return &Interner{
		hasher:        maphash.NewHasher[childKey](),
		buckets:       make([]*entry, initialBucketCount),
		highWaterMark: highWaterMark,
	}
}

// SetRoots wires the Interner to the Universe that owns it so GC can find
// live roots. Called once, by New.
func (in *Interner) SetRoots(roots func() []*QuadNode) {
	in.roots = roots
}

// Count returns the number of distinct canonical nodes currently interned.
func (in *Interner) Count() int { return in.count }

// LoadFactor is count / bucket-count, used for diagnostics (the CLI's stats
// command) and by growIfNeeded to decide when to double the bucket array.
func (in *Interner) LoadFactor() float64 {
	return float64(in.count) / float64(len(in.buckets))
}

// HitRate reports the fraction of Intern calls that found an existing
// node, a simple cache-effectiveness diagnostic reported by the CLI's stats
// command.
func (in *Interner) HitRate() float64 {
	total := in.hits + in.misses
	if total == 0 {
		return 0
	}
	return float64(in.hits) / float64(total)
}

func (in *Interner) bucketIndex(h uint64) uint64 {
	return h & uint64(len(in.buckets)-1)
}

// Intern returns the canonical node with exactly these four children,
// constructing one iff no such node already exists. Every caller that
// passes the same four child identities is guaranteed to get back the same
// *QuadNode (invariant I3); children must share a level (invariant I1),
// checked here as a programmer-error panic.
func (in *Interner) Intern(nw, ne, sw, se *QuadNode) *QuadNode {
	if nw.level != ne.level || nw.level != sw.level || nw.level != se.level {
		panic(fmt.Sprintf("hashlife: mismatched child levels %d/%d/%d/%d", nw.level, ne.level, sw.level, se.level))
	}

	key := childKey{nw, ne, sw, se}
	h := in.hasher.Hash(key)
	idx := in.bucketIndex(h)

	for e := in.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			in.hits++
			return e.node
		}
	}
	in.misses++

	if in.count >= in.highWaterMark && in.roots != nil {
		in.collectGarbage()
		return in.Intern(nw, ne, sw, se)
	}

	node := &QuadNode{
		nw:         nw,
		ne:         ne,
		sw:         sw,
		se:         se,
		level:      nw.level + 1,
		population: nw.population + ne.population + sw.population + se.population,
	}
	in.insert(key, h, node)
	in.growIfNeeded()
	return node
}

// insert adds an already-built node under the given precomputed key/hash,
// used by both Intern and the GC sweep's rehashing pass.
func (in *Interner) insert(key childKey, h uint64, node *QuadNode) {
	idx := in.bucketIndex(h)
	in.buckets[idx] = &entry{key: key, node: node, next: in.buckets[idx]}
	in.count++
}

// growIfNeeded doubles the bucket array once the load factor crosses 0.75,
// keeping collision chains short without resizing on every insert.
func (in *Interner) growIfNeeded() {
	if in.LoadFactor() < 0.75 {
		return
	}
	in.resize(len(in.buckets) * 2)
}

func (in *Interner) resize(newSize int) {
	old := in.buckets
	in.buckets = make([]*entry, newSize)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			idx := in.bucketIndex(in.hasher.Hash(e.key))
			e.next = in.buckets[idx]
			in.buckets[idx] = e
			e = next
		}
	}
}

// forEach visits every interned node exactly once; used by Stats and by
// uncacheResults.
func (in *Interner) forEach(visit func(*QuadNode)) {
	for _, head := range in.buckets {
		for e := head; e != nil; e = e.next {
			visit(e.node)
		}
	}
}
