/*Package hashlife implements an infinite-grid, two-state outer-totalistic
cellular-automaton engine (Conway's Game of Life and its variants) using the
hashlife algorithm: a canonicalized quadtree representation whose successor
generations are memoized per node, giving exponential speedups on patterns
with structural regularity.

	NW|NE
	-----
	SW|SE

A QuadNode of level l covers a square region with side length 2^l. A node
with level 0 is a leaf, holding a single cell. Permitted coordinates for a
tree of level l are x and y in the range [-2^(l-1), 2^(l-1)-1].

QuadNodes are immutable except for two cache slots (the memoized successor
and "quick" successor). Every distinct (nw, ne, sw, se) child tuple maps to
exactly one QuadNode value via the Interner: two quadnodes are structurally
equal if and only if their addresses are equal.

Only two leaf values ever exist: one dead (population 0), one alive
(population 1).

The algorithm is the one described in Gosper's original hashlife technique;
see https://www.drdobbs.com/jvm/an-algorithm-for-compressing-space-and-t/184406478
for an accessible treatment. Only space compression (canonicalization) and
successor memoization are implemented; there is no attempt at arbitrary time
compression beyond the step/quick duality of Universe.StepBySteps and
Universe.Quick.
*/
package hashlife

// Dim is the coordinate datatype used by SetCell, GetCell, GetRootBounds and
// Draw. A float64 is used (rather than an integer type) so the engine can
// keep computing offsets by 2^(level-2) without integer overflow once the
// universe has expanded past a few hundred levels; callers nonetheless only
// ever observe integral values for live cells.
type Dim = float64

// Population counts live cells under a node. int64 is ample: a fully live
// universe at level 31 already holds 2^62 cells, past any pattern this
// engine will practically reach.
type Population = int64
