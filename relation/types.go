package relation

// Slope is the three-point lattice {Undefined, Stay, Downward} ordered
// Undefined < Stay < Downward. The zero value is Undefined, so an absent
// table entry naturally reads as Undefined without an explicit sentinel.
type Slope int

const (
	// Undefined means the relation says nothing about a given pair of
	// heights. Never stored explicitly in the slope table.
	Undefined Slope = iota
	// Stay means the height does not strictly decrease across the edge.
	Stay
	// Downward means the height strictly decreases across the edge.
	Downward
)

// String renders a Slope for debugging and error messages.
func (s Slope) String() string {
	switch s {
	case Undefined:
		return "Undefined"
	case Stay:
		return "Stay"
	case Downward:
		return "Downward"
	default:
		return "Slope(?)"
	}
}

// Join returns the least upper bound of two slopes: the max under the total
// order Undefined < Stay < Downward. Used by Add to enforce that a Downward
// declaration is never weakened back to Stay.
func Join(a, b Slope) Slope {
	if a > b {
		return a
	}
	return b
}

// pair is a dense (row, col) key into the sparse slope table.
type pair struct {
	i, j int
}

// SlopedRelation is a finite partial function (i,j) -> {Stay, Downward} over
// a declared m x n grid of height indices. The zero value is not usable;
// construct via New or NewIdentity.
//
// SlopedRelation is treated as immutable once handed to package closure:
// Compose and TransitiveClosure always return a new value. Add is the only
// mutator and is meant to be used only while a relation is still being
// populated by package hgraph's builder, before any check has started.
type SlopedRelation struct {
	m, n   int
	table  map[pair]Slope
	rowIdx map[int][]int // lazily built: source height -> dest heights with a defined slope (unordered)
	colIdx map[int][]int // lazily built: dest height -> source heights with a defined slope (unordered)

	hashValid bool
	hashCache uint64
}

// New returns an empty SlopedRelation of the declared m (source heights) by
// n (destination heights) dimensions.
//
// Complexity: O(1).
func New(m, n int) *SlopedRelation {
	return &SlopedRelation{
		m:     m,
		n:     n,
		table: make(map[pair]Slope),
	}
}

// NewIdentity returns the w x w identity relation: Add(i,i,Stay) for every
// i in [0,w). Used by closure's FWK strategy to seed asteration with the
// empty-path relation.
//
// Complexity: O(w).
func NewIdentity(w int) *SlopedRelation {
	r := New(w, w)
	for i := 0; i < w; i++ {
		r.table[pair{i, i}] = Stay
	}
	return r
}

// Dims returns the declared (sourceHeights, destHeights) dimensions.
func (r *SlopedRelation) Dims() (int, int) { return r.m, r.n }

// Size returns the number of defined (non-Undefined) entries.
func (r *SlopedRelation) Size() int { return len(r.table) }

// Add sets the slope at (i,j) to Join(current, s), so a Downward entry is
// never weakened back to Stay by a later Add(i,j,Stay). Panics if s is
// Undefined (Undefined is never stored explicitly) or (i,j) is out of range,
// mirroring package hgraph's invariant that the caller always knows the
// relation's declared dimensions before calling Add.
//
// Complexity: O(1) amortized; invalidates the lazily cached row/col indices
// and content hash.
func (r *SlopedRelation) Add(i, j int, s Slope) {
	if i < 0 || i >= r.m || j < 0 || j >= r.n {
		panic(relErrorf(ErrIndexOutOfRange, "Add(%d,%d)", i, j))
	}
	if s == Undefined {
		panic("relation: Add called with Undefined slope")
	}
	p := pair{i, j}
	if cur, ok := r.table[p]; ok {
		s = Join(cur, s)
	}
	r.table[p] = s
	r.rowIdx = nil
	r.colIdx = nil
	r.hashValid = false
}

// Get returns the slope at (i,j), or Undefined if no entry is stored or the
// indices are out of range.
//
// Complexity: O(1).
func (r *SlopedRelation) Get(i, j int) Slope {
	if i < 0 || i >= r.m || j < 0 || j >= r.n {
		return Undefined
	}
	return r.table[pair{i, j}]
}

// buildIndices lazily constructs rowIdx/colIdx, the forward adjacency lists
// used by Compose to avoid an O(m*n) scan.
func (r *SlopedRelation) buildIndices() {
	if r.rowIdx != nil {
		return
	}
	rowIdx := make(map[int][]int, r.m)
	colIdx := make(map[int][]int, r.n)
	for p := range r.table {
		rowIdx[p.i] = append(rowIdx[p.i], p.j)
		colIdx[p.j] = append(colIdx[p.j], p.i)
	}
	r.rowIdx = rowIdx
	r.colIdx = colIdx
}

// Entries returns all defined (i,j,slope) triples. The order is unspecified;
// callers that need a canonical order should use sortedEntries (see order.go).
//
// Complexity: O(size).
func (r *SlopedRelation) Entries() []struct {
	I, J  int
	Slope Slope
} {
	out := make([]struct {
		I, J  int
		Slope Slope
	}, 0, len(r.table))
	for p, s := range r.table {
		out = append(out, struct {
			I, J  int
			Slope Slope
		}{p.i, p.j, s})
	}
	return out
}
