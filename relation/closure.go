package relation

// TransitiveClosure computes the reflexive-free transitive closure of a
// square relation: the least fixed point of R ⊔ R∘R under the slope join,
// computed by Warshall-style propagation: for each intermediate height k,
// every pair (i,j) with both (i,k) and (k,j) defined gets its slope joined
// with Downward if (i,k), (k,j) or the loop (k,k) is Downward, else Stay.
// Counting the loop at k is what lets a single pass see paths that go round
// a Downward cycle through k before continuing to j.
//
// Fails with ErrNotSquare if the receiver is not square.
//
// Termination: the lattice {Undefined,Stay,Downward}^(m*m) is finite and
// every step only joins (monotonically increases) slopes, so the Warshall
// sweep reaches a fixed point after at most m full passes; in practice one
// pass of the classic triple loop already computes the closure exactly
// (standard Warshall argument), which is what this implementation does.
//
// Complexity: O(m^3).
func (r *SlopedRelation) TransitiveClosure() (*SlopedRelation, error) {
	if r.m != r.n {
		return nil, relErrorf(ErrNotSquare, "TransitiveClosure on %dx%d", r.m, r.n)
	}
	m := r.m
	// dense slope grid for Warshall propagation
	grid := make([][]Slope, m)
	for i := range grid {
		grid[i] = make([]Slope, m)
	}
	for p, s := range r.table {
		grid[p.i][p.j] = s
	}

	for k := 0; k < m; k++ {
		for i := 0; i < m; i++ {
			ik := grid[i][k]
			if ik == Undefined {
				continue
			}
			for j := 0; j < m; j++ {
				kj := grid[k][j]
				if kj == Undefined {
					continue
				}
				var contrib Slope
				if ik == Downward || kj == Downward || grid[k][k] == Downward {
					contrib = Downward
				} else {
					contrib = Stay
				}
				if contrib > grid[i][j] {
					grid[i][j] = contrib
				}
			}
		}
	}

	out := New(m, m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if grid[i][j] != Undefined {
				out.table[pair{i, j}] = grid[i][j]
			}
		}
	}
	return out, nil
}

// HasSelfLoop reports whether some (i,i) maps to Downward. Intended to be
// called on an already-closed relation (e.g. the result of
// TransitiveClosure), per package closure's self-loop test.
//
// Complexity: O(min(m,n)) — only the diagonal is probed.
func (r *SlopedRelation) HasSelfLoop() bool {
	lim := r.m
	if r.n < lim {
		lim = r.n
	}
	for i := 0; i < lim; i++ {
		if r.table[pair{i, i}] == Downward {
			return true
		}
	}
	return false
}

// HasDownwardSCC reports whether the directed graph over height indices
// (edge i->j iff Get(i,j) != Undefined) has a strongly connected component
// containing at least one Downward edge. This is the SCC-based shortcut for
// the self-loop test: any height reachable from itself via a cycle that
// includes a Downward step will, after transitive closure, produce a
// Downward self-loop, so checking SCC membership avoids materializing the
// full closure.
//
// Panics with an error wrapping ErrNotSquare if the receiver is not square.
//
// Complexity: O(m + size) via Tarjan's algorithm.
func (r *SlopedRelation) HasDownwardSCC() bool {
	if r.m != r.n {
		panic(relErrorf(ErrNotSquare, "HasDownwardSCC on %dx%d", r.m, r.n))
	}
	r.buildIndices()

	comp := tarjanSCC(r.m, r.rowIdx)
	for p, s := range r.table {
		if s == Downward && comp[p.i] == comp[p.j] {
			return true
		}
	}
	return false
}

// tarjanSCC computes strongly connected component ids (0-indexed, arbitrary
// numbering) for the graph on nodes [0,n) with adjacency adj[i] = outgoing
// neighbours of i. Nodes with no recorded adjacency are treated as isolated
// singleton components.
func tarjanSCC(n int, adj map[int][]int) []int {
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	comp := make([]int, n)
	for i := range index {
		index[i] = -1
	}

	var stack []int
	nextIndex := 0
	nextComp := 0

	type frame struct {
		node    int
		nbrIdx  int
		nbrList []int
	}
	var callStack []frame

	var strongconnect func(v int)
	strongconnect = func(start int) {
		callStack = append(callStack, frame{node: start, nbrList: adj[start]})
		index[start] = nextIndex
		low[start] = nextIndex
		nextIndex++
		stack = append(stack, start)
		onStack[start] = true

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			v := top.node

			if top.nbrIdx < len(top.nbrList) {
				w := top.nbrList[top.nbrIdx]
				top.nbrIdx++
				if index[w] == -1 {
					index[w] = nextIndex
					low[w] = nextIndex
					nextIndex++
					stack = append(stack, w)
					onStack[w] = true
					callStack = append(callStack, frame{node: w, nbrList: adj[w]})
				} else if onStack[w] {
					if index[w] < low[v] {
						low[v] = index[w]
					}
				}
				continue
			}

			// Done with v's neighbours: pop and propagate low-link.
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if low[v] < low[parent.node] {
					low[parent.node] = low[v]
				}
			}

			if low[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = nextComp
					if w == v {
						break
					}
				}
				nextComp++
			}
		}
	}

	for i := 0; i < n; i++ {
		if index[i] == -1 {
			strongconnect(i)
		}
	}
	return comp
}
