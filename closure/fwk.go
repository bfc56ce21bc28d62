package closure

import "github.com/ngorogiannis/cyclist/relation"

// FWKCheck runs the Floyd-Warshall-Kleene strategy: Closure is a matrix over
// a semiring of relation SETS (each cell a list of representatives, as with
// the other two strategies), and the fixed point is reached by a single
// Floyd-Warshall sweep over intermediate nodes where the diagonal cell at
// each intermediate node is first "asterated" (closed under self-composition:
// every composition of members of the cell is folded back into it) before
// being used to update every other cell through it. The tie-the-loop step is
// then run twice at each intermediate node m: the first pass adds P∘Q and
// P∘A (A from the asterated diagonal), the second composes those with
// Closure[m][t], so Closure[s][t] also receives P∘A∘Q. Together the two
// passes cover zero or more traversals of the loops at m; the identity
// relation itself is never stored in a cell.
//
// This differs from OrderReducedCheck in adding the asteration step and the
// second tie-the-loop pass at each intermediate node; without them, paths
// that loop through node m more than once before continuing to t would never
// be folded in within a single sweep.
//
// Complexity: O(n^3 * relation composition cost) plus the cost of asterating
// each diagonal cell, which is itself bounded by the size of that cell's
// relation set squared per round until it stabilizes.
func (eng *Engine) FWKCheck(flags Flags) (bool, error) {
	flags, err := flags.normalize()
	if err != nil {
		return false, err
	}
	eng.g.Freeze()

	n := eng.g.NumNodes()
	cells := newClosureCells(n)
	in := newInterner()
	seedClosureCells(eng.g, in, cells)

	for m := 0; m < n; m++ {
		if err := asterate(flags, in, cells[m][m]); err != nil {
			return false, err
		}
		for pass := 0; pass < 2; pass++ {
			if err := tieLoop(flags, in, cells, n, m); err != nil {
				return false, err
			}
		}
		if flags.has(FailFast) {
			for _, r := range cells[m][m].rels {
				ok, err := selfLoopTest(flags, r)
				if err != nil {
					return false, err
				}
				if !ok {
					return false, nil
				}
			}
		}
	}

	if flags.has(FailFast) {
		return true, nil
	}
	return checkDiagonal(flags, cells, n)
}

// asterate closes diag (a diagonal Closure[m][m] cell) under composition:
// it repeatedly composes every pair of entries and folds the results back in
// until a full pass adds nothing. The zero-traversal case is covered by
// FWKCheck's first tie-the-loop pass, so no identity relation is added.
func asterate(flags Flags, in *interner, diag *cell) error {
	for {
		changed := false
		snapshot := append([]*relation.SlopedRelation(nil), diag.rels...)
		for _, a := range snapshot {
			for _, b := range snapshot {
				cand, err := a.Compose(b)
				if err != nil {
					return err
				}
				res, _ := diag.tryAdd(in, cand, flags.has(UseMinimality))
				if res == addAccepted {
					changed = true
				}
			}
		}
		if !changed {
			return nil
		}
	}
}
