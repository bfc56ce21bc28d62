package closure

import "github.com/ngorogiannis/cyclist/relation"

// RelationalCheck runs the legacy doubly-buffered-sweep Composition-Closure
// Check: repeatedly compose every pair of existing Closure[s][m] and
// Closure[m][t] entries into a candidate for Closure[s][t], check-and-add
// each candidate, and loop until a full pass adds nothing. This is the
// original strategy from SPEC_FULL.md §4.3 ("Iterative"); OrderReducedCheck
// and FWKCheck both compute the same fixed point with asymptotically better
// sweep orders.
//
// Returns ErrInvalidFlags if flags combines UseIdempotence with UseMinimality
// or UseSCCCheck (see Flags.normalize).
//
// Complexity: O(passes * n^3 * (relation composition cost)), where passes is
// bounded by the number of distinct relations that can appear in any one
// cell — finite because the slope lattice per entry is finite, but with no
// better bound than the closure's total size in the worst case.
func (eng *Engine) RelationalCheck(flags Flags) (bool, error) {
	flags, err := flags.normalize()
	if err != nil {
		return false, err
	}
	eng.g.Freeze()

	n := eng.g.NumNodes()
	cells := newClosureCells(n)
	in := newInterner()
	seedClosureCells(eng.g, in, cells)

	if flags.has(FailFast) {
		for v := 0; v < n; v++ {
			for _, r := range cells[v][v].rels {
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

	for {
		changed := false
		for s := 0; s < n; s++ {
			for m := 0; m < n; m++ {
				left := append([]*relation.SlopedRelation(nil), cells[s][m].rels...)
				if len(left) == 0 {
					continue
				}
				for t := 0; t < n; t++ {
					right := cells[m][t].rels
					if len(right) == 0 {
						continue
					}
					for _, lr := range left {
						for _, rr := range right {
							cand, err := lr.Compose(rr)
							if err != nil {
								return false, err
							}
							res, added := cells[s][t].tryAdd(in, cand, flags.has(UseMinimality))
							if res == addRejected {
								continue
							}
							changed = true
							if flags.has(FailFast) && s == t {
								ok, err := selfLoopTest(flags, added)
								if err != nil {
									return false, err
								}
								if !ok {
									return false, nil
								}
							}
						}
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	if flags.has(FailFast) {
		return true, nil
	}
	return checkDiagonal(flags, cells, n)
}
