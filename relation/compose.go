package relation

// Compose returns a freshly allocated relation R ∘ S where the receiver is R
// (an m x k relation) and other is S (a k2 x n relation). Compose fails with
// ErrDimensionMismatch if the inner dimensions (r.n vs other.m) disagree.
//
// At (i,j), the composed slope is:
//   - Downward, if some h has R(i,h)=Downward and S(h,j) defined, or
//     R(i,h)=Stay and S(h,j)=Downward;
//   - else Stay, if some h has both R(i,h) and S(h,j) defined;
//   - else Undefined.
//
// Compose walks r's per-row forward index against s's per-row table, so its
// cost is proportional to the number of (i,h,j) triples actually connected,
// not m*k*n.
//
// Complexity: O(Σ_i |row(i)| * |row(h)|) in the worst case, i.e. O(size(r) *
// max fan-out of s).
func (r *SlopedRelation) Compose(s *SlopedRelation) (*SlopedRelation, error) {
	if r.n != s.m {
		return nil, relErrorf(ErrDimensionMismatch, "compose %dx%d with %dx%d", r.m, r.n, s.m, s.n)
	}

	r.buildIndices()
	s.buildIndices()

	out := New(r.m, s.n)
	// best[i][j] tracks the strongest slope found so far for (i,j).
	best := make(map[pair]Slope)

	for i := 0; i < r.m; i++ {
		hs, ok := r.rowIdx[i]
		if !ok {
			continue
		}
		for _, h := range hs {
			rih := r.table[pair{i, h}]
			js, ok := s.rowIdx[h]
			if !ok {
				continue
			}
			for _, j := range js {
				shj := s.table[pair{h, j}]
				var contrib Slope
				if rih == Downward || shj == Downward {
					contrib = Downward
				} else {
					contrib = Stay
				}
				key := pair{i, j}
				if cur, ok := best[key]; !ok || contrib > cur {
					best[key] = contrib
				}
			}
		}
	}

	for p, sl := range best {
		out.table[p] = sl
	}
	return out, nil
}
