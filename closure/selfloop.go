package closure

import "github.com/ngorogiannis/cyclist/relation"

// selfLoopTest decides, for a relation R found in a diagonal cell
// Closure[v][v], whether R witnesses an infinite descending trace at node v,
// per the three-way branch in SPEC_FULL.md §4.3:
//
//   - UseSCCCheck:    R.HasDownwardSCC()
//   - UseIdempotence: if R∘R != R, trivially true (soundness only enforced
//     on idempotents under this mode); else (R∘R).HasSelfLoop()
//   - otherwise:      R's transitive closure .HasSelfLoop()
//
// flags must already have passed Flags.normalize (UseIdempotence is never
// combined with UseSCCCheck here).
func selfLoopTest(flags Flags, r *relation.SlopedRelation) (bool, error) {
	switch {
	case flags.has(UseSCCCheck):
		return r.HasDownwardSCC(), nil

	case flags.has(UseIdempotence):
		r2, err := r.Compose(r)
		if err != nil {
			return false, err
		}
		if !r2.Equals(r) {
			return true, nil
		}
		return r2.HasSelfLoop(), nil

	default:
		tc, err := r.TransitiveClosure()
		if err != nil {
			return false, err
		}
		return tc.HasSelfLoop(), nil
	}
}
