package closure

// Flags is a bit-packed set of optimization switches recognized by
// Engine's check methods. The bit layout matches the original C soundness
// checker's constants so that serialized flag values remain portable.
type Flags uint32

const (
	// FailFast checks every newly-added diagonal relation for a self-loop
	// as soon as it is added, returning unsound the moment one is found
	// rather than waiting for the whole closure to stabilize.
	FailFast Flags = 0x01
	// UseSCCCheck uses relation.SlopedRelation.HasDownwardSCC instead of a
	// full transitive closure for the self-loop test.
	UseSCCCheck Flags = 0x02
	// UseIdempotence short-circuits the self-loop test on any relation
	// that is not idempotent (R∘R != R): such a relation is assumed to
	// pass, trivially. Only sound when the caller independently guarantees
	// the closure in use is idempotent (see SPEC_FULL.md §8, scenario 5).
	UseIdempotence Flags = 0x04
	// UseMinimality prunes Closure[s][t] to a thin set (no two entries
	// comparable under the slope pre-order), trading extra comparisons for
	// a smaller closure.
	UseMinimality Flags = 0x08
	// UseSD selects the sufficient-descent quick-reject pre-check (see
	// QuickReject). QuickReject currently runs the full relational check
	// with UseSD/UseXSD cleared, so its verdict is RelationalCheck's.
	UseSD Flags = 0x10
	// UseXSD selects the extended sufficient-descent quick-reject
	// pre-check; QuickReject treats it exactly like UseSD.
	UseXSD Flags = 0x20
	// UseORTL selects the OrderReduced strategy when dispatched through a
	// flag-driven entry point (package loader's flag-letter parser sets
	// this instead of calling OrderReducedCheck directly).
	UseORTL Flags = 0x40
	// UseFWK selects the Floyd-Warshall-Kleene strategy, see UseORTL.
	UseFWK Flags = 0x80
	// UseSLA selects the automaton-based SLA check instead of any CCL
	// strategy, see UseORTL.
	UseSLA Flags = 0x100
)

// has reports whether every bit in want is set in f.
func (f Flags) has(want Flags) bool { return f&want == want }

// normalize validates flag combinations and applies the one documented
// silent downgrade (FailFast is pointless, not incoherent, alongside
// UseMinimality, so it is cleared rather than rejected).
//
// Returns ErrInvalidFlags for the two combinations the distilled spec
// declares outright illegal: idempotence+minimality and idempotence+SCC.
func (f Flags) normalize() (Flags, error) {
	if f.has(UseIdempotence) && f.has(UseMinimality) {
		return 0, closureErrorf(ErrInvalidFlags, "UseIdempotence with UseMinimality")
	}
	if f.has(UseIdempotence) && f.has(UseSCCCheck) {
		return 0, closureErrorf(ErrInvalidFlags, "UseIdempotence with UseSCCCheck")
	}
	if f.has(UseMinimality) {
		f &^= FailFast
	}
	return f, nil
}

// ParseFlags decodes the flag-letter string described in SPEC_FULL.md §6
// ({f,s,i,m,D,X,O,K,A}, any order, unknown letters ignored) into a Flags
// value. This lives in package closure (rather than package loader) because
// it is part of the stable Check API surface; package loader's CLI wiring
// calls straight through to it.
func ParseFlags(s string) Flags {
	var f Flags
	for _, c := range s {
		switch c {
		case 'f':
			f |= FailFast
		case 's':
			f |= UseSCCCheck
		case 'i':
			f |= UseIdempotence
		case 'm':
			f |= UseMinimality
		case 'D':
			f |= UseSD
		case 'X':
			f |= UseXSD
		case 'O':
			f |= UseORTL
		case 'K':
			f |= UseFWK
		case 'A':
			f |= UseSLA
		}
	}
	return f
}
