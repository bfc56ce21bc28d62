package closure

import "github.com/ngorogiannis/cyclist/relation"

// interner is the single content-addressed representative set shared by one
// Engine run: every SlopedRelation ever added to any Closure[s][t] cell
// passes through Intern first, so extensionally-equal relations produced in
// different cells collapse onto one shared *relation.SlopedRelation pointer
// (SPEC_FULL.md §9, "Representative identity").
type interner struct {
	buckets map[uint64][]*relation.SlopedRelation
}

func newInterner() *interner {
	return &interner{buckets: make(map[uint64][]*relation.SlopedRelation)}
}

// intern returns the canonical pointer for r: an existing extensionally-
// equal relation if one has already been interned, otherwise r itself,
// freshly registered.
func (in *interner) intern(r *relation.SlopedRelation) *relation.SlopedRelation {
	h := r.Hash()
	for _, existing := range in.buckets[h] {
		if existing.Equals(r) {
			return existing
		}
	}
	in.buckets[h] = append(in.buckets[h], r)
	return r
}

// cell is one Closure[s][t] entry: an ordered list of canonical
// *relation.SlopedRelation representatives. Order matters for OrderReduced
// (see orderreduced.go); FWK and Iterative treat it as an unordered set and
// never depend on position.
type cell struct {
	rels []*relation.SlopedRelation
}

// addResult reports what happened when a candidate relation was offered to
// a cell.
type addResult int

const (
	// addRejected means the candidate was a duplicate, or was dominated by
	// (>= under the slope pre-order, which is preferred-or-equal) an
	// existing entry under minimality.
	addRejected addResult = iota
	// addAccepted means the candidate was appended (replacing zero or more
	// dominated entries under minimality).
	addAccepted
)

// tryAdd implements the check-and-add procedure (SPEC_FULL.md §4.3):
//  1. Exact-duplicate rejection (via the interner, so this is pointer
//     equality once a relation has been interned).
//  2. Without minimality: unconditional append.
//  3. With minimality: scan existing entries; any existing S with S <= R
//     (R adds nothing new) rejects R outright; any existing S with S >= R
//     (R subsumes S) is removed. R is then appended unless rejected.
//
// The distilled spec's "preserved prefix" mechanism exists only to let the
// OrderReduced strategy keep iterating a cell while appending to its tail
// without invalidating a live cursor. This implementation sidesteps that by
// having callers that need a stable snapshot copy the slice first (see
// orderreduced.go's tieLoop) rather than mutating cell.rels while a cursor
// is live over it — the Go-idiomatic equivalent of an index-based cursor
// over a snapshot, with the same "don't re-compose what tie-the-loop just
// produced" guarantee.
func (c *cell) tryAdd(in *interner, candidate *relation.SlopedRelation, minimality bool) (addResult, *relation.SlopedRelation) {
	candidate = in.intern(candidate)
	for _, existing := range c.rels {
		if existing == candidate {
			return addRejected, nil
		}
	}

	if !minimality {
		c.rels = append(c.rels, candidate)
		return addAccepted, candidate
	}

	kept := c.rels[:0:0]
	rejected := false
	for _, existing := range c.rels {
		switch existing.Compare(candidate) {
		case relation.LT, relation.EQ:
			// existing <= candidate: candidate adds nothing new.
			rejected = true
		case relation.GT:
			// existing >= candidate: candidate subsumes existing, drop it.
			continue
		default:
			kept = append(kept, existing)
		}
		if rejected {
			break
		}
	}
	if rejected {
		return addRejected, nil
	}
	// Finish copying any entries not yet visited when we didn't break early
	// (the loop above only breaks on rejection, so on the non-rejected path
	// `kept` already reflects every entry).
	kept = append(kept, candidate)
	c.rels = kept
	return addAccepted, candidate
}
