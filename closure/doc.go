// Package closure implements the Composition-Closure Check (CCL): a
// semi-lattice fixed-point computation over relation.SlopedRelation values
// attached to a hgraph.HeightedGraph's edges, deciding whether every cycle
// in the graph admits an infinite descending trace.
//
// Three strategies compute the same closure by different means:
//
//   - Iterative  - a doubly-buffered fixed-point loop (legacy, O(naive) but
//     simplest to audit; also the default entry point, RelationalCheck).
//   - OrderReduced - a single sweep over intermediate nodes m in increasing
//     order, tying the loop at each m once (see orderreduced.go).
//   - FWK (Floyd-Warshall-Kleene) - iterates an intermediate node k, computing
//     the Kleene-star "asteration" of Closure[k][k] and folding it into every
//     other cell (see fwk.go).
//
// All three are built on the same shared primitives in dedup.go (the
// representative interner and per-cell minimality-aware insertion) and
// selfloop.go (the self-loop test consulted on every diagonal cell once the
// closure is final, or eagerly under the FailFast flag).
//
// Four orthogonal Flags (fail-fast, SCC-based loop test, idempotence
// shortcut, minimality pruning) are documented in flags.go alongside the two
// combinations rejected outright with ErrInvalidFlags.
package closure
