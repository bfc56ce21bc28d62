// Package relation implements sloped relations: finite partial functions from
// pairs of heights to a two-point slope lattice {Stay, Downward}.
//
// A SlopedRelation is the unit of data that flows along one edge of a
// heighted graph (see package hgraph): it records, for every pair of heights
// (i at the source node, j at the destination node), whether the proof rule
// labelling that edge leaves height i "staying" at j, "descends" to j, or
// says nothing about the pair at all (the implicit third value, Undefined).
//
// The package exposes:
//   - Slope, the three-point lattice and its Join.
//   - SlopedRelation, with Add/Get, Compose, Equals/Compare/Hash, and
//     TransitiveClosure/HasSelfLoop/HasDownwardSCC used by package closure's
//     self-loop test.
//
// Relations are built by repeated Add calls and then treated as immutable:
// composition and closure always allocate a fresh result rather than
// mutating a receiver, which lets package closure hand out *SlopedRelation
// pointers as de-duplicated, shared representatives.
//
// Complexity: all operations are expressed in terms of the sparse slope
// table, so cost scales with the number of defined pairs rather than m*n,
// except TransitiveClosure which is worst-case O(m^3) (Warshall-style).
package relation
