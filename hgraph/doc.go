// Package hgraph implements the heighted-graph builder: the client-facing
// surface used to describe a cyclic proof's trace structure before handing
// it to package closure or package automaton for a soundness check.
//
// A HeightedGraph maps externally-chosen node and height identifiers (plain
// ints, typically pointers or array offsets on the caller's side) onto dense
// internal indices assigned in first-use order, and stores one
// *relation.SlopedRelation per directed edge, sized to the edge's current
// source/destination height counts.
//
// Construction is interleaved: AddNode, AddHeight, AddEdge, AddStay and
// AddDecrease may be called in any order (AddHeight/AddEdge/AddStay/
// AddDecrease all implicitly add whatever nodes they reference), and the
// graph is frozen — refusing further mutation — the first time a check
// consumes it. See the doc comments on growRelation and addHChange in
// builder.go for how this implementation resolves the distilled spec's open
// question about heights added after an edge's first use.
package hgraph
