package hgraph

import "github.com/ngorogiannis/cyclist/relation"

// HeightedGraph is the builder and storage type for a cyclic proof's trace
// structure: a directed graph of proof nodes, each carrying a finite set of
// heights, with a relation.SlopedRelation attached to every edge describing
// how heights at the source relate to heights at the destination.
//
// Internal indices for nodes and, per node, for heights, are assigned
// densely in [0, k) in first-use order. max_nodes is only an up-front
// capacity bound for the edge matrix; the authoritative node count for
// iteration is NumNodes(), per the distilled spec's resolved open question
// (see SPEC_FULL.md §9).
type HeightedGraph struct {
	maxNodes int
	frozen   bool

	nodeExtToInt map[int]int
	nodeIntToExt []int

	// heightExtToInt[node] maps that node's external height ids to its own
	// dense internal height indices.
	heightExtToInt []map[int]int
	// heightCount[node] is len(heightExtToInt[node]); cached for speed and
	// because it is read on every AddStay/AddDecrease call.
	heightCount []int

	// edgeRelation is a flat row-major n*n buffer (n == maxNodes) indexed
	// src*maxNodes+dst; nil entries mean "no edge yet". Mirrors the
	// original's dense preallocated matrix per SPEC_FULL.md §9.
	edgeRelation []*relation.SlopedRelation
	numEdges     int

	traceWidth int
}

// New returns an empty HeightedGraph with the given node-capacity bound.
// max_nodes must be >= 0.
//
// Complexity: O(max_nodes^2) to preallocate the edge matrix.
func New(maxNodes int) *HeightedGraph {
	if maxNodes < 0 {
		panic("hgraph: max_nodes must be non-negative")
	}
	return &HeightedGraph{
		maxNodes:     maxNodes,
		nodeExtToInt: make(map[int]int, maxNodes),
		edgeRelation: make([]*relation.SlopedRelation, maxNodes*maxNodes),
	}
}

// NumNodes returns the number of distinct nodes actually added so far. This,
// not max_nodes, is the authoritative bound for iteration.
func (g *HeightedGraph) NumNodes() int { return len(g.nodeIntToExt) }

// NumEdges returns the number of distinct (src,dst) edges added so far.
func (g *HeightedGraph) NumEdges() int { return g.numEdges }

// TraceWidth returns max over all nodes of the number of heights declared
// for that node, i.e. the width of the trace automaton's height-indexed
// state space (package automaton).
func (g *HeightedGraph) TraceWidth() int { return g.traceWidth }

// Frozen reports whether Freeze has been called.
func (g *HeightedGraph) Frozen() bool { return g.frozen }

// Freeze marks the graph read-only. It is idempotent and is called
// automatically by the first check a closure.Engine or automaton.Checker
// performs against this graph.
func (g *HeightedGraph) Freeze() { g.frozen = true }

func (g *HeightedGraph) edgeIndex(srcInt, dstInt int) int {
	return srcInt*g.maxNodes + dstInt
}

// EdgeRelation returns the SlopedRelation stored for the edge between the
// given *internal* node indices, or nil if no edge has been added there.
// Exposed for package closure and package automaton, which operate purely
// on internal indices once the graph is frozen.
func (g *HeightedGraph) EdgeRelation(srcInt, dstInt int) *relation.SlopedRelation {
	return g.edgeRelation[g.edgeIndex(srcInt, dstInt)]
}

// HeightCount returns the number of heights declared for the given internal
// node index.
func (g *HeightedGraph) HeightCount(nodeInt int) int { return g.heightCount[nodeInt] }
