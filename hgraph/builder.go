package hgraph

import "github.com/ngorogiannis/cyclist/relation"

// AddNode registers an external node id, assigning it the next dense
// internal index if it is new. Idempotent. Returns ErrCapacityExceeded if
// this would register more than max_nodes distinct nodes, and ErrGraphFrozen
// if the graph has already been frozen.
//
// Complexity: O(1) amortized.
func (g *HeightedGraph) AddNode(ext int) error {
	if g.frozen {
		return hgErrorf(ErrGraphFrozen, "AddNode(%d)", ext)
	}
	if _, ok := g.nodeExtToInt[ext]; ok {
		return nil
	}
	next := len(g.nodeIntToExt)
	if next >= g.maxNodes {
		return hgErrorf(ErrCapacityExceeded, "AddNode(%d): capacity %d", ext, g.maxNodes)
	}
	g.nodeExtToInt[ext] = next
	g.nodeIntToExt = append(g.nodeIntToExt, ext)
	g.heightExtToInt = append(g.heightExtToInt, make(map[int]int))
	g.heightCount = append(g.heightCount, 0)
	return nil
}

// AddHeight implicitly adds node ext, then registers height extH for it if
// new, assigning the next dense per-node internal height index. Updates
// TraceWidth monotonically.
//
// Complexity: O(1) amortized.
func (g *HeightedGraph) AddHeight(ext, extH int) error {
	if g.frozen {
		return hgErrorf(ErrGraphFrozen, "AddHeight(%d,%d)", ext, extH)
	}
	if err := g.AddNode(ext); err != nil {
		return err
	}
	nodeInt := g.nodeExtToInt[ext]
	if _, ok := g.heightExtToInt[nodeInt][extH]; ok {
		return nil
	}
	nextH := g.heightCount[nodeInt]
	g.heightExtToInt[nodeInt][extH] = nextH
	g.heightCount[nodeInt] = nextH + 1
	if g.heightCount[nodeInt] > g.traceWidth {
		g.traceWidth = g.heightCount[nodeInt]
	}
	return nil
}

// AddEdge implicitly adds both endpoint nodes, then, if no relation has been
// stored for (src,dst) yet, allocates a fresh empty relation.SlopedRelation
// sized to the current height counts of src and dst. Idempotent: calling it
// again for an existing edge is a no-op (it does not resize an existing
// relation — AddStay/AddDecrease handle growth on demand, see below).
//
// Complexity: O(1) amortized.
func (g *HeightedGraph) AddEdge(srcExt, dstExt int) error {
	if g.frozen {
		return hgErrorf(ErrGraphFrozen, "AddEdge(%d,%d)", srcExt, dstExt)
	}
	if err := g.AddNode(srcExt); err != nil {
		return err
	}
	if err := g.AddNode(dstExt); err != nil {
		return err
	}
	srcInt := g.nodeExtToInt[srcExt]
	dstInt := g.nodeExtToInt[dstExt]
	idx := g.edgeIndex(srcInt, dstInt)
	if g.edgeRelation[idx] == nil {
		g.numEdges++
		g.edgeRelation[idx] = relation.New(g.heightCount[srcInt], g.heightCount[dstInt])
	}
	return nil
}

// growRelation returns a relation with dimensions at least (minM, minN),
// copying over every entry of old if a resize was needed, otherwise
// returning old unchanged. This implements the on-demand resize policy
// chosen to resolve the distilled spec's §9 open question: AddHeight calls
// that arrive after an edge's first AddEdge no longer leave the edge
// ill-formed, they simply grow its relation.
func growRelation(old *relation.SlopedRelation, minM, minN int) *relation.SlopedRelation {
	m, n := old.Dims()
	if m >= minM && n >= minN {
		return old
	}
	if minM < m {
		minM = m
	}
	if minN < n {
		minN = n
	}
	grown := relation.New(minM, minN)
	for _, e := range old.Entries() {
		grown.Add(e.I, e.J, e.Slope)
	}
	return grown
}

// addHChange is the shared implementation behind AddStay/AddDecrease: it
// implicitly adds both heights (and, transitively, both nodes and the
// edge), growing the edge's relation on demand if either height index falls
// outside its current dimensions, then records the slope.
func (g *HeightedGraph) addHChange(srcExt, srcH, dstExt, dstH int, s relation.Slope) error {
	if g.frozen {
		return hgErrorf(ErrGraphFrozen, "addHChange(%d,%d,%d,%d)", srcExt, srcH, dstExt, dstH)
	}
	if err := g.AddHeight(srcExt, srcH); err != nil {
		return err
	}
	if err := g.AddHeight(dstExt, dstH); err != nil {
		return err
	}
	if err := g.AddEdge(srcExt, dstExt); err != nil {
		return err
	}

	srcInt := g.nodeExtToInt[srcExt]
	dstInt := g.nodeExtToInt[dstExt]
	srcHInt := g.heightExtToInt[srcInt][srcH]
	dstHInt := g.heightExtToInt[dstInt][dstH]

	idx := g.edgeIndex(srcInt, dstInt)
	rel := growRelation(g.edgeRelation[idx], g.heightCount[srcInt], g.heightCount[dstInt])
	g.edgeRelation[idx] = rel
	rel.Add(srcHInt, dstHInt, s)
	return nil
}

// AddStay records that height srcH at srcExt does not strictly decrease to
// height dstH at dstExt across this edge.
func (g *HeightedGraph) AddStay(srcExt, srcH, dstExt, dstH int) error {
	return g.addHChange(srcExt, srcH, dstExt, dstH, relation.Stay)
}

// AddDecrease records that height srcH at srcExt strictly decreases to
// height dstH at dstExt across this edge.
func (g *HeightedGraph) AddDecrease(srcExt, srcH, dstExt, dstH int) error {
	return g.addHChange(srcExt, srcH, dstExt, dstH, relation.Downward)
}

// GetSlope translates external ids and looks up the recorded slope,
// returning relation.Undefined (not an error) if the edge is missing or no
// slope is recorded for the two heights. It only returns
// an error (ErrUnknownNode/ErrUnknownHeight) when the caller asks about a
// node/height that was truly never declared, so that a typo in calling code
// is distinguishable from "no transition recorded here".
func (g *HeightedGraph) GetSlope(srcExt, srcH, dstExt, dstH int) (relation.Slope, error) {
	srcInt, ok := g.nodeExtToInt[srcExt]
	if !ok {
		return relation.Undefined, hgErrorf(ErrUnknownNode, "GetSlope src=%d", srcExt)
	}
	dstInt, ok := g.nodeExtToInt[dstExt]
	if !ok {
		return relation.Undefined, hgErrorf(ErrUnknownNode, "GetSlope dst=%d", dstExt)
	}
	srcHInt, ok := g.heightExtToInt[srcInt][srcH]
	if !ok {
		return relation.Undefined, hgErrorf(ErrUnknownHeight, "GetSlope src=%d srcH=%d", srcExt, srcH)
	}
	dstHInt, ok := g.heightExtToInt[dstInt][dstH]
	if !ok {
		return relation.Undefined, hgErrorf(ErrUnknownHeight, "GetSlope dst=%d dstH=%d", dstExt, dstH)
	}
	rel := g.edgeRelation[g.edgeIndex(srcInt, dstInt)]
	if rel == nil {
		return relation.Undefined, nil
	}
	return rel.Get(srcHInt, dstHInt), nil
}

// InternalNode returns the internal index assigned to an external node id,
// and whether it has been added. Exposed for callers that need to translate
// external ids into the internal indices EdgeRelation and HeightCount take.
func (g *HeightedGraph) InternalNode(ext int) (int, bool) {
	idx, ok := g.nodeExtToInt[ext]
	return idx, ok
}
