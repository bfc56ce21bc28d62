package loader

import (
	"encoding/json"
	"io"

	"github.com/ngorogiannis/cyclist/hgraph"
	"github.com/ngorogiannis/cyclist/relation"
)

// wireGraph mirrors the documented JSON shape exactly:
//
//	{"Node": [[id, [h,...]], ...],
//	 "Edge": [[[src,dst], [[sh,dh,slope],...]], ...]}
//
// where slope is 1 for Stay, 2 for Downward. Each Node and Edge entry is
// decoded as a slice of json.RawMessage fields, which DecodeGraph then
// unmarshals one by one into their concrete types.
type wireGraph struct {
	Node [][]json.RawMessage `json:"Node"`
	Edge [][]json.RawMessage `json:"Edge"`
}

const (
	wireStay     = 1
	wireDownward = 2
)

// DecodeGraph parses the wire JSON format from r into a fresh
// hgraph.HeightedGraph sized to exactly the declared node count.
//
// Returns ErrMalformedJSON wrapping the underlying decode or shape error on
// any structural problem: invalid JSON, a Node/Edge entry with the wrong
// arity, or an out-of-range slope value.
func DecodeGraph(r io.Reader) (*hgraph.HeightedGraph, error) {
	var wg wireGraph
	if err := json.NewDecoder(r).Decode(&wg); err != nil {
		return nil, loaderErrorf(ErrMalformedJSON, "decode: %v", err)
	}

	g := hgraph.New(len(wg.Node))

	for _, entry := range wg.Node {
		if len(entry) != 2 {
			return nil, loaderErrorf(ErrMalformedJSON, "Node entry has %d fields, want 2", len(entry))
		}
		var id int
		if err := json.Unmarshal(entry[0], &id); err != nil {
			return nil, loaderErrorf(ErrMalformedJSON, "Node id: %v", err)
		}
		var heights []int
		if err := json.Unmarshal(entry[1], &heights); err != nil {
			return nil, loaderErrorf(ErrMalformedJSON, "Node %d heights: %v", id, err)
		}
		if err := g.AddNode(id); err != nil {
			return nil, loaderErrorf(ErrMalformedJSON, "Node %d: %v", id, err)
		}
		for _, h := range heights {
			if err := g.AddHeight(id, h); err != nil {
				return nil, loaderErrorf(ErrMalformedJSON, "Node %d height %d: %v", id, h, err)
			}
		}
	}

	for _, entry := range wg.Edge {
		if len(entry) != 2 {
			return nil, loaderErrorf(ErrMalformedJSON, "Edge entry has %d fields, want 2", len(entry))
		}
		var endpoints [2]int
		if err := json.Unmarshal(entry[0], &endpoints); err != nil {
			return nil, loaderErrorf(ErrMalformedJSON, "Edge endpoints: %v", err)
		}
		src, dst := endpoints[0], endpoints[1]
		if err := g.AddEdge(src, dst); err != nil {
			return nil, loaderErrorf(ErrMalformedJSON, "Edge (%d,%d): %v", src, dst, err)
		}

		var triples [][3]int
		if err := json.Unmarshal(entry[1], &triples); err != nil {
			return nil, loaderErrorf(ErrMalformedJSON, "Edge (%d,%d) slopes: %v", src, dst, err)
		}
		for _, t := range triples {
			sh, dh, slope := t[0], t[1], t[2]
			var err error
			switch slope {
			case wireStay:
				err = g.AddStay(src, sh, dst, dh)
			case wireDownward:
				err = g.AddDecrease(src, sh, dst, dh)
			default:
				return nil, loaderErrorf(ErrMalformedJSON, "Edge (%d,%d) slope %d out of range", src, dst, slope)
			}
			if err != nil {
				return nil, loaderErrorf(ErrMalformedJSON, "Edge (%d,%d) (%d,%d): %v", src, dst, sh, dh, err)
			}
		}
	}

	return g, nil
}

// EncodeGraph is the inverse of DecodeGraph, used by tests to round-trip a
// graph built programmatically back through the wire format. It walks the graph by
// internal index, so external ids in the output are the graph's own dense
// indices rather than whatever ids the original input used — callers that
// need external-id fidelity should retain their own id mapping.
func EncodeGraph(g *hgraph.HeightedGraph) ([]byte, error) {
	wg := wireGraph{}
	n := g.NumNodes()
	for v := 0; v < n; v++ {
		heights := make([]int, g.HeightCount(v))
		for h := range heights {
			heights[h] = h
		}
		idBytes, _ := json.Marshal(v)
		hBytes, _ := json.Marshal(heights)
		wg.Node = append(wg.Node, []json.RawMessage{idBytes, hBytes})
	}
	for s := 0; s < n; s++ {
		for t := 0; t < n; t++ {
			r := g.EdgeRelation(s, t)
			if r == nil {
				continue
			}
			var triples [][3]int
			for _, e := range r.Entries() {
				slope := wireStay
				if e.Slope == relation.Downward {
					slope = wireDownward
				}
				triples = append(triples, [3]int{e.I, e.J, slope})
			}
			epBytes, _ := json.Marshal([2]int{s, t})
			trBytes, _ := json.Marshal(triples)
			wg.Edge = append(wg.Edge, []json.RawMessage{epBytes, trBytes})
		}
	}
	return json.Marshal(wg)
}
