package automaton

import (
	"strconv"

	"github.com/ngorogiannis/cyclist/hgraph"
	"github.com/ngorogiannis/cyclist/relation"
)

// Checker runs the SLA check against one hgraph.HeightedGraph through an
// AutomatonBackend.
type Checker struct {
	g       *hgraph.HeightedGraph
	backend AutomatonBackend
}

// NewChecker returns a Checker bound to g and backend. backend is typically
// a fresh NewReferenceBackend(), but any AutomatonBackend implementation
// satisfies this constructor.
func NewChecker(g *hgraph.HeightedGraph, backend AutomatonBackend) *Checker {
	return &Checker{g: g, backend: backend}
}

// SLACheck builds the path and trace automata per SPEC_FULL.md §4.4 and
// returns Language(pathAutomaton) subseteq Language(traceAutomaton): every
// infinite path through the graph admits an infinite descending trace.
func (c *Checker) SLACheck() (bool, error) {
	c.g.Freeze()

	uniq := dedupeEdgeRelations(c.g)
	k := bitWidth(len(uniq))
	props := make([]int, k)
	for i := range props {
		props[i] = c.backend.RegisterProposition("p" + strconv.Itoa(i))
	}

	letters := make([]Label, len(uniq))
	for i := range uniq {
		bits := make(map[int]bool, k)
		for b := 0; b < k; b++ {
			bitSet := (i>>uint(b))&1 == 1
			bits[props[b]] = !bitSet
		}
		letters[i] = c.backend.Minterm(bits)
	}
	letterOf := func(r *relation.SlopedRelation) Label {
		for i, u := range uniq {
			if u.Equals(r) {
				return letters[i]
			}
		}
		return c.backend.False()
	}

	pathAuto := c.buildPathAutomaton(letterOf)
	traceAuto := c.buildTraceAutomaton(uniq, letters)

	return c.backend.Contains(traceAuto, pathAuto)
}

// dedupeEdgeRelations returns one representative pointer per extensionally
// distinct SlopedRelation appearing on any edge, in a stable order.
func dedupeEdgeRelations(g *hgraph.HeightedGraph) []*relation.SlopedRelation {
	n := g.NumNodes()
	var uniq []*relation.SlopedRelation
	for s := 0; s < n; s++ {
		for t := 0; t < n; t++ {
			r := g.EdgeRelation(s, t)
			if r == nil {
				continue
			}
			found := false
			for _, u := range uniq {
				if u.Equals(r) {
					found = true
					break
				}
			}
			if !found {
				uniq = append(uniq, r)
			}
		}
	}
	return uniq
}

func bitWidth(count int) int {
	if count <= 1 {
		return 1
	}
	k := 0
	for (1 << uint(k)) < count {
		k++
	}
	return k
}

// buildPathAutomaton constructs A_P: graph nodes 0..n-1 plus a fresh initial
// state s_P, with every edge in the Büchi acceptance set.
func (c *Checker) buildPathAutomaton(letterOf func(*relation.SlopedRelation) Label) *Automaton {
	n := c.g.NumNodes()
	b := c.backend.NewAutomaton()
	states := b.NewStates(n + 1)
	sP := states[n]
	b.SetInitState(sP)

	incoming := make(map[int][]Label)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			r := c.g.EdgeRelation(u, v)
			if r == nil {
				continue
			}
			lbl := letterOf(r)
			b.NewEdge(states[u], states[v], lbl, true)
			incoming[v] = append(incoming[v], lbl)
		}
	}
	for v := 0; v < n; v++ {
		ls := incoming[v]
		if len(ls) == 0 {
			continue
		}
		b.NewEdge(sP, states[v], c.backend.Or(ls...), true)
	}
	return b.Build()
}

// buildTraceAutomaton constructs A_T: heights 0..trace_width-1 plus a fresh
// initial state s_T.
func (c *Checker) buildTraceAutomaton(uniq []*relation.SlopedRelation, letters []Label) *Automaton {
	width := c.g.TraceWidth()
	b := c.backend.NewAutomaton()
	states := b.NewStates(width + 1)
	sT := states[width]
	b.SetInitState(sT)

	b.NewEdge(sT, sT, c.backend.True(), false)
	for h := 0; h < width; h++ {
		b.NewEdge(sT, states[h], c.backend.True(), false)
	}

	for h1 := 0; h1 < width; h1++ {
		for h2 := 0; h2 < width; h2++ {
			var stayLetters, downLetters []Label
			for i, r := range uniq {
				switch r.Get(h1, h2) {
				case relation.Stay:
					stayLetters = append(stayLetters, letters[i])
				case relation.Downward:
					downLetters = append(downLetters, letters[i])
				}
			}
			if len(stayLetters) > 0 {
				b.NewEdge(states[h1], states[h2], c.backend.Or(stayLetters...), false)
			}
			if len(downLetters) > 0 {
				b.NewEdge(states[h1], states[h2], c.backend.Or(downLetters...), true)
			}
		}
	}
	return b.Build()
}
