package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// Contains decides L(b) subseteq L(a) by an on-the-fly breakpoint product
// construction (the "Miyano-Hayashi-style construction" referenced in
// SPEC_FULL.md §4.4), restricted to the alphabet this backend actually saw
// via Minterm calls.
//
// The product tracks, alongside b's current state (existential: we are
// searching for a run of b), a subset S of a's states reachable by the word
// read so far and a breakpoint subset O subseteq S of those not yet known to
// have taken an accepting a-edge since O last emptied. Containment fails iff
// the product has a reachable cycle that (1) never lets O empty again — a
// persistent failure of a to keep accepting, and (2) includes at least one
// accepting b-edge, so the witnessed run of b is itself Büchi-accepting.
// Both conditions together place the witness word in L(b) \ L(a).
//
// Complexity: O(2^(2*|a.states|) * |b.states| * alphabet size) in the worst
// case — acceptable for the small automata this checker builds, not a
// general-purpose tool.
func (rb *ReferenceBackend) Contains(a, b *Automaton) (bool, error) {
	if a == nil || b == nil {
		return false, automatonErrorf(ErrBackendContract, "Contains called with nil automaton")
	}

	alphabet := rb.alphabet
	if len(alphabet) == 0 {
		alphabet = []cube{{}}
	}

	type pstate struct {
		qb   StateID
		s, o map[StateID]bool
	}

	keyOf := func(qb StateID, s, o map[StateID]bool) string {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(int(qb)))
		sb.WriteByte('|')
		writeSortedSet(&sb, s)
		sb.WriteByte('|')
		writeSortedSet(&sb, o)
		return sb.String()
	}

	type pedge struct {
		to        string
		accepting bool
	}

	nodes := make(map[string]pstate)
	adj := make(map[string][]pedge)

	start := pstate{qb: b.InitState(), s: map[StateID]bool{a.InitState(): true}, o: map[StateID]bool{}}
	startKey := keyOf(start.qb, start.s, start.o)
	nodes[startKey] = start

	queue := []string{startKey}
	for len(queue) > 0 {
		curKey := queue[0]
		queue = queue[1:]
		cur := nodes[curKey]

		for _, letter := range alphabet {
			for _, be := range b.outEdges(cur.qb) {
				if !be.label.matches(letter) {
					continue
				}
				sPrime := postAll(a, cur.s, letter)
				base := cur.o
				if len(base) == 0 {
					base = cur.s
				}
				oPrime := postAccepting(a, base, letter)

				next := pstate{qb: be.dst, s: sPrime, o: oPrime}
				nextKey := keyOf(next.qb, next.s, next.o)
				if _, seen := nodes[nextKey]; !seen {
					nodes[nextKey] = next
					queue = append(queue, nextKey)
				}
				adj[curKey] = append(adj[curKey], pedge{to: nextKey, accepting: be.accepting})
			}
		}
	}

	order := make([]string, 0, len(nodes))
	for k := range nodes {
		order = append(order, k)
	}
	sort.Strings(order)
	idx := make(map[string]int, len(order))
	for i, k := range order {
		idx[k] = i
	}
	rawAdj := make(map[int][]int, len(order))
	edgeAccepting := make(map[[2]int]bool)
	for k, edges := range adj {
		from := idx[k]
		for _, e := range edges {
			to := idx[e.to]
			rawAdj[from] = append(rawAdj[from], to)
			if e.accepting {
				edgeAccepting[[2]int{from, to}] = true
			}
		}
	}

	comp := tarjanSCC(len(order), rawAdj)
	compMembers := make(map[int][]int)
	for node, c := range comp {
		compMembers[c] = append(compMembers[c], node)
	}

	for _, members := range compMembers {
		hasCycle := len(members) > 1
		if !hasCycle {
			n := members[0]
			for _, to := range rawAdj[n] {
				if to == n {
					hasCycle = true
				}
			}
		}
		if !hasCycle {
			continue
		}

		allObligated := true
		for _, n := range members {
			if len(nodes[order[n]].o) == 0 {
				allObligated = false
				break
			}
		}
		if !allObligated {
			continue
		}

		hasAcceptingEdge := false
		memberSet := make(map[int]bool, len(members))
		for _, n := range members {
			memberSet[n] = true
		}
		for _, n := range members {
			for _, to := range rawAdj[n] {
				if memberSet[to] && edgeAccepting[[2]int{n, to}] {
					hasAcceptingEdge = true
				}
			}
		}
		if hasAcceptingEdge {
			return false, nil
		}
	}

	return true, nil
}

func postAll(a *Automaton, from map[StateID]bool, letter cube) map[StateID]bool {
	out := make(map[StateID]bool)
	for s := range from {
		for _, e := range a.outEdges(s) {
			if e.label.matches(letter) {
				out[e.dst] = true
			}
		}
	}
	return out
}

func postAccepting(a *Automaton, from map[StateID]bool, letter cube) map[StateID]bool {
	out := make(map[StateID]bool)
	for s := range from {
		for _, e := range a.outEdges(s) {
			if e.accepting && e.label.matches(letter) {
				out[e.dst] = true
			}
		}
	}
	return out
}

func writeSortedSet(sb *strings.Builder, set map[StateID]bool) {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, int(s))
	}
	sort.Ints(ids)
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}
}
