package automaton

// tarjanSCC computes strongly connected component ids (0-indexed, arbitrary
// numbering) for the graph on nodes [0,n) with adjacency adj[i] = outgoing
// neighbours of i. Mirrors relation.tarjanSCC's iterative formulation (the
// same non-recursive Tarjan used for HasDownwardSCC), duplicated here rather
// than exported across packages since it is purely an internal helper for
// Contains's cycle search.
func tarjanSCC(n int, adj map[int][]int) []int {
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	comp := make([]int, n)
	for i := range index {
		index[i] = -1
	}

	var stack []int
	nextIndex := 0
	nextComp := 0

	type frame struct {
		node    int
		nbrIdx  int
		nbrList []int
	}
	var callStack []frame

	var strongconnect func(start int)
	strongconnect = func(start int) {
		callStack = append(callStack, frame{node: start, nbrList: adj[start]})
		index[start] = nextIndex
		low[start] = nextIndex
		nextIndex++
		stack = append(stack, start)
		onStack[start] = true

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			v := top.node

			if top.nbrIdx < len(top.nbrList) {
				w := top.nbrList[top.nbrIdx]
				top.nbrIdx++
				if index[w] == -1 {
					index[w] = nextIndex
					low[w] = nextIndex
					nextIndex++
					stack = append(stack, w)
					onStack[w] = true
					callStack = append(callStack, frame{node: w, nbrList: adj[w]})
				} else if onStack[w] {
					if index[w] < low[v] {
						low[v] = index[w]
					}
				}
				continue
			}

			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if low[v] < low[parent.node] {
					low[parent.node] = low[v]
				}
			}

			if low[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = nextComp
					if w == v {
						break
					}
				}
				nextComp++
			}
		}
	}

	for i := 0; i < n; i++ {
		if index[i] == -1 {
			strongconnect(i)
		}
	}
	return comp
}
