package tournament

// TransitiveReduction returns a new graph containing only the edges not
// implied by transitivity of the remaining edges (the Hasse diagram of the
// dominance relation). For example, if A→B, B→C, and A→C all exist, A→C is
// redundant and is dropped because A reaches C via B.
//
// Transitive reduction is only defined for acyclic graphs. If g contains a
// majority cycle, TransitiveReduction returns ErrNotAcyclic rather than a
// partial or approximate result; callers should branch on [Graph.IsAcyclic]
// or treat the error as a "cannot display" outcome.
//
// The input graph is never modified. Time complexity is O(N²·E) worst case
// from the DFS-based reachability closure; space is O(N²).
func TransitiveReduction(g *Graph) (*Graph, error) {
	if !g.IsAcyclic() {
		return nil, ErrNotAcyclic
	}

	candidates := g.Candidates()
	index := make(map[string]int, len(candidates))
	for i, id := range candidates {
		index[id] = i
	}

	adjacency := make([][]int, len(candidates))
	for _, e := range g.Edges() {
		adjacency[index[e.From]] = append(adjacency[index[e.From]], index[e.To])
	}

	reachable := computeReachability(adjacency)

	out := New()
	for _, id := range candidates {
		_ = out.AddNode(id)
	}
	for _, e := range g.Edges() {
		src, dst := index[e.From], index[e.To]
		redundant := false
		for _, mid := range adjacency[src] {
			if mid != dst && reachable[mid][dst] {
				redundant = true
				break
			}
		}
		if !redundant {
			_ = out.AddEdge(e)
		}
	}
	return out, nil
}

// computeReachability returns the transitive closure of the adjacency list:
// reachable[i][j] is true iff j is reachable from i (including i itself).
func computeReachability(adjacency [][]int) [][]bool {
	n := len(adjacency)
	reachable := make([][]bool, n)
	for i := range reachable {
		reachable[i] = make([]bool, n)
	}

	var dfs func(source, current int)
	dfs = func(source, current int) {
		if reachable[source][current] {
			return
		}
		reachable[source][current] = true
		for _, next := range adjacency[current] {
			dfs(source, next)
		}
	}

	for i := range reachable {
		dfs(i, i)
	}
	return reachable
}
