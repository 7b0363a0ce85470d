package tournament

import "github.com/matzehuels/stableset/pkg/profile"

// Build derives the majority dominance graph from a preference profile.
//
// For every unordered pair of distinct candidates {a, b}, Build counts the
// ballots ranking a strictly before b and vice versa. Ballots that do not
// rank both candidates are excluded from the pair's tally. An edge a→b is
// added iff wins(a,b) > m/2 where m is the full profile size, not the number
// of ballots ranking the pair; a pair where neither count reaches a strict
// majority produces no edge (a tie or insufficient support).
//
// Because each ballot contributes to at most one side of a pair,
// wins(a,b) + wins(b,a) ≤ m, so at most one direction can clear the strict
// majority threshold and the no-double-edge invariant holds by construction.
// Candidates mentioned on no shared ballots participate as isolated nodes.
//
// The computation is O(k²·m) for k candidates and m ballots.
func Build(p *profile.Profile) *Graph {
	g := New()
	candidates := p.Candidates()
	for _, id := range candidates {
		_ = g.AddNode(id)
	}

	m := p.BallotCount()
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			a, b := candidates[i], candidates[j]

			var winsA, winsB int
			for ballot := 0; ballot < m; ballot++ {
				switch {
				case p.Prefers(ballot, a, b):
					winsA++
				case p.Prefers(ballot, b, a):
					winsB++
				}
			}

			switch {
			case 2*winsA > m:
				_ = g.AddEdge(Edge{From: a, To: b, Wins: winsA, Losses: winsB})
			case 2*winsB > m:
				_ = g.AddEdge(Edge{From: b, To: a, Wins: winsB, Losses: winsA})
			}
		}
	}

	return g
}
