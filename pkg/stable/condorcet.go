package stable

import "github.com/matzehuels/stableset/pkg/tournament"

// Winner returns the Condorcet winner of the graph, if one exists.
// The winner is the candidate with a dominance edge to every other
// candidate; the no-double-edge invariant guarantees at most one such
// candidate. The second return is false when no winner exists - the
// Condorcet paradox, a valid outcome rather than an error. The paradox is
// reported only by absence; locating the underlying majority cycle is up to
// the caller (see [tournament.Graph.IsAcyclic]).
func Winner(g *tournament.Graph) (string, bool) {
	candidates := g.Candidates()
	for _, x := range candidates {
		beatsAll := true
		for _, y := range candidates {
			if y != x && !g.HasEdge(x, y) {
				beatsAll = false
				break
			}
		}
		if beatsAll {
			return x, true
		}
	}
	return "", false
}
