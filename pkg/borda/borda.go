// Package borda computes Borda positional scores from a preference profile.
//
// Borda scoring is independent of the dominance graph: it runs directly off
// the ballots. A candidate at 0-indexed position i on a ballot ranking L
// candidates earns L-i-1 points - the number of candidates ranked below it
// on that ballot. Scores accumulate over all ballots mentioning the
// candidate; every universe candidate appears in the output, scoring 0 when
// never ranked.
package borda

import (
	"sort"

	"github.com/matzehuels/stableset/pkg/profile"
)

// Score pairs a candidate with its accumulated Borda score.
type Score struct {
	Candidate string `json:"candidate" bson:"candidate"`
	Score     int    `json:"score" bson:"score"`
}

// Scores returns the Borda score of every candidate in the universe.
// Candidates absent from every ballot score 0: the map is pre-seeded with
// the full universe before accumulation.
func Scores(p *profile.Profile) map[string]int {
	scores := make(map[string]int, p.CandidateCount())
	for _, id := range p.Candidates() {
		scores[id] = 0
	}

	for _, ballot := range p.Ballots() {
		l := len(ballot)
		for i, id := range ballot {
			scores[id] += l - i - 1
		}
	}
	return scores
}

// Ranking returns all candidates ordered by descending Borda score.
// Ties are broken by first-appearance order in the profile - a presentation
// choice, but a deterministic one, so identical profiles always produce
// identical output.
func Ranking(p *profile.Profile) []Score {
	scores := Scores(p)

	out := make([]Score, 0, len(scores))
	for _, id := range p.Candidates() {
		out = append(out, Score{Candidate: id, Score: scores[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
