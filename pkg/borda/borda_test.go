package borda

import (
	"testing"

	"github.com/matzehuels/stableset/pkg/profile"
)

func mustProfile(t *testing.T, ballots ...profile.Ballot) *profile.Profile {
	t.Helper()
	p, err := profile.New(ballots)
	if err != nil {
		t.Fatalf("profile.New() error = %v", err)
	}
	return p
}

func TestScores_Unanimous(t *testing.T) {
	p := mustProfile(t,
		profile.Ballot{"A", "B", "C"},
		profile.Ballot{"A", "B", "C"},
		profile.Ballot{"A", "B", "C"},
	)

	got := Scores(p)
	want := map[string]int{"A": 6, "B": 3, "C": 0}
	for id, w := range want {
		if got[id] != w {
			t.Errorf("Scores()[%q] = %d, want %d", id, got[id], w)
		}
	}
}

func TestScores_PartialBallotUsesBallotLength(t *testing.T) {
	// The second ballot ranks only two candidates, so its top spot is worth
	// 1 point, not universe-size-1.
	p := mustProfile(t,
		profile.Ballot{"A", "B", "C"},
		profile.Ballot{"B", "A"},
	)

	got := Scores(p)
	want := map[string]int{"A": 2, "B": 2, "C": 0}
	for id, w := range want {
		if got[id] != w {
			t.Errorf("Scores()[%q] = %d, want %d", id, got[id], w)
		}
	}
}

func TestScores_SumProperty(t *testing.T) {
	// Total points = Σ over ballots of C(L, 2): each ballot distributes one
	// point per ordered pair it ranks.
	p := mustProfile(t,
		profile.Ballot{"A", "B", "C", "D"}, // C(4,2) = 6
		profile.Ballot{"B", "C"},           // C(2,2) = 1
		profile.Ballot{"D", "A", "C"},      // C(3,2) = 3
	)

	total := 0
	for _, s := range Scores(p) {
		total += s
	}
	if total != 10 {
		t.Errorf("sum of Scores() = %d, want 10", total)
	}
}

func TestRanking_DescendingWithStableTies(t *testing.T) {
	// B and C tie on score; C appears first in the universe and must stay
	// ahead of B in the ranking.
	p := mustProfile(t,
		profile.Ballot{"C", "A"},
		profile.Ballot{"B", "A"},
	)

	got := Ranking(p)
	want := []Score{{"C", 1}, {"B", 1}, {"A", 0}}
	if len(got) != len(want) {
		t.Fatalf("Ranking() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ranking()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScores_ZeroPointCandidatePresent(t *testing.T) {
	// Z is only ever ranked last, earning nothing, yet still appears in the
	// output because the universe is pre-seeded with zeros.
	p := mustProfile(t,
		profile.Ballot{"A", "B", "Z"},
		profile.Ballot{"A", "B"},
	)

	got := Scores(p)
	if _, ok := got["Z"]; !ok {
		t.Fatalf("Scores() missing universe candidate Z")
	}
	if got["Z"] != 0 {
		t.Errorf("Scores()[Z] = %d, want 0", got["Z"])
	}
}
