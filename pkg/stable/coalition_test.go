package stable

import (
	"context"
	"testing"

	"github.com/matzehuels/stableset/pkg/tournament"
)

func TestCombinations_CountAndOrder(t *testing.T) {
	enum := newCombinations(4, 2)

	var got [][]int
	for combo, ok := enum.next(); ok; combo, ok = enum.next() {
		got = append(got, append([]int(nil), combo...))
	}

	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if len(got) != len(want) {
		t.Fatalf("enumerated %d combinations, want %d", len(got), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("combination %d = %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestCombinations_Degenerate(t *testing.T) {
	for _, tc := range []struct{ n, r int }{{3, 0}, {3, 4}, {0, 1}} {
		enum := newCombinations(tc.n, tc.r)
		if _, ok := enum.next(); ok {
			t.Errorf("newCombinations(%d, %d).next() yielded a combination, want exhausted", tc.n, tc.r)
		}
	}
}

func TestCombinations_FullSize(t *testing.T) {
	enum := newCombinations(3, 3)
	combo, ok := enum.next()
	if !ok || len(combo) != 3 {
		t.Fatalf("next() = (%v, %t), want the single full combination", combo, ok)
	}
	if _, ok := enum.next(); ok {
		t.Errorf("next() yielded a second full-size combination")
	}
}

func TestAnyCoalitionDominates_ShortCircuit(t *testing.T) {
	// B defeats X: the singleton {B} dominates, found at size 1 without
	// touching larger coalitions.
	g := tournament.New()
	for _, id := range []string{"X", "A", "B", "C"} {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%q) error = %v", id, err)
		}
	}
	if err := g.AddEdge(tournament.Edge{From: "B", To: "X"}); err != nil {
		t.Fatalf("AddEdge error = %v", err)
	}

	dominated, err := anyCoalitionDominates(context.Background(), g, "X", []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("anyCoalitionDominates() error = %v", err)
	}
	if !dominated {
		t.Errorf("anyCoalitionDominates() = false, want true via singleton {B}")
	}
}

func TestAnyCoalitionDominates_NoCoalition(t *testing.T) {
	g := tournament.New()
	for _, id := range []string{"X", "A", "B"} {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%q) error = %v", id, err)
		}
	}

	dominated, err := anyCoalitionDominates(context.Background(), g, "X", []string{"A", "B"})
	if err != nil {
		t.Fatalf("anyCoalitionDominates() error = %v", err)
	}
	if dominated {
		t.Errorf("anyCoalitionDominates() = true with no edges into X, want false")
	}
}
