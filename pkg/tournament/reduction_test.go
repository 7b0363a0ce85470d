package tournament

import (
	"errors"
	"testing"
)

func TestTransitiveReduction_Triangle(t *testing.T) {
	// A→B, B→C, A→C: the direct A→C edge is implied and must be dropped.
	g := mustGraph(t, []string{"A", "B", "C"}, []Edge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "A", To: "C"},
	})

	reduced, err := TransitiveReduction(g)
	if err != nil {
		t.Fatalf("TransitiveReduction() error = %v", err)
	}

	if reduced.EdgeCount() != 2 {
		t.Errorf("reduced EdgeCount() = %d, want 2", reduced.EdgeCount())
	}
	if reduced.HasEdge("A", "C") {
		t.Errorf("reduced graph kept implied edge A→C")
	}
	if !reduced.HasEdge("A", "B") || !reduced.HasEdge("B", "C") {
		t.Errorf("reduced graph dropped a non-redundant edge")
	}

	// The input must be untouched.
	if g.EdgeCount() != 3 {
		t.Errorf("input graph EdgeCount() = %d after reduction, want 3", g.EdgeCount())
	}
}

func TestTransitiveReduction_Chain(t *testing.T) {
	// A full order on 4 candidates reduces to the 3-edge chain.
	g := mustGraph(t, []string{"A", "B", "C", "D"}, []Edge{
		{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "A", To: "D"},
		{From: "B", To: "C"}, {From: "B", To: "D"},
		{From: "C", To: "D"},
	})

	reduced, err := TransitiveReduction(g)
	if err != nil {
		t.Fatalf("TransitiveReduction() error = %v", err)
	}
	if reduced.EdgeCount() != 3 {
		t.Errorf("reduced EdgeCount() = %d, want 3", reduced.EdgeCount())
	}
	for _, w := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		if !reduced.HasEdge(w[0], w[1]) {
			t.Errorf("reduced graph missing chain edge %s→%s", w[0], w[1])
		}
	}
}

func TestTransitiveReduction_Cyclic(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, []Edge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "C", To: "A"},
	})

	reduced, err := TransitiveReduction(g)
	if !errors.Is(err, ErrNotAcyclic) {
		t.Errorf("TransitiveReduction() error = %v, want ErrNotAcyclic", err)
	}
	if reduced != nil {
		t.Errorf("TransitiveReduction() returned a partial graph for cyclic input")
	}
}

func TestTransitiveReduction_NoRedundancy(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, []Edge{
		{From: "A", To: "B"},
		{From: "A", To: "C"},
	})

	reduced, err := TransitiveReduction(g)
	if err != nil {
		t.Fatalf("TransitiveReduction() error = %v", err)
	}
	if reduced.EdgeCount() != 2 {
		t.Errorf("reduced EdgeCount() = %d, want 2", reduced.EdgeCount())
	}
}
