package tournament

import (
	"errors"
	"testing"
)

func mustGraph(t *testing.T, candidates []string, edges []Edge) *Graph {
	t.Helper()
	g := New()
	for _, id := range candidates {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%q) error = %v", id, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s→%s) error = %v", e.From, e.To, err)
		}
	}
	return g
}

func TestAddNode_Errors(t *testing.T) {
	g := New()
	if err := g.AddNode(""); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(\"\") error = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode("A"); err != nil {
		t.Fatalf("AddNode(A) error = %v", err)
	}
	if err := g.AddNode("A"); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(A) twice error = %v, want ErrDuplicateNodeID", err)
	}
}

func TestAddEdge_Errors(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, nil)

	if err := g.AddEdge(Edge{From: "A", To: "A"}); !errors.Is(err, ErrSelfLoop) {
		t.Errorf("self-loop error = %v, want ErrSelfLoop", err)
	}
	if err := g.AddEdge(Edge{From: "X", To: "B"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("unknown source error = %v, want ErrUnknownSourceNode", err)
	}
	if err := g.AddEdge(Edge{From: "A", To: "X"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("unknown target error = %v, want ErrUnknownTargetNode", err)
	}

	if err := g.AddEdge(Edge{From: "A", To: "B"}); err != nil {
		t.Fatalf("AddEdge(A→B) error = %v", err)
	}
	if err := g.AddEdge(Edge{From: "A", To: "B"}); !errors.Is(err, ErrDoubleEdge) {
		t.Errorf("duplicate edge error = %v, want ErrDoubleEdge", err)
	}
	if err := g.AddEdge(Edge{From: "B", To: "A"}); !errors.Is(err, ErrDoubleEdge) {
		t.Errorf("reverse edge error = %v, want ErrDoubleEdge", err)
	}
}

func TestGraph_Queries(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, []Edge{
		{From: "A", To: "B", Wins: 2, Losses: 1},
		{From: "A", To: "C", Wins: 3, Losses: 0},
	})

	if !g.HasEdge("A", "B") {
		t.Errorf("HasEdge(A, B) = false, want true")
	}
	if g.HasEdge("B", "A") {
		t.Errorf("HasEdge(B, A) = true, want false")
	}
	if got := g.OutDegree("A"); got != 2 {
		t.Errorf("OutDegree(A) = %d, want 2", got)
	}
	if got := g.InDegree("B"); got != 1 {
		t.Errorf("InDegree(B) = %d, want 1", got)
	}
	if got := len(g.Dominators("C")); got != 1 {
		t.Errorf("len(Dominators(C)) = %d, want 1", got)
	}

	e, ok := g.Edge("A", "B")
	if !ok || e.Wins != 2 || e.Losses != 1 {
		t.Errorf("Edge(A, B) = (%+v, %t), want tallies 2–1", e, ok)
	}
	if _, ok := g.Edge("B", "C"); ok {
		t.Errorf("Edge(B, C) found, want absent")
	}
}

func TestCandidates_InsertionOrder(t *testing.T) {
	g := mustGraph(t, []string{"C", "A", "B"}, nil)
	got := g.Candidates()
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsAcyclic(t *testing.T) {
	acyclic := mustGraph(t, []string{"A", "B", "C"}, []Edge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "A", To: "C"},
	})
	if !acyclic.IsAcyclic() {
		t.Errorf("IsAcyclic() = false for transitive triangle, want true")
	}

	cyclic := mustGraph(t, []string{"A", "B", "C"}, []Edge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "C", To: "A"},
	})
	if cyclic.IsAcyclic() {
		t.Errorf("IsAcyclic() = true for 3-cycle, want false")
	}
}

func TestIsAcyclic_EmptyAndIsolated(t *testing.T) {
	if !New().IsAcyclic() {
		t.Errorf("IsAcyclic() = false for empty graph, want true")
	}
	isolated := mustGraph(t, []string{"A", "B"}, nil)
	if !isolated.IsAcyclic() {
		t.Errorf("IsAcyclic() = false for edge-free graph, want true")
	}
}

func TestClone_Independent(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, []Edge{{From: "A", To: "B"}})
	c := g.Clone()

	if err := c.AddNode("C"); err != nil {
		t.Fatalf("AddNode(C) on clone error = %v", err)
	}
	if g.Contains("C") {
		t.Errorf("mutating clone affected original graph")
	}
	if c.EdgeCount() != g.EdgeCount() {
		t.Errorf("clone EdgeCount() = %d, want %d", c.EdgeCount(), g.EdgeCount())
	}
}
