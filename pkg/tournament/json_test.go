package tournament

import (
	"bytes"
	"strings"
	"testing"
)

func TestGraph_JSONRoundTrip(t *testing.T) {
	g := mustGraph(t, []string{"B", "A", "C"}, []Edge{
		{From: "A", To: "B", Wins: 2, Losses: 1},
		{From: "B", To: "C", Wins: 3, Losses: 0},
	})

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph() error = %v", err)
	}

	got, err := ReadGraph(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadGraph() error = %v", err)
	}

	if got.CandidateCount() != 3 || got.EdgeCount() != 2 {
		t.Errorf("round-trip graph = %d candidates / %d edges, want 3/2", got.CandidateCount(), got.EdgeCount())
	}
	e, ok := got.Edge("A", "B")
	if !ok || e.Wins != 2 || e.Losses != 1 {
		t.Errorf("round-trip Edge(A, B) = (%+v, %t), want tallies 2–1", e, ok)
	}
}

func TestReadGraph_InvalidDocument(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"unknown endpoint", `{"candidates": ["A"], "edges": [{"from": "A", "to": "B"}]}`},
		{"double edge", `{"candidates": ["A", "B"], "edges": [{"from": "A", "to": "B"}, {"from": "B", "to": "A"}]}`},
		{"self loop", `{"candidates": ["A"], "edges": [{"from": "A", "to": "A"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadGraph(strings.NewReader(tc.in)); err == nil {
				t.Errorf("ReadGraph() error = nil, want error")
			}
		})
	}
}

func TestMarshalGraph_Deterministic(t *testing.T) {
	g := mustGraph(t, []string{"C", "A", "B"}, []Edge{
		{From: "C", To: "A"},
		{From: "B", To: "C"},
	})

	first, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph() error = %v", err)
	}
	second, err := MarshalGraph(g.Clone())
	if err != nil {
		t.Fatalf("MarshalGraph() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("MarshalGraph() output differs between graph and clone")
	}
}

func TestToDOT(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, []Edge{{From: "A", To: "B", Wins: 2, Losses: 1}})

	dot := ToDOT(g, DOTOptions{Margins: true})

	for _, want := range []string{"digraph dominance", `"A" -> "B"`, `label="2–1"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q:\n%s", want, dot)
		}
	}

	plain := ToDOT(g, DOTOptions{})
	if strings.Contains(plain, "label=") {
		t.Errorf("ToDOT() without margins still emits labels:\n%s", plain)
	}
}
