package tournament

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// Document is the canonical serialization format for dominance graphs.
// Used for API responses, storage, and caching.
//
// Candidates are sorted lexicographically for deterministic output, while
// edge tallies are preserved for round-trip fidelity: import → export →
// re-import produces an identical graph.
type Document struct {
	Candidates []string  `json:"candidates" bson:"candidates"`
	Edges      []EdgeDoc `json:"edges" bson:"edges"`
}

// EdgeDoc is the serialized form of a dominance [Edge].
type EdgeDoc struct {
	From   string `json:"from" bson:"from"`
	To     string `json:"to" bson:"to"`
	Wins   int    `json:"wins,omitempty" bson:"wins,omitempty"`
	Losses int    `json:"losses,omitempty" bson:"losses,omitempty"`
}

// FromGraph converts a Graph to its serialization format.
// Candidates and edges are sorted for deterministic output.
func FromGraph(g *Graph) Document {
	doc := Document{
		Candidates: g.Candidates(),
		Edges:      make([]EdgeDoc, 0, g.EdgeCount()),
	}
	slices.Sort(doc.Candidates)

	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Wins: e.Wins, Losses: e.Losses})
	}
	slices.SortFunc(doc.Edges, func(a, b EdgeDoc) int {
		if a.From != b.From {
			if a.From < b.From {
				return -1
			}
			return 1
		}
		if a.To < b.To {
			return -1
		}
		if a.To > b.To {
			return 1
		}
		return 0
	})

	return doc
}

// ToGraph converts a Document back into a Graph.
// Returns an error if the document violates graph invariants (duplicate
// candidates, unknown edge endpoints, self-loops, or double edges).
func ToGraph(doc Document) (*Graph, error) {
	g := New()
	for _, id := range doc.Candidates {
		if err := g.AddNode(id); err != nil {
			return nil, fmt.Errorf("add candidate %s: %w", id, err)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(Edge{From: e.From, To: e.To, Wins: e.Wins, Losses: e.Losses}); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// MarshalGraph converts a Graph to JSON bytes with deterministic ordering.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a Graph as indented JSON to w.
func WriteGraph(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadGraph decodes a JSON dominance graph from r.
// Returns validation errors for documents that violate graph invariants.
func ReadGraph(r io.Reader) (*Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToGraph(doc)
}
