package tournament

import (
	"bytes"
	"fmt"
)

// DOTOptions configures DOT serialization.
type DOTOptions struct {
	// Margins labels each edge with its pairwise tally (e.g. "5–3").
	// When false, edges are unlabeled.
	Margins bool
}

// ToDOT converts a dominance graph to Graphviz DOT text.
// The output is plain serialization - rendering it to an image is left to
// external tooling (dot, neato, or any Graphviz-compatible viewer).
//
// Candidates appear in insertion order, edges in insertion order, so the
// output is deterministic for a given graph.
func ToDOT(g *Graph, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dominance {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=lightblue, fontsize=18];\n")
	buf.WriteString("\n")

	for _, id := range g.Candidates() {
		fmt.Fprintf(&buf, "  %q;\n", id)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if opts.Margins {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"%d–%d\"];\n", e.From, e.To, e.Wins, e.Losses)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
