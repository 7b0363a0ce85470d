package tournament

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the candidate ID is
	// empty. All candidates must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("candidate ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a candidate with
	// the same ID already exists in the graph. Candidate IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate candidate ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From
	// candidate does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source candidate")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To
	// candidate does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target candidate")

	// ErrSelfLoop is returned by [Graph.AddEdge] when From equals To.
	// A candidate cannot dominate itself.
	ErrSelfLoop = errors.New("dominance edge cannot be a self-loop")

	// ErrDoubleEdge is returned by [Graph.AddEdge] when an edge already exists
	// between the two candidates in either direction. Majority dominance is
	// antisymmetric: at most one of a→b, b→a can hold.
	ErrDoubleEdge = errors.New("edge already exists between candidates")

	// ErrNotAcyclic is returned by [TransitiveReduction] when the graph
	// contains a directed majority cycle. Transitive reduction is undefined
	// for cyclic graphs; callers should check [Graph.IsAcyclic] first.
	ErrNotAcyclic = errors.New("graph contains a majority cycle")
)

// Edge represents strict majority dominance: From defeats To on a strict
// majority of ballots ranking both. Wins and Losses carry the pairwise
// tallies (ballots preferring From and To respectively) for reporting.
type Edge struct {
	From   string // Dominating candidate ID
	To     string // Dominated candidate ID
	Wins   int    // Ballots ranking From before To
	Losses int    // Ballots ranking To before From
}

// Graph is a directed majority dominance graph over a candidate universe.
// Nodes are candidates; an edge a→b means a strictly majority-defeats b.
// The graph enforces the structural invariants of pairwise majority
// comparison at insertion time: no self-loops and no double edges.
//
// A Graph is built once per profile (see [Build]) and treated as read-only
// afterwards. The zero value is not usable - use [New].
// Graph is not safe for concurrent mutation; concurrent reads are fine.
type Graph struct {
	order    []string            // candidate IDs in insertion order
	nodes    map[string]struct{} // candidate membership
	edges    []Edge              // insertion order
	outgoing map[string][]string // candidate -> dominated IDs
	incoming map[string][]string // candidate -> dominator IDs
}

// New creates an empty dominance graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]struct{}),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a candidate to the graph.
// Returns ErrInvalidNodeID for an empty ID or ErrDuplicateNodeID if the
// candidate already exists. Candidates are kept in insertion order, which
// downstream consumers rely on for deterministic output.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[id] = struct{}{}
	g.order = append(g.order, id)
	return nil
}

// AddEdge adds a dominance edge between two existing candidates.
// Returns ErrSelfLoop if From equals To, ErrUnknownSourceNode or
// ErrUnknownTargetNode for missing endpoints, and ErrDoubleEdge if an edge
// already exists between the pair in either direction.
func (g *Graph) AddEdge(e Edge) error {
	if e.From == e.To {
		return ErrSelfLoop
	}
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if g.HasEdge(e.From, e.To) || g.HasEdge(e.To, e.From) {
		return ErrDoubleEdge
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// HasEdge reports whether from strictly majority-defeats to.
func (g *Graph) HasEdge(from, to string) bool {
	return slices.Contains(g.outgoing[from], to)
}

// Edge returns the edge from→to and true, or a zero Edge and false if no
// such edge exists.
func (g *Graph) Edge(from, to string) (Edge, bool) {
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			return e, true
		}
	}
	return Edge{}, false
}

// Candidates returns all candidate IDs in insertion order.
// The returned slice is a copy and can be modified freely.
func (g *Graph) Candidates() []string { return slices.Clone(g.order) }

// Contains reports whether the candidate exists in the graph.
func (g *Graph) Contains(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// CandidateCount returns the number of candidates in the graph.
func (g *Graph) CandidateCount() int { return len(g.order) }

// EdgeCount returns the number of dominance edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Dominated returns the IDs of candidates this candidate defeats.
// Returns nil if the candidate defeats nobody or doesn't exist. The returned
// slice should not be modified - use it as a read-only view.
func (g *Graph) Dominated(id string) []string { return g.outgoing[id] }

// Dominators returns the IDs of candidates that defeat this candidate.
// Returns nil if the candidate is undefeated or doesn't exist. The returned
// slice should not be modified - use it as a read-only view.
func (g *Graph) Dominators(id string) []string { return g.incoming[id] }

// OutDegree returns the number of candidates this candidate defeats.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of candidates defeating this candidate.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	out := New()
	for _, id := range g.order {
		_ = out.AddNode(id)
	}
	for _, e := range g.edges {
		_ = out.AddEdge(e)
	}
	return out
}

// IsAcyclic reports whether the graph contains no directed majority cycle.
// A false result signals a Condorcet paradox somewhere in the profile:
// some subset of candidates defeats each other in a cycle.
//
// Cycle detection runs in O(N+E) time using depth-first search with
// white/gray/black coloring.
func (g *Graph) IsAcyclic() bool {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, next := range g.outgoing[id] {
			switch color[next] {
			case white:
				dfs(next)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for _, id := range g.order {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return false
			}
		}
	}
	return true
}
