// Package tournament builds and queries majority dominance graphs.
//
// # Overview
//
// Given a preference profile, [Build] performs pairwise majority comparison
// over every pair of candidates and produces a [Graph]: a directed graph
// where an edge a→b means a strict majority of voters rank a before b.
// The graph is the substrate for all stable-set and Condorcet analysis.
//
// # Invariants
//
// The structure of pairwise majority guarantees, and [Graph.AddEdge]
// enforces, that the graph has no self-loops and no double edges: for any
// pair (a, b) at most one of a→b, b→a exists. Absence of both means a tie
// or insufficient support. These invariants are what make the Condorcet
// winner unique when it exists.
//
// # Partial Ballots
//
// Ballots omitting a candidate are excluded from that candidate's pairwise
// tallies, but the strict-majority threshold stays at half the full profile
// size. A candidate ranked on no shared ballots is an isolated node with no
// edges in or out.
//
// # Cycles and Reduction
//
// Majority preferences may cycle (the Condorcet paradox); [Graph.IsAcyclic]
// detects this in O(N+E). [TransitiveReduction] computes the Hasse diagram
// of an acyclic graph and fails with [ErrNotAcyclic] on cyclic input rather
// than producing an approximate result.
//
// # Serialization
//
// [MarshalGraph]/[ReadGraph] provide deterministic JSON round-trips, and
// [ToDOT] emits Graphviz DOT text for external rendering.
package tournament
