// Package profile represents voters' ranked preferences over candidates.
//
// # Overview
//
// A [Profile] is an ordered collection of [Ballot] values, each a strict
// ranking of (a subset of) the candidate universe, best to worst. The
// universe is the union of all candidate IDs seen across ballots, in order
// of first appearance. Profiles are immutable after construction: every
// downstream value (dominance graph, stable sets, Borda scores) is a pure
// function of the profile, recomputed from scratch per analysis.
//
// # Validation
//
// [New] rejects empty profiles and ballots that rank the same candidate
// twice. These are the only malformed-profile conditions; everything else
// (no Condorcet winner, empty stable sets) is a valid downstream outcome,
// not an input error.
//
// # Partial Ballots
//
// Ballots may omit candidates. Pairwise comparison helpers such as
// [Profile.Prefers] exclude ballots that do not rank both candidates of a
// pair; the majority threshold used by the graph builder stays at half the
// full profile size regardless.
//
// # Serialization
//
// The JSON format is a single "ballots" array of arrays, preserving voter
// and ranking order for round-trip fidelity. Use [ReadProfile]/[WriteProfile]
// for streams or the *File variants for paths. The encoded form is
// deterministic, making it suitable for content-addressed caching.
package profile
