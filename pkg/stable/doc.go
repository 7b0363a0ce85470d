// Package stable evaluates stable-set predicates over dominance graphs.
//
// # Overview
//
// Social-choice theory defines several notions of a "stable" or
// "undominated" set of candidates under pairwise majority comparison. This
// package implements six of them - Van Deemen, W-Stable, Duggan, Extended
// Stable, Generalized Stable, and M-Stable - plus Condorcet winner
// detection. All predicates are pure functions of a read-only
// [tournament.Graph]; they share no state and may run concurrently.
//
// # The Rules
//
//   - [VanDeemen]: no individual candidate defeats x.
//   - [WStable]: the same condition under its literature name.
//   - [Duggan]: Van Deemen plus x defeats at least one candidate.
//   - [ExtendedStable]: for every other candidate z, some y≠z fails to
//     defeat x (a deliberately non-standard three-quantifier formulation).
//   - [GeneralizedStable]: no coalition of opponents uniformly defeats x.
//   - [MStable]: no coalition drawn from the candidates x fails to beat
//     uniformly defeats x.
//
// # Cost Model
//
// The first four rules are polynomial. Generalized and M-Stable enumerate
// coalitions and are exponential in the worst case; enumeration runs over
// increasing coalition sizes and stops at the first dominating coalition
// per candidate, which keeps typical inputs cheap. Both accept a context
// and abort between coalition sizes on cancellation. Callers with large
// candidate universes should impose a ceiling up front (the pipeline layer
// does).
//
// Empty sets are valid results, reported as empty slices, never as errors.
package stable
