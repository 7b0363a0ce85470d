package profile

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptyProfile is returned by [New] when the profile contains no ballots.
	// An analysis over zero voters has no meaningful majority relation.
	ErrEmptyProfile = errors.New("profile must contain at least one ballot")

	// ErrEmptyCandidate is returned by [New] when a ballot lists an empty
	// candidate identifier. All candidates must have non-empty identifiers.
	ErrEmptyCandidate = errors.New("candidate ID must not be empty")

	// ErrDuplicateCandidate is returned by [New] when a ballot ranks the same
	// candidate more than once. Ballots must be strict orders.
	ErrDuplicateCandidate = errors.New("duplicate candidate in ballot")
)

// Ballot is one voter's strict ranking of candidates, best to worst.
// A ballot may omit candidates from the universe (partial ranking) but must
// never list the same candidate twice.
type Ballot []string

// Profile is an immutable collection of ballots over a candidate universe.
// The universe is the union of all candidate IDs seen across ballots, in
// order of first appearance.
//
// A Profile is constructed once with [New] and never mutated afterwards.
// All derived values (dominance graph, stable sets, Borda scores) are
// recomputed from scratch; nothing is cached inside the profile.
type Profile struct {
	ballots    []Ballot
	candidates []string         // universe in first-appearance order
	index      map[string]int   // candidate -> universe position
	ranks      []map[string]int // per ballot: candidate -> rank position
}

// New validates the ballots and builds a Profile.
// Returns ErrEmptyProfile if ballots is empty, ErrEmptyCandidate if a ballot
// lists an empty ID, or ErrDuplicateCandidate if a ballot ranks the same
// candidate twice. Errors are wrapped with the ballot index and candidate ID.
//
// The input slices are copied; callers may reuse them after New returns.
func New(ballots []Ballot) (*Profile, error) {
	if len(ballots) == 0 {
		return nil, ErrEmptyProfile
	}

	p := &Profile{
		ballots: make([]Ballot, len(ballots)),
		index:   make(map[string]int),
		ranks:   make([]map[string]int, len(ballots)),
	}

	for i, b := range ballots {
		seen := make(map[string]int, len(b))
		for pos, id := range b {
			if id == "" {
				return nil, fmt.Errorf("ballot %d, position %d: %w", i, pos, ErrEmptyCandidate)
			}
			if _, dup := seen[id]; dup {
				return nil, fmt.Errorf("ballot %d: candidate %q: %w", i, id, ErrDuplicateCandidate)
			}
			seen[id] = pos
			if _, known := p.index[id]; !known {
				p.index[id] = len(p.candidates)
				p.candidates = append(p.candidates, id)
			}
		}
		p.ballots[i] = slices.Clone(b)
		p.ranks[i] = seen
	}

	return p, nil
}

// Ballots returns a copy of all ballots in voter order.
func (p *Profile) Ballots() []Ballot {
	out := make([]Ballot, len(p.ballots))
	for i, b := range p.ballots {
		out[i] = slices.Clone(b)
	}
	return out
}

// BallotCount returns the number of ballots (voters) in the profile.
func (p *Profile) BallotCount() int { return len(p.ballots) }

// Candidates returns the candidate universe in first-appearance order.
// The returned slice is a copy and can be modified freely.
func (p *Profile) Candidates() []string { return slices.Clone(p.candidates) }

// CandidateCount returns the size of the candidate universe.
func (p *Profile) CandidateCount() int { return len(p.candidates) }

// Contains reports whether id is part of the candidate universe.
func (p *Profile) Contains(id string) bool {
	_, ok := p.index[id]
	return ok
}

// Position returns the candidate's first-appearance position in the universe
// and true, or 0 and false if the candidate is unknown. Positions provide the
// deterministic tie-break order used for presentation.
func (p *Profile) Position(id string) (int, bool) {
	pos, ok := p.index[id]
	return pos, ok
}

// Rank returns the 0-indexed rank of the candidate on the given ballot and
// true, or 0 and false if the ballot does not rank the candidate.
// Ballot indices outside [0, BallotCount) also report false.
func (p *Profile) Rank(ballot int, id string) (int, bool) {
	if ballot < 0 || ballot >= len(p.ranks) {
		return 0, false
	}
	r, ok := p.ranks[ballot][id]
	return r, ok
}

// Prefers reports whether the given ballot ranks a strictly before b.
// Ballots that do not rank both candidates report false: such ballots are
// excluded from the pairwise tally for the pair (a, b).
func (p *Profile) Prefers(ballot int, a, b string) bool {
	ra, okA := p.Rank(ballot, a)
	rb, okB := p.Rank(ballot, b)
	return okA && okB && ra < rb
}
