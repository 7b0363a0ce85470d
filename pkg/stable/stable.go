package stable

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/stableset/pkg/tournament"
)

// ErrUnknownRule is returned by [Members] for a rule name outside the six
// supported stable-set rules.
var ErrUnknownRule = errors.New("unknown stable-set rule")

// Rule names a stable-set membership predicate over a dominance graph.
type Rule string

// The six supported stable-set rules.
const (
	RuleVanDeemen         Rule = "VanDeemen"
	RuleWStable           Rule = "WStable"
	RuleDuggan            Rule = "Duggan"
	RuleExtendedStable    Rule = "ExtendedStable"
	RuleGeneralizedStable Rule = "GeneralizedStable"
	RuleMStable           Rule = "MStable"
)

// Rules returns all six rules in canonical evaluation order.
func Rules() []Rule {
	return []Rule{
		RuleVanDeemen,
		RuleWStable,
		RuleDuggan,
		RuleExtendedStable,
		RuleGeneralizedStable,
		RuleMStable,
	}
}

// explanations are the one-line domain descriptions shown next to each set.
var explanations = map[Rule]string{
	RuleVanDeemen:         "A candidate that is undefeated by any other individual candidate.",
	RuleWStable:           "A candidate not defeated by any single alternative (weak stability).",
	RuleDuggan:            "A candidate undefeated and defeating at least one other candidate.",
	RuleExtendedStable:    "A candidate that cannot be defeated by any coalition when evaluated pairwise.",
	RuleGeneralizedStable: "A candidate not defeated by any coalition of opponents.",
	RuleMStable:           "A candidate not defeated by any coalition drawn from the candidates it fails to beat.",
}

// Explanation returns the one-line description of a rule, or "" for an
// unknown rule.
func Explanation(r Rule) string { return explanations[r] }

// Valid reports whether r is one of the six supported rules.
func (r Rule) Valid() bool {
	_, ok := explanations[r]
	return ok
}

// VanDeemen returns the candidates with no incoming dominance edge: nobody
// individually defeats them. O(N) over the adjacency index.
func VanDeemen(g *tournament.Graph) []string {
	var out []string
	for _, x := range g.Candidates() {
		if g.InDegree(x) == 0 {
			out = append(out, x)
		}
	}
	slices.Sort(out)
	return out
}

// WStable returns the W-stable set. The membership condition is identical to
// [VanDeemen] - no single alternative defeats the candidate - but the rule is
// kept under its own name because the social-choice literature treats the two
// as distinct concepts.
func WStable(g *tournament.Graph) []string {
	var out []string
	for _, x := range g.Candidates() {
		defeated := false
		for _, y := range g.Candidates() {
			if y != x && g.HasEdge(y, x) {
				defeated = true
				break
			}
		}
		if !defeated {
			out = append(out, x)
		}
	}
	slices.Sort(out)
	return out
}

// Duggan returns the candidates that are undefeated AND defeat at least one
// other candidate. Duggan membership implies Van Deemen membership.
func Duggan(g *tournament.Graph) []string {
	var out []string
	for _, x := range g.Candidates() {
		if g.InDegree(x) == 0 && g.OutDegree(x) > 0 {
			out = append(out, x)
		}
	}
	slices.Sort(out)
	return out
}

// ExtendedStable returns the extended stable set: x is a member iff for
// every other candidate z there exists some candidate y (y≠z) that does not
// defeat x. The three-quantifier formulation is deliberate; collapsing it
// changes behavior on small graphs.
func ExtendedStable(g *tournament.Graph) []string {
	candidates := g.Candidates()
	var out []string
	for _, x := range candidates {
		member := true
		for _, z := range candidates {
			if z == x {
				continue
			}
			witness := false
			for _, y := range candidates {
				if y != z && !g.HasEdge(y, x) {
					witness = true
					break
				}
			}
			if !witness {
				member = false
				break
			}
		}
		if member {
			out = append(out, x)
		}
	}
	slices.Sort(out)
	return out
}

// GeneralizedStable returns the generalized stable set: x is a member iff no
// nonempty coalition of the other candidates has every member defeating x.
//
// Coalition enumeration is exponential in the worst case (O(2^(N-1)) per
// candidate) and short-circuits on the first dominating coalition found.
// The context is checked between coalition sizes; cancellation returns
// ctx.Err().
func GeneralizedStable(ctx context.Context, g *tournament.Graph) ([]string, error) {
	candidates := g.Candidates()
	var out []string
	for _, x := range candidates {
		pool := others(candidates, x)
		dominated, err := anyCoalitionDominates(ctx, g, x, pool)
		if err != nil {
			return nil, err
		}
		if !dominated {
			out = append(out, x)
		}
	}
	slices.Sort(out)
	return out, nil
}

// MStable returns the M-stable set. For each candidate x, let U(x) be the
// candidates x does not defeat; x is M-stable iff no nonempty subset of U(x)
// has every member defeating x. Same enumeration discipline as
// [GeneralizedStable], bounded by O(2^|U(x)|) per candidate.
func MStable(ctx context.Context, g *tournament.Graph) ([]string, error) {
	candidates := g.Candidates()
	var out []string
	for _, x := range candidates {
		var pool []string
		for _, y := range candidates {
			if y != x && !g.HasEdge(x, y) {
				pool = append(pool, y)
			}
		}
		dominated, err := anyCoalitionDominates(ctx, g, x, pool)
		if err != nil {
			return nil, err
		}
		if !dominated {
			out = append(out, x)
		}
	}
	slices.Sort(out)
	return out, nil
}

// Members evaluates a single rule over the graph.
// Returns ErrUnknownRule for rule names outside the supported six.
func Members(ctx context.Context, r Rule, g *tournament.Graph) ([]string, error) {
	switch r {
	case RuleVanDeemen:
		return VanDeemen(g), nil
	case RuleWStable:
		return WStable(g), nil
	case RuleDuggan:
		return Duggan(g), nil
	case RuleExtendedStable:
		return ExtendedStable(g), nil
	case RuleGeneralizedStable:
		return GeneralizedStable(ctx, g)
	case RuleMStable:
		return MStable(ctx, g)
	default:
		return nil, fmt.Errorf("%q: %w", r, ErrUnknownRule)
	}
}

// Compute evaluates all six rules over the graph.
// Each resulting set is sorted; an empty set is a valid outcome and is
// reported as an empty (nil) slice, never an error.
func Compute(ctx context.Context, g *tournament.Graph) (map[Rule][]string, error) {
	out := make(map[Rule][]string, len(Rules()))
	for _, r := range Rules() {
		members, err := Members(ctx, r, g)
		if err != nil {
			return nil, err
		}
		out[r] = members
	}
	return out, nil
}

// others returns all candidates except x, preserving order.
func others(candidates []string, x string) []string {
	out := make([]string, 0, len(candidates)-1)
	for _, y := range candidates {
		if y != x {
			out = append(out, y)
		}
	}
	return out
}
