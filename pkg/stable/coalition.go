package stable

import (
	"context"

	"github.com/matzehuels/stableset/pkg/tournament"
)

// combinations enumerates the size-r index combinations of n elements in
// lexicographic order, iteratively rather than by recursive search.
type combinations struct {
	n, r  int
	idx   []int
	first bool
	done  bool
}

// newCombinations creates an enumerator over C(n, r) combinations.
// r outside [1, n] yields an exhausted enumerator.
func newCombinations(n, r int) *combinations {
	c := &combinations{n: n, r: r, first: true}
	if r < 1 || r > n {
		c.done = true
		return c
	}
	c.idx = make([]int, r)
	for i := range c.idx {
		c.idx[i] = i
	}
	return c
}

// next returns the next combination and true, or nil and false when the
// enumeration is exhausted. The returned slice is reused between calls and
// must not be retained.
func (c *combinations) next() ([]int, bool) {
	if c.done {
		return nil, false
	}
	if c.first {
		c.first = false
		return c.idx, true
	}

	// Advance the rightmost index that can still move.
	i := c.r - 1
	for i >= 0 && c.idx[i] == c.n-c.r+i {
		i--
	}
	if i < 0 {
		c.done = true
		return nil, false
	}
	c.idx[i]++
	for j := i + 1; j < c.r; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
	return c.idx, true
}

// anyCoalitionDominates reports whether any nonempty coalition drawn from
// pool has every member defeating target. Coalition sizes are enumerated
// from 1 upward and the search stops at the first dominating coalition, so
// the common case (a single defeater) costs O(|pool|) despite the O(2^|pool|)
// worst case. The context is checked once per coalition size.
func anyCoalitionDominates(ctx context.Context, g *tournament.Graph, target string, pool []string) (bool, error) {
	for r := 1; r <= len(pool); r++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		enum := newCombinations(len(pool), r)
		for combo, ok := enum.next(); ok; combo, ok = enum.next() {
			dominates := true
			for _, i := range combo {
				if !g.HasEdge(pool[i], target) {
					dominates = false
					break
				}
			}
			if dominates {
				return true, nil
			}
		}
	}
	return false, nil
}
