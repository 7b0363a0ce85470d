// Package cache provides caching for analysis pipeline results.
//
// The cache operates on opaque byte slices keyed by strings, so any stage of
// the pipeline can store its serialized output. Three backends are provided:
//
//   - FileCache: persistent on-disk cache for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: no-op cache for tests or --no-cache runs
//
// Key construction goes through a Keyer so that all call sites agree on the
// key layout and on which options participate in the hash.
package cache

import (
	"context"
	"time"
)

// Default TTLs per content type. Analyses are pure functions of the profile
// and options, so the TTLs exist to bound disk usage, not for correctness.
const (
	TTLGraph    = 7 * 24 * time.Hour
	TTLAnalysis = 7 * 24 * time.Hour
)

// Cache is a generic byte cache with TTL support.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// GraphKeyOpts are the options that participate in a graph cache key.
// The cached graph is always the raw build output, so the struct is currently
// empty; it exists so adding a build option later does not change the Keyer
// interface.
type GraphKeyOpts struct{}

// AnalysisKeyOpts are the options that participate in an analysis cache key.
type AnalysisKeyOpts struct {
	Rules         []string
	MaxCandidates int
	Reduce        bool
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// GraphKey generates a key for a cached dominance graph.
	GraphKey(profileHash string, opts GraphKeyOpts) string

	// AnalysisKey generates a key for a cached full analysis.
	AnalysisKey(profileHash string, opts AnalysisKeyOpts) string
}

// DefaultKeyer is the standard key layout.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for a cached dominance graph.
func (k *DefaultKeyer) GraphKey(profileHash string, opts GraphKeyOpts) string {
	return hashKey("graph", profileHash, opts)
}

// AnalysisKey generates a key for a cached full analysis.
func (k *DefaultKeyer) AnalysisKey(profileHash string, opts AnalysisKeyOpts) string {
	return hashKey("analysis", profileHash, opts)
}
