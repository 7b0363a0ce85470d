package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful in server deployments where different users or contexts
// need separate cache namespaces.
//
// Example usage:
//
//	// User-specific keys for private analyses
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Global keys for shared results
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GraphKey generates a prefixed key for dominance graph caching.
func (k *ScopedKeyer) GraphKey(profileHash string, opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(profileHash, opts)
}

// AnalysisKey generates a prefixed key for analysis caching.
func (k *ScopedKeyer) AnalysisKey(profileHash string, opts AnalysisKeyOpts) string {
	return k.prefix + k.inner.AnalysisKey(profileHash, opts)
}
