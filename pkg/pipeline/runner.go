package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/stableset/pkg/borda"
	"github.com/matzehuels/stableset/pkg/cache"
	"github.com/matzehuels/stableset/pkg/errors"
	"github.com/matzehuels/stableset/pkg/profile"
	"github.com/matzehuels/stableset/pkg/stable"
	"github.com/matzehuels/stableset/pkg/tournament"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → analyze pipeline with caching.
func (r *Runner) Execute(ctx context.Context, p *profile.Profile, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	if n := p.CandidateCount(); n > opts.MaxCandidates {
		return nil, errors.New(errors.ErrCodeTooManyCandidates,
			"profile has %d candidates, limit is %d", n, opts.MaxCandidates)
	}

	profileData, err := profile.MarshalProfile(p)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize profile")
	}
	profileHash := cache.Hash(profileData)

	result := &Result{
		Stats: Stats{
			CandidateCount: p.CandidateCount(),
			BallotCount:    p.BallotCount(),
		},
	}

	// Try the full-analysis cache first (unless refresh requested)
	analysisKey := r.Keyer.AnalysisKey(profileHash, opts.AnalysisKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, analysisKey); err == nil && hit {
			if a, err := UnmarshalAnalysis(data); err == nil {
				result.Analysis = a
				result.Stats.EdgeCount = len(a.Graph.Edges)
				result.CacheInfo.AnalysisHit = true
				opts.Logger.Info("analysis cache hit", "profile", shortHash(profileHash))
				return result, nil
			}
		}
	}

	// Stage 1: Build
	buildStart := time.Now()
	g, graphHit, err := r.buildWithCacheInfo(ctx, p, profileHash, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.EdgeCount = g.EdgeCount()
	result.CacheInfo.GraphHit = graphHit

	opts.Logger.Info("built dominance graph",
		"candidates", g.CandidateCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.BuildTime)

	// Stage 2: Analyze
	analyzeStart := time.Now()
	analysis, err := r.analyze(ctx, p, g, profileHash, opts)
	if err != nil {
		return nil, err
	}
	result.Analysis = analysis
	result.Stats.AnalyzeTime = time.Since(analyzeStart)

	opts.Logger.Info("analyzed profile",
		"rules", len(opts.Rules),
		"winner", analysis.Winner,
		"duration", result.Stats.AnalyzeTime)

	// Cache the result
	if data, err := MarshalAnalysis(analysis); err == nil {
		_ = r.Cache.Set(ctx, analysisKey, data, cache.TTLAnalysis)
	}

	return result, nil
}

// BuildGraph constructs the majority dominance graph with caching.
func (r *Runner) BuildGraph(ctx context.Context, p *profile.Profile, opts Options) (*tournament.Graph, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	profileData, err := profile.MarshalProfile(p)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize profile")
	}

	g, _, err := r.buildWithCacheInfo(ctx, p, cache.Hash(profileData), opts)
	return g, err
}

// buildWithCacheInfo builds the dominance graph, consulting the cache first.
// The bool return reports a cache hit.
func (r *Runner) buildWithCacheInfo(ctx context.Context, p *profile.Profile, profileHash string, opts Options) (*tournament.Graph, bool, error) {
	cacheKey := r.Keyer.GraphKey(profileHash, opts.GraphKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if g, err := tournament.ReadGraph(bytes.NewReader(data)); err == nil {
				return g, true, nil
			}
			// Corrupt entry, recompute
		}
	}

	g := tournament.Build(p)

	if data, err := tournament.MarshalGraph(g); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLGraph)
	}

	return g, false, nil
}

// analyze evaluates the requested rules, the Condorcet winner, Borda scores,
// and the optional transitive reduction. The rules run concurrently; each is
// a pure function of the graph.
func (r *Runner) analyze(ctx context.Context, p *profile.Profile, g *tournament.Graph, profileHash string, opts Options) (*Analysis, error) {
	analysis := &Analysis{
		ProfileHash: profileHash,
		Candidates:  g.Candidates(),
		Ballots:     p.BallotCount(),
		Graph:       tournament.FromGraph(g),
		Acyclic:     g.IsAcyclic(),
		Sets:        make(map[stable.Rule][]string, len(opts.Rules)),
		Borda:       borda.Ranking(p),
	}

	if winner, ok := stable.Winner(g); ok {
		analysis.Winner = winner
	} else {
		analysis.Paradox = true
	}

	members := make([][]string, len(opts.Rules))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, rule := range opts.Rules {
		i, rule := i, rule
		eg.Go(func() error {
			m, err := stable.Members(egCtx, rule, g)
			if err != nil {
				return err
			}
			members[i] = m
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "evaluate stability rules")
	}
	for i, rule := range opts.Rules {
		analysis.Sets[rule] = members[i]
	}

	if opts.Reduce && analysis.Acyclic {
		reduced, err := tournament.TransitiveReduction(g)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNotAcyclic, err, "transitive reduction")
		}
		doc := tournament.FromGraph(reduced)
		analysis.Reduced = &doc
	}

	return analysis, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger falls back to the runner's logger when the options carry none.
// Runs before validation so the discard default never masks the runner logger.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// shortHash truncates a content hash for log output.
func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
