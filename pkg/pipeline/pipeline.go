// Package pipeline provides the core analysis pipeline for Stableset.
//
// This package implements the complete build → analyze pipeline that
// can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: Construct the majority dominance graph from a preference profile
//  2. Analyze: Evaluate stability rules, the Condorcet winner, and Borda scores
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Rules:  stable.Rules(),
//	    Reduce: true,
//	}
//	result, err := runner.Execute(ctx, prof, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Analysis.Winner)
//
// Run the build stage only:
//
//	g, err := runner.BuildGraph(ctx, prof, opts)
package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stableset/pkg/borda"
	"github.com/matzehuels/stableset/pkg/cache"
	"github.com/matzehuels/stableset/pkg/errors"
	"github.com/matzehuels/stableset/pkg/stable"
	"github.com/matzehuels/stableset/pkg/tournament"
)

const (
	// DefaultMaxCandidates caps the candidate count accepted by the pipeline.
	// The coalition-based rules enumerate up to 2^(m-1) subsets per candidate,
	// so the ceiling keeps a single analysis tractable. API and CLI users can
	// raise it explicitly.
	DefaultMaxCandidates = 16
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatText = "text"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatText: true,
}

// Options contains all configuration for the analysis pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Analysis options
	Rules         []stable.Rule `json:"rules,omitempty"`          // Defaults to all rules
	MaxCandidates int           `json:"max_candidates,omitempty"` // Defaults to DefaultMaxCandidates
	Reduce        bool          `json:"reduce,omitempty"`         // Also compute the transitive reduction
	Refresh       bool          `json:"refresh,omitempty"`        // Bypass the cache and recompute

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Analysis is the complete, serializable output of one pipeline run.
// It is the unit stored in the cache and in the archive.
type Analysis struct {
	// ProfileHash is the content hash of the canonical profile encoding.
	ProfileHash string `json:"profile_hash" bson:"profile_hash"`

	// Candidates is the universe in first-appearance order.
	Candidates []string `json:"candidates" bson:"candidates"`

	// Ballots is the number of ballots in the profile.
	Ballots int `json:"ballots" bson:"ballots"`

	// Graph is the majority dominance graph.
	Graph tournament.Document `json:"graph" bson:"graph"`

	// Reduced is the transitive reduction, present only when requested
	// and the graph is acyclic.
	Reduced *tournament.Document `json:"reduced,omitempty" bson:"reduced,omitempty"`

	// Acyclic reports whether the dominance graph has no majority cycles.
	Acyclic bool `json:"acyclic" bson:"acyclic"`

	// Sets holds the members of each evaluated stability rule, sorted.
	Sets map[stable.Rule][]string `json:"sets" bson:"sets"`

	// Winner is the Condorcet winner, empty when none exists.
	Winner string `json:"winner,omitempty" bson:"winner,omitempty"`

	// Paradox reports that no Condorcet winner exists.
	Paradox bool `json:"paradox" bson:"paradox"`

	// Borda is the Borda ranking, descending by score.
	Borda []borda.Score `json:"borda" bson:"borda"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Analysis is the complete analysis output.
	Analysis *Analysis

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CandidateCount int
	BallotCount    int
	EdgeCount      int
	BuildTime      time.Duration
	AnalyzeTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GraphHit    bool // Whether the dominance graph came from cache
	AnalysisHit bool // Whether the full analysis came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, dot, text)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if len(o.Rules) == 0 {
		o.Rules = stable.Rules()
	}
	for _, r := range o.Rules {
		if !r.Valid() {
			return errors.New(errors.ErrCodeInvalidRule, "unknown stability rule: %q", r)
		}
	}

	if o.MaxCandidates == 0 {
		o.MaxCandidates = DefaultMaxCandidates
	}
	if o.MaxCandidates < 1 {
		return errors.New(errors.ErrCodeInvalidProfile, "max_candidates must be positive, got %d", o.MaxCandidates)
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// GraphKeyOpts returns cache key options for the build stage.
func (o *Options) GraphKeyOpts() cache.GraphKeyOpts {
	return cache.GraphKeyOpts{}
}

// AnalysisKeyOpts returns cache key options for the analyze stage.
func (o *Options) AnalysisKeyOpts() cache.AnalysisKeyOpts {
	rules := make([]string, len(o.Rules))
	for i, r := range o.Rules {
		rules[i] = string(r)
	}
	return cache.AnalysisKeyOpts{
		Rules:         rules,
		MaxCandidates: o.MaxCandidates,
		Reduce:        o.Reduce,
	}
}

// MarshalAnalysis serializes an analysis to canonical JSON.
func MarshalAnalysis(a *Analysis) ([]byte, error) {
	return json.Marshal(a)
}

// UnmarshalAnalysis deserializes an analysis from JSON.
func UnmarshalAnalysis(data []byte) (*Analysis, error) {
	var a Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
