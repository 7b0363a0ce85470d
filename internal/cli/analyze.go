package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stableset/pkg/pipeline"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	rules         string // comma-separated rule selection
	maxCandidates int    // candidate ceiling (0 = config/pipeline default)
	reduce        bool   // also compute the transitive reduction
	refresh       bool   // bypass cache
	noCache       bool   // disable caching entirely
	explain       bool   // print rule explanations
	output        string // JSON output file ("" = human-readable stdout)
}

// analyzeCommand creates the analyze command, the main entry point of the CLI.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze <profile.json>",
		Short: "Analyze a preference profile for stable sets",
		Long: `Analyze a preference profile for stable sets.

The profile is a JSON file listing ballots, each a ranking of candidate
identifiers from most to least preferred:

  {"ballots": [["A", "B", "C"], ["B", "A", "C"], ["A", "C", "B"]]}

The command builds the majority dominance graph, evaluates the stability
rules, determines the Condorcet winner, and computes Borda scores.
Results are cached locally for faster subsequent runs.

Examples:
  stableset analyze committee.json
  stableset analyze committee.json --rules VanDeemen,Duggan
  stableset analyze committee.json --reduce -o analysis.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.rules, "rules", "", "stability rules to evaluate (comma-separated, default all)")
	cmd.Flags().IntVar(&opts.maxCandidates, "max-candidates", 0, "maximum candidate count (default 16)")
	cmd.Flags().BoolVar(&opts.reduce, "reduce", false, "also compute the transitive reduction")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "print a short explanation of each rule")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the analysis as JSON to a file")

	return cmd
}

// runAnalyze executes the pipeline for the given profile file.
func (c *CLI) runAnalyze(ctx context.Context, input string, opts analyzeOpts) error {
	p, err := loadProfile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	maxCandidates := opts.maxCandidates
	if maxCandidates == 0 {
		maxCandidates = c.Config.MaxCandidates
	}

	pipeOpts := pipeline.Options{
		Rules:         parseRules(opts.rules),
		MaxCandidates: maxCandidates,
		Reduce:        opts.reduce,
		Refresh:       opts.refresh,
		Logger:        c.Logger,
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Analyzing %d candidates...", p.CandidateCount()))
	spinner.Start()

	result, err := runner.Execute(ctx, p, pipeOpts)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	spinner.Stop()

	if opts.output != "" {
		return c.writeAnalysis(result, opts.output)
	}

	printAnalysis(result.Analysis, opts.explain)
	printStats(result.Stats.CandidateCount, result.Stats.EdgeCount, result.CacheInfo.AnalysisHit)
	printNewline()
	printNextStep("Export the graph", fmt.Sprintf("stableset graph %s --format dot", input))
	return nil
}

// writeAnalysis serializes the analysis as JSON to path.
func (c *CLI) writeAnalysis(result *pipeline.Result, path string) error {
	data, err := pipeline.MarshalAnalysis(result.Analysis)
	if err != nil {
		return err
	}

	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(append(data, '\n')); err != nil {
		return err
	}

	printSuccess("Wrote analysis")
	printFile(path)
	return nil
}
