package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stableset/pkg/errors"
	"github.com/matzehuels/stableset/pkg/pipeline"
	"github.com/matzehuels/stableset/pkg/tournament"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	format  string // json or dot
	margins bool   // label DOT edges with pairwise tallies
	refresh bool   // bypass cache
	noCache bool   // disable caching
	output  string // output file path (stdout if empty)
}

// graphCommand creates the graph command for exporting the dominance graph.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <profile.json>",
		Short: "Export the majority dominance graph",
		Long: `Export the majority dominance graph built from a preference profile.

The graph contains one node per candidate and an edge x → y whenever a
strict majority of ballots prefers x to y. Output is JSON by default;
use --format dot for Graphviz DOT text.

Examples:
  stableset graph committee.json
  stableset graph committee.json --format dot --margins -o committee.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != pipeline.FormatJSON && opts.format != pipeline.FormatDOT {
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be json or dot)", opts.format)
			}
			return c.runGraph(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatJSON, "output format: json (default), dot")
	cmd.Flags().BoolVar(&opts.margins, "margins", false, "label DOT edges with pairwise tallies")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runGraph builds the dominance graph and writes it in the requested format.
func (c *CLI) runGraph(ctx context.Context, input string, opts graphOpts) error {
	p, err := loadProfile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	g, err := runner.BuildGraph(ctx, p, pipeline.Options{Refresh: opts.refresh, Logger: c.Logger})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built graph with %d candidates and %d edges", g.CandidateCount(), g.EdgeCount()))

	return writeGraphOutput(g, opts)
}

// writeGraphOutput serializes g to opts.output in the requested format.
func writeGraphOutput(g *tournament.Graph, opts graphOpts) error {
	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch opts.format {
	case pipeline.FormatDOT:
		if _, err := fmt.Fprint(out, tournament.ToDOT(g, tournament.DOTOptions{Margins: opts.margins})); err != nil {
			return err
		}
	default:
		if err := tournament.WriteGraph(g, out); err != nil {
			return err
		}
	}

	if opts.output != "" {
		printSuccess("Wrote graph")
		printFile(opts.output)
	}
	return nil
}
