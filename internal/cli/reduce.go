package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stableset/pkg/errors"
	"github.com/matzehuels/stableset/pkg/pipeline"
	"github.com/matzehuels/stableset/pkg/tournament"
)

// reduceCommand creates the reduce command for transitive reduction.
func (c *CLI) reduceCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "reduce <graph.json>",
		Short: "Compute the transitive reduction of a dominance graph",
		Long: `Compute the transitive reduction of a dominance graph.

The reduction drops every edge already implied by transitivity, producing
the minimal graph with the same reachability. The input must be acyclic;
graphs with majority cycles are rejected.

Takes a graph JSON file as produced by 'graph'.

Examples:
  stableset reduce committee-graph.json
  stableset reduce committee-graph.json --format dot -o reduced.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != pipeline.FormatJSON && opts.format != pipeline.FormatDOT {
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be json or dot)", opts.format)
			}
			return c.runReduce(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatJSON, "output format: json (default), dot")
	cmd.Flags().BoolVar(&opts.margins, "margins", false, "label DOT edges with pairwise tallies")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runReduce loads the graph and writes its transitive reduction.
func (c *CLI) runReduce(input string, opts graphOpts) error {
	g, err := loadGraph(input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	reduced, err := tournament.TransitiveReduction(g)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNotAcyclic, err, "cannot reduce %s", input)
	}
	prog.done(fmt.Sprintf("Reduced %d edges to %d", g.EdgeCount(), reduced.EdgeCount()))

	return writeGraphOutput(reduced, opts)
}
