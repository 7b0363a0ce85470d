package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stableset/pkg/stable"
)

// rulesCommand creates the rules command listing supported stability rules.
func (c *CLI) rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the supported stability rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range stable.Rules() {
				printKeyValue(string(r), "")
				printDetail("%s", stable.Explanation(r))
			}
			return nil
		},
	}
}
