package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkplot/pkg/pipeline"
	"github.com/matzehuels/linkplot/pkg/stats"
)

// statsCommand creates the stats command, which loads the map and prints
// statistics without drawing anything.
func (c *CLI) statsCommand() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "stats [MAP FAI]",
		Short: "Print linkage map statistics",
		Args:  mapArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(args, "")
			if err != nil {
				return err
			}
			return c.runStats(cmd, opts)
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runStats(cmd *cobra.Command, opts pipeline.Options) error {
	ctx := contextOf(cmd)
	logger := loggerFromContext(ctx)

	m, unmatched, err := pipeline.NewRunner(logger).Load(ctx, opts)
	if err != nil {
		return err
	}
	summary, err := stats.Compute(m)
	if err != nil {
		return err
	}

	for _, name := range unmatched {
		printWarning("linkage group %s was not found and was not reversed", name)
	}
	printSummary(summary)
	return nil
}
