package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkplot/pkg/pipeline"
)

// plotCommand creates the plot command: draw the map, write the diagram and
// print statistics.
func (c *CLI) plotCommand() *cobra.Command {
	var flags inputFlags
	var formats string
	outDir := "."

	cmd := &cobra.Command{
		Use:   "plot [MAP FAI]",
		Short: "Plot a linkage map to " + pipeline.FileName(pipeline.FormatSVG),
		Long: `Plot a linkage map against the physical sequences in a FASTA index.

MAP is tab-delimited with the header "group position locus"; each locus is
<sequence>_<position>. FAI is a FASTA index (samtools faidx). The diagram is
written to ` + pipeline.OutputBase + `.<format> in the working directory.`,
		Args: mapArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(args, formats)
			if err != nil {
				return err
			}
			return c.runPlot(cmd, opts, outDir)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")

	return cmd
}

func (c *CLI) runPlot(cmd *cobra.Command, opts pipeline.Options, outDir string) error {
	ctx := contextOf(cmd)
	logger := loggerFromContext(ctx)
	logger.Infof("Plotting %s", opts.MapPath)

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}

	paths, err := pipeline.WriteArtifacts(outDir, result)
	if err != nil {
		return err
	}
	prog.done("Drew linkage map")

	for _, name := range result.Unmatched {
		printWarning("linkage group %s was not found and was not reversed", name)
	}
	printSuccess("Plotted %d linkage groups", result.Stats.Groups)
	for _, p := range paths {
		printFile(p)
	}
	printNewline()
	printSummary(result.Summary)
	return nil
}
