package cmd

import (
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/oriscan"
	"github.com/spf13/cobra"
)

// skewCmd is for the GC skew of the genome, per window or cumulative.
var skewCmd = &cobra.Command{
	Use:                        "skew",
	Short:                      "Calculate and plot GC skew",
	RunE:                       oriscan.SkewCmd,
	SuggestionsMinimumDistance: 2,
	Example: `  oriscan skew --in genomic.fa
  oriscan skew --cumulative -o cumulative.png`,
	Long: `Calculate the GC skew, (G-C)/(G+C), of windows along the genome and plot it.

With --cumulative the running sum of the window skews is reported instead.
Its minimum usually marks the origin of replication.`,
}

func init() {
	windowFlags(skewCmd.Flags(), 5000, 500)
	skewCmd.Flags().Bool("cumulative", false, "report the running sum of the skew")
	skewCmd.Flags().StringP("out", "o", "", "plot path (default \"gc_skew_plot.png\" or \"cumulative_skew_plot.png\")")
	skewCmd.Flags().Bool("no-plot", false, "don't write a plot")
	bindFlags(skewCmd.Flags(), "skew", "window", "step", "cumulative", "out", "no-plot")

	RootCmd.AddCommand(skewCmd)
}
