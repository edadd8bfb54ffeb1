package cmd

import (
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/oriscan"
	"github.com/spf13/cobra"
)

// clumpsCmd is for finding k-mers that cluster in a short stretch of the genome.
var clumpsCmd = &cobra.Command{
	Use:                        "clumps",
	Short:                      "Find k-mers forming clumps",
	RunE:                       oriscan.ClumpsCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  oriscan clumps --in genomic.fa -k 9 -L 500 -t 3",
	Long: `Find every k-mer that occurs at least t times within some window of
length L of the genome. The window slides one base at a time and its k-mer
counts are updated rather than recounted.`,
	Aliases: []string{"clump"},
}

func init() {
	clumpsCmd.Flags().IntP("k", "k", 8, "k-mer length")
	clumpsCmd.Flags().IntP("window", "L", 1000, "window length (bp) a clump has to fit in")
	clumpsCmd.Flags().IntP("threshold", "t", 3, "minimum occurrences in a window")
	clumpsCmd.Flags().Int("show", 10, "number of clumps listed in the text report (0 for all)")
	bindFlags(clumpsCmd.Flags(), "clumps", "k", "window", "threshold", "show")

	RootCmd.AddCommand(clumpsCmd)
}
