package cmd

import (
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/oriscan"
	"github.com/spf13/cobra"
)

// enrichmentCmd is for plotting where the most frequent k-mer is concentrated.
var enrichmentCmd = &cobra.Command{
	Use:                        "enrichment",
	Short:                      "Plot the density of the most frequent k-mer",
	RunE:                       oriscan.EnrichmentCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  oriscan enrichment --in genomic.fa -o ori_plot.png",
	Long: `Find the most frequent k-mers of the genome and plot how many times the
first of them occurs in each window along the genome.`,
	Aliases: []string{"density"},
}

func init() {
	enrichmentCmd.Flags().IntP("k", "k", 8, "k-mer length")
	windowFlags(enrichmentCmd.Flags(), 5000, 500)
	enrichmentCmd.Flags().Int("top", 3, "number of frequent k-mers listed")
	enrichmentCmd.Flags().StringP("out", "o", "ori_plot.png", "plot path")
	enrichmentCmd.Flags().Bool("no-plot", false, "don't write a plot")
	bindFlags(enrichmentCmd.Flags(), "enrichment", "k", "window", "step", "top", "out", "no-plot")

	RootCmd.AddCommand(enrichmentCmd)
}
