package cmd

import (
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/oriscan"
	"github.com/spf13/cobra"
)

// oriCmd is for predicting the origin of replication.
var oriCmd = &cobra.Command{
	Use:                        "ori",
	Short:                      "Predict the origin of replication",
	RunE:                       oriscan.OriCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  oriscan ori --in genomic.fa -k 9 --flank 500",
	Long: `Predict the origin of replication (ORI) as the window with the lowest
GC skew, then list the most frequent k-mers in that window and its flanks.
Frequent k-mers near the ORI are DnaA box candidates.`,
}

func init() {
	oriCmd.Flags().IntP("k", "k", 8, "k-mer length")
	windowFlags(oriCmd.Flags(), 5000, 500)
	oriCmd.Flags().Int("flank", 1000, "bases scanned on each side of the candidate window")
	oriCmd.Flags().Int("top", 5, "number of frequent k-mers listed")
	oriCmd.Flags().Bool("cumulative", false, "use the cumulative skew minimum")
	bindFlags(oriCmd.Flags(), "ori", "k", "window", "step", "flank", "top", "cumulative")

	RootCmd.AddCommand(oriCmd)
}
