package cmd

import (
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/oriscan"
	"github.com/spf13/cobra"
)

// kmersCmd is for counting every k-mer of a sequence or of a FASTA file.
var kmersCmd = &cobra.Command{
	Use:                        "kmers [sequence] ... [sequenceN]",
	Short:                      "Count k-mers",
	RunE:                       oriscan.KmersCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  oriscan kmers ATGCGATCGATCGATCG -k 3",
	Long: `Count the occurrences of every k-mer.

Sequences passed as arguments are counted directly. Without arguments every
record in the input file is counted. K-mers are listed in the order they
were first seen.`,
}

func init() {
	kmersCmd.Flags().IntP("k", "k", 3, "k-mer length")
	bindFlags(kmersCmd.Flags(), "kmers", "k")

	RootCmd.AddCommand(kmersCmd)
}
