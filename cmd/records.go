package cmd

import (
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/oriscan"
	"github.com/spf13/cobra"
)

// recordsCmd is for listing the records of a (multi) FASTA file.
var recordsCmd = &cobra.Command{
	Use:                        "records",
	Short:                      "List the records in a FASTA file",
	RunE:                       oriscan.RecordsCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  oriscan records --in seq.mfa",
	Long: `List the ID and length of every record in a FASTA file,
followed by the number of records.`,
	Aliases: []string{"ls"},
}

func init() {
	RootCmd.AddCommand(recordsCmd)
}
