package oriscan

import (
	"fmt"
	"io"

	"github.com/Dhanushsk16/BBL434-DhanushSk/config"
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/fasta"
	"github.com/spf13/cobra"
)

// RecordSummary is the ID and length of one FASTA record.
type RecordSummary struct {
	ID     string `json:"id"`
	Length int    `json:"length"`
}

// RecordsReport lists every record in a file.
type RecordsReport struct {
	File    string          `json:"file"`
	Count   int             `json:"count"`
	Records []RecordSummary `json:"records"`
}

func (r *RecordsReport) writeText(w io.Writer) error {
	for _, rec := range r.Records {
		fmt.Fprintf(w, "Sequence ID: %s\n", rec.ID)
		fmt.Fprintf(w, "Sequence Length: %d\n", rec.Length)
	}
	_, err := fmt.Fprintf(w, "%s\n", heading.Render(fmt.Sprintf("Number of FASTA records in '%s': %d", r.File, r.Count)))
	return err
}

// RecordsCmd lists the records of the input file.
func RecordsCmd(cmd *cobra.Command, args []string) error {
	conf, err := parseCmdConfig(cmd.Name())
	if err != nil {
		return err
	}
	return Records(cmd.OutOrStdout(), conf)
}

// Records reports the ID and length of every record in the input.
func Records(w io.Writer, conf *config.Config) error {
	path := conf.Input(config.DefaultRecordsInput)
	records, err := fasta.Read(path)
	if err != nil {
		return err
	}

	r := &RecordsReport{File: path, Count: len(records)}
	for _, rec := range records {
		r.Records = append(r.Records, RecordSummary{ID: rec.ID, Length: rec.Len()})
	}
	return write(w, conf.JSON, r)
}
