package oriscan

import (
	"fmt"
	"io"
	"strings"

	"github.com/Dhanushsk16/BBL434-DhanushSk/config"
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/fasta"
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/scan"
	"github.com/spf13/cobra"
)

// KmersReport is the frequency of every k-mer across the input.
type KmersReport struct {
	// Source is the input file, or "arguments" for literal sequences
	Source string `json:"source"`

	K     int              `json:"k"`
	Total int              `json:"total"`
	Kmers []scan.KmerCount `json:"kmers"`
}

func (r *KmersReport) writeText(w io.Writer) error {
	fmt.Fprintln(w, heading.Render(fmt.Sprintf("Dictionary of unique %d-mers and their counts:", r.K)))

	tw := newTable(w)
	for _, kc := range r.Kmers {
		fmt.Fprintf(tw, "%s\t%d\n", kc.Kmer, kc.Count)
	}
	return tw.Flush()
}

// KmersCmd counts the k-mers of literal sequences passed as arguments, or of
// every record in the input file.
func KmersCmd(cmd *cobra.Command, args []string) error {
	conf, err := parseCmdConfig(cmd.Name())
	if err != nil {
		return err
	}
	return Kmers(cmd.OutOrStdout(), conf, args)
}

// Kmers counts k-mers of seqs, or of every record in the input if there
// are no seqs. K-mers never span two records.
func Kmers(w io.Writer, conf *config.Config, seqs []string) error {
	k := conf.Kmers.K
	table := scan.NewFrequencyTable()
	r := &KmersReport{K: k, Source: "arguments"}

	if len(seqs) > 0 {
		for _, s := range seqs {
			table.AddKmers(strings.ToUpper(s), k)
		}
	} else {
		r.Source = conf.Input(config.DefaultRecordsInput)
		records, err := fasta.Read(r.Source)
		if err != nil {
			return err
		}
		for _, rec := range records {
			table.AddKmers(rec.Seq, k)
		}
	}

	r.Kmers = table.Counts()
	for _, kc := range r.Kmers {
		r.Total += kc.Count
	}
	return write(w, conf.JSON, r)
}
