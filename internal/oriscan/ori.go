package oriscan

import (
	"fmt"
	"io"

	"github.com/Dhanushsk16/BBL434-DhanushSk/config"
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/scan"
	"github.com/spf13/cobra"
)

// OriReport is the predicted origin of replication and the most frequent
// k-mers around it.
type OriReport struct {
	Record     string     `json:"record"`
	Length     int        `json:"length"`
	Cumulative bool       `json:"cumulative"`
	Minimum    scan.Point `json:"minimum"`

	// the scanned neighbourhood [RegionStart, RegionEnd)
	RegionStart int `json:"regionStart"`
	RegionEnd   int `json:"regionEnd"`

	K   int              `json:"k"`
	Top []scan.KmerCount `json:"top"`
}

func (r *OriReport) writeText(w io.Writer) error {
	kind := "GC Skew"
	if r.Cumulative {
		kind = "Cumulative Skew"
	}
	fmt.Fprintf(w, "Minimum %s (%.4f) found at position: %d bp\n", kind, r.Minimum.Value, r.Minimum.Pos)
	fmt.Fprintln(w, "This is the likely Origin of Replication (ORI).")
	fmt.Fprintf(w, "\nCandidate ORI region: %d-%d bp\n", r.RegionStart, r.RegionEnd)

	fmt.Fprintln(w)
	fmt.Fprintln(w, heading.Render(fmt.Sprintf("Top %d %d-mers in the ORI region:", len(r.Top), r.K)))
	tw := newTable(w)
	for _, kc := range r.Top {
		fmt.Fprintf(tw, "  %s:\t%d times\n", kc.Kmer, kc.Count)
	}
	return tw.Flush()
}

// OriCmd predicts the origin of replication of the target record.
func OriCmd(cmd *cobra.Command, args []string) error {
	conf, err := parseCmdConfig(cmd.Name())
	if err != nil {
		return err
	}
	return Ori(cmd.OutOrStdout(), conf)
}

// Ori takes the window with the lowest GC skew as the ORI candidate and
// counts the most frequent k-mers in it and its flanks.
func Ori(w io.Writer, conf *config.Config) error {
	rec, err := readTarget(conf.Input(config.DefaultInput), conf.Record)
	if err != nil {
		return err
	}

	o := conf.Ori
	Logger.Info("Calculating GC Skew to find minimum...", "window", o.Window, "step", o.Step, "cumulative", o.Cumulative)

	var series scan.Series
	if o.Cumulative {
		series, err = scan.CumulativeSkewSeries(rec.Seq, o.Window, o.Step)
	} else {
		series, err = scan.SkewSeries(rec.Seq, o.Window, o.Step)
	}
	if err != nil {
		return err
	}

	lowest, err := scan.FindMinimum(series)
	if err != nil {
		return err
	}

	start, end := scan.Region(rec.Len(), lowest.Pos, o.Window, o.Flank)
	Logger.Info(fmt.Sprintf("Scanning candidate ORI region (%d-%d bp) for frequent %d-mers...", start, end, o.K))

	r := &OriReport{
		Record:      rec.ID,
		Length:      rec.Len(),
		Cumulative:  o.Cumulative,
		Minimum:     lowest,
		RegionStart: start,
		RegionEnd:   end,
		K:           o.K,
		Top:         scan.TopKmers(rec.Seq[start:end], o.K, o.Top),
	}
	return write(w, conf.JSON, r)
}
