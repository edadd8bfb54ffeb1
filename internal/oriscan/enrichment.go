package oriscan

import (
	"fmt"
	"io"

	"github.com/Dhanushsk16/BBL434-DhanushSk/config"
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/scan"
	"github.com/spf13/cobra"
)

// EnrichmentReport is the most frequent k-mers of a record and the density
// of the top one along it.
type EnrichmentReport struct {
	Record string           `json:"record"`
	Length int              `json:"length"`
	K      int              `json:"k"`
	Top    []scan.KmerCount `json:"top"`

	// Target is the k-mer whose density is reported
	Target  string      `json:"target"`
	Window  int         `json:"window"`
	Step    int         `json:"step"`
	Density scan.Series `json:"density"`

	Plot string `json:"plot,omitempty"`
}

func (r *EnrichmentReport) writeText(w io.Writer) error {
	fmt.Fprintln(w, heading.Render(fmt.Sprintf("Top %d k-mers:", len(r.Top))))
	tw := newTable(w)
	for _, kc := range r.Top {
		fmt.Fprintf(tw, "  %s\t%d\n", kc.Kmer, kc.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	peak := scan.Point{}
	for _, p := range r.Density {
		if p.Value > peak.Value {
			peak = p
		}
	}
	fmt.Fprintf(w, "Density of %s peaks at %d bp (%d in a %d bp window)\n", r.Target, peak.Pos, int(peak.Value), r.Window)
	if r.Plot != "" {
		fmt.Fprintf(w, "Plot saved to %s\n", r.Plot)
	}
	return nil
}

// EnrichmentCmd plots the density of the most frequent k-mer of the target record.
func EnrichmentCmd(cmd *cobra.Command, args []string) error {
	conf, err := parseCmdConfig(cmd.Name())
	if err != nil {
		return err
	}
	return Enrichment(cmd.OutOrStdout(), conf)
}

// Enrichment finds the most frequent k-mers across the target record and
// scans the windowed density of the first of them.
func Enrichment(w io.Writer, conf *config.Config) error {
	rec, err := readTarget(conf.Input(config.DefaultInput), conf.Record)
	if err != nil {
		return err
	}

	e := conf.Enrichment
	Logger.Info(fmt.Sprintf("Analyzing sequence length: %d bp", rec.Len()))
	Logger.Info("Finding most frequent k-mers...", "k", e.K)

	top := scan.TopKmers(rec.Seq, e.K, e.Top)
	if len(top) == 0 {
		return fmt.Errorf("%w: no %d-mers in record %s (%d bp)", scan.ErrInvalidParameters, e.K, rec.ID, rec.Len())
	}
	target := top[0].Kmer
	Logger.Info(fmt.Sprintf("Plotting density for: %s", target))

	density, err := scan.KmerDensity(rec.Seq, target, e.Window, e.Step)
	if err != nil {
		return err
	}

	r := &EnrichmentReport{
		Record:  rec.ID,
		Length:  rec.Len(),
		K:       e.K,
		Top:     top,
		Target:  target,
		Window:  e.Window,
		Step:    e.Step,
		Density: density,
	}

	if !e.NoPlot {
		c := chart{
			title:  fmt.Sprintf("K-mer Enrichment: %s", target),
			yLabel: fmt.Sprintf("Count in %dbp Window", e.Window),
			label:  fmt.Sprintf("Count of %s", target),
			color:  blue,
		}
		r.Plot = e.Out
		if err := c.save(r.Plot, density); err != nil {
			return err
		}
		Logger.Info(fmt.Sprintf("Plot saved to %s", r.Plot))
	}

	return write(w, conf.JSON, r)
}
