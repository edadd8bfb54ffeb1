package oriscan

import (
	"fmt"
	"io"

	"github.com/Dhanushsk16/BBL434-DhanushSk/config"
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/scan"
	"github.com/spf13/cobra"
)

// SkewReport is the windowed GC skew of a record and where it bottoms out.
type SkewReport struct {
	Record     string      `json:"record"`
	Length     int         `json:"length"`
	Window     int         `json:"window"`
	Step       int         `json:"step"`
	Cumulative bool        `json:"cumulative"`
	Minimum    scan.Point  `json:"minimum"`
	Series     scan.Series `json:"series"`

	// Plot is the path to the rendered plot, empty if none was written
	Plot string `json:"plot,omitempty"`
}

func (r *SkewReport) writeText(w io.Writer) error {
	if r.Cumulative {
		fmt.Fprintln(w, heading.Render(fmt.Sprintf("Minimum Cumulative Skew (%.4f) found at approx: %d bp", r.Minimum.Value, r.Minimum.Pos)))
	} else {
		fmt.Fprintln(w, heading.Render(fmt.Sprintf("Minimum GC Skew (%.4f) found at position: %d bp", r.Minimum.Value, r.Minimum.Pos)))
	}
	fmt.Fprintf(w, "Windows: %d (window=%d, step=%d)\n", len(r.Series), r.Window, r.Step)
	if r.Plot != "" {
		fmt.Fprintf(w, "Plot saved to %s\n", r.Plot)
	}
	return nil
}

// SkewCmd computes the GC skew of the target record.
func SkewCmd(cmd *cobra.Command, args []string) error {
	conf, err := parseCmdConfig(cmd.Name())
	if err != nil {
		return err
	}
	return Skew(cmd.OutOrStdout(), conf)
}

// Skew computes the per-window or cumulative GC skew of the target record,
// finds its minimum and plots it.
func Skew(w io.Writer, conf *config.Config) error {
	rec, err := readTarget(conf.Input(config.DefaultInput), conf.Record)
	if err != nil {
		return err
	}

	s := conf.Skew
	Logger.Info(fmt.Sprintf("Calculating GC Skew (Window=%d, Step=%d)...", s.Window, s.Step), "cumulative", s.Cumulative)

	var series scan.Series
	if s.Cumulative {
		series, err = scan.CumulativeSkewSeries(rec.Seq, s.Window, s.Step)
	} else {
		series, err = scan.SkewSeries(rec.Seq, s.Window, s.Step)
	}
	if err != nil {
		return err
	}

	lowest, err := scan.FindMinimum(series)
	if err != nil {
		return err
	}

	r := &SkewReport{
		Record:     rec.ID,
		Length:     rec.Len(),
		Window:     s.Window,
		Step:       s.Step,
		Cumulative: s.Cumulative,
		Minimum:    lowest,
		Series:     series,
	}

	if !s.NoPlot {
		c := chart{
			title:    "GC Skew Analysis",
			yLabel:   "GC Skew (G-C)/(G+C)",
			label:    "GC Skew",
			color:    purple,
			zeroLine: true,
		}
		if s.Cumulative {
			c = chart{
				title:       "Cumulative GC Skew Plot",
				yLabel:      "Cumulative Skew",
				label:       "Cumulative GC Skew",
				color:       green,
				marker:      &lowest,
				markerLabel: fmt.Sprintf("Predicted ORI (%d)", lowest.Pos),
			}
		}

		r.Plot = conf.SkewPlotPath()
		if err := c.save(r.Plot, series); err != nil {
			return err
		}
		Logger.Info(fmt.Sprintf("Plot saved to %s", r.Plot))
	}

	return write(w, conf.JSON, r)
}
