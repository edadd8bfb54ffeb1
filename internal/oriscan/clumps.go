package oriscan

import (
	"fmt"
	"io"

	"github.com/Dhanushsk16/BBL434-DhanushSk/config"
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/scan"
	"github.com/spf13/cobra"
)

// ClumpsReport is the set of k-mers forming clumps in a record.
type ClumpsReport struct {
	Record    string `json:"record"`
	Length    int    `json:"length"`
	K         int    `json:"k"`
	Window    int    `json:"window"`
	Threshold int    `json:"threshold"`

	Total int `json:"total"`

	// Clumps in lexical order
	Clumps []string `json:"clumps"`

	show int
}

func (r *ClumpsReport) writeText(w io.Writer) error {
	fmt.Fprintln(w, heading.Render(fmt.Sprintf("Total unique k-mers forming clumps: %d", r.Total)))

	shown := sample(r.Clumps, r.show)
	if len(shown) == 0 {
		return nil
	}
	fmt.Fprintf(w, "First %d clumps found:\n", len(shown))
	for _, kmer := range shown {
		fmt.Fprintf(w, "  %s\n", kmer)
	}
	return nil
}

// ClumpsCmd finds clumps in the target record.
func ClumpsCmd(cmd *cobra.Command, args []string) error {
	conf, err := parseCmdConfig(cmd.Name())
	if err != nil {
		return err
	}
	return Clumps(cmd.OutOrStdout(), conf)
}

// Clumps finds every k-mer occurring at least threshold times in some
// window of the target record.
func Clumps(w io.Writer, conf *config.Config) error {
	rec, err := readTarget(conf.Input(config.DefaultInput), conf.Record)
	if err != nil {
		return err
	}

	c := conf.Clumps
	Logger.Info(fmt.Sprintf("Scanning genome (%d bp) for clumps...", rec.Len()))
	Logger.Debug("parameters", "L", c.Window, "k", c.K, "t", c.Threshold)

	clumps, err := scan.FindClumps(rec.Seq, c.K, c.Window, c.Threshold)
	if err != nil {
		return err
	}

	r := &ClumpsReport{
		Record:    rec.ID,
		Length:    rec.Len(),
		K:         c.K,
		Window:    c.Window,
		Threshold: c.Threshold,
		Total:     len(clumps),
		Clumps:    clumps.Sorted(),
		show:      c.Show,
	}
	return write(w, conf.JSON, r)
}
