package oriscan

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// heading styles section titles in text reports.
var heading = lipgloss.NewStyle().Bold(true)

// report is the result of one command. It's written as JSON as is, or as
// text through writeText.
type report interface {
	writeText(w io.Writer) error
}

// write outputs a report to w as indented JSON or as text.
func write(w io.Writer, asJSON bool, r report) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to serialize the report: %v", err)
		}
		return nil
	}
	return r.writeText(w)
}

// newTable is a tab aligned writer for columns of a text report.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
}

// sample returns at most n items, all of them if n <= 0.
func sample[T any](items []T, n int) []T {
	if n > 0 && n < len(items) {
		return items[:n]
	}
	return items
}
