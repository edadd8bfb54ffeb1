package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/fasta"
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/oriscan"
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/scan"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags puts every flag back to its default so values set by one
// execute don't leak into the next through the viper bindings.
func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("resetting --%s: %v", f.Name, err)
		}
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(t, sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	oriscan.Logger.SetOutput(io.Discard)
	resetFlags(t, RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func Test_kmersExec(t *testing.T) {
	out, err := execute(t, "kmers", "ATGCGATCGATCGATCG", "-k", "3", "--json")
	if err != nil {
		t.Fatal(err)
	}

	var r oriscan.KmersReport
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("bad report %q: %v", out, err)
	}
	if r.K != 3 || r.Total != 15 || len(r.Kmers) != 7 {
		t.Errorf("kmers report = %+v", r)
	}
}

func Test_missingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "genomic.fa")

	for _, name := range []string{"clumps", "skew", "ori", "enrichment"} {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, name, "--in", missing, "--json")
			if !errors.Is(err, fasta.ErrNotFound) {
				t.Errorf("%s err = %v, want ErrNotFound", name, err)
			}
			if out != "" {
				t.Errorf("%s wrote output for a missing input: %q", name, out)
			}
		})
	}
}

func Test_flagsDontLeak(t *testing.T) {
	if _, err := execute(t, "kmers", "ACGTAC", "-k", "2", "--json"); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "kmers", "ACGTAC")
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(out, "{") {
		t.Errorf("--json from the previous run leaked into this one:\n%s", out)
	}
	if !strings.Contains(out, "ACG") {
		t.Errorf("-k from the previous run leaked into this one:\n%s", out)
	}
}

func Test_validatesOwnSection(t *testing.T) {
	t.Setenv("ORISCAN_ORI_STEP", "0")

	if _, err := execute(t, "kmers", "ACGTAC"); err != nil {
		t.Errorf("kmers failed on a bad ori setting: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "genomic.fa")
	if _, err := execute(t, "ori", "--in", missing); !errors.Is(err, scan.ErrInvalidParameters) {
		t.Errorf("ori err = %v, want ErrInvalidParameters", err)
	}
}

func Test_makeDocs(t *testing.T) {
	dir := t.TempDir()
	if err := makeDocs(dir); err != nil {
		t.Fatal(err)
	}

	page, err := os.ReadFile(filepath.Join(dir, "oriscan_clumps.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(page), "---\nlayout: default\ntitle: clumps\nparent: oriscan\n") {
		t.Errorf("unexpected front matter:\n%s", page)
	}
}
