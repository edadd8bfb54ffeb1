// Package cmd is for command line interactions with the oriscan application
package cmd

import (
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/oriscan"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "oriscan",
	Short: `Scan a genome for k-mer clumps and GC skew.
Find the likely origin of replication (ORI) of a bacterial genome`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		oriscan.Logger.Fatal(err)
	}
}

// bindFlags binds each named flag of fs to the viper key prefix.name.
func bindFlags(fs *pflag.FlagSet, prefix string, names ...string) {
	for _, name := range names {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			oriscan.Logger.Fatal("failed to bind flag", "flag", name, "err", err)
		}
	}
}

// windowFlags adds the window length and step flags shared by the scanning commands.
func windowFlags(fs *pflag.FlagSet, window, step int) {
	fs.IntP("window", "w", window, "window length (bp)")
	fs.Int("step", step, "distance between window starts (bp)")
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringP("in", "i", "", "input FASTA, plain or gzipped (default \"genomic.fa\", \"seq.fa\" for records and kmers)")
	pf.StringP("record", "r", "", "ID of the record to analyze (default first record)")
	pf.StringP("settings", "s", "", "settings file (YAML, JSON or TOML)")
	pf.Bool("json", false, "write the report as JSON")
	pf.BoolP("verbose", "v", false, "log debug messages")

	bindFlags(pf, "", "in", "record", "settings", "json", "verbose")
}
