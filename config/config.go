// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/scan"
	"github.com/spf13/viper"
)

const (
	// DefaultInput is the genome read by the genome-scale analyses
	DefaultInput = "genomic.fa"

	// DefaultRecordsInput is read by the record and k-mer counting commands
	DefaultRecordsInput = "seq.fa"

	// EnvPrefix is prepended to settings read from the environment, ex: ORISCAN_SKEW_WINDOW
	EnvPrefix = "ORISCAN"
)

// KmersConfig is settings for counting k-mers across records
type KmersConfig struct {
	// k-mer length
	K int `mapstructure:"k"`
}

// ClumpsConfig is settings for the clump finder
type ClumpsConfig struct {
	// k-mer length
	K int `mapstructure:"k"`

	// length of the window that a clump has to fit in
	Window int `mapstructure:"window"`

	// minimum occurrences of a k-mer in a window to make it a clump
	Threshold int `mapstructure:"threshold"`

	// number of clump k-mers written in the text report
	Show int `mapstructure:"show"`
}

// SkewConfig is settings for windowed GC skew
type SkewConfig struct {
	// length of each window
	Window int `mapstructure:"window"`

	// distance between window starts
	Step int `mapstructure:"step"`

	// report the running sum of the skew rather than the skew per window
	Cumulative bool `mapstructure:"cumulative"`

	// path to the PNG plot, guessed from Cumulative when empty
	Out string `mapstructure:"out"`

	// skip writing the plot
	NoPlot bool `mapstructure:"no-plot"`
}

// OriConfig is settings for locating the origin of replication
type OriConfig struct {
	// k-mer length for the frequent words around the candidate
	K int `mapstructure:"k"`

	Window int `mapstructure:"window"`
	Step   int `mapstructure:"step"`

	// bases added on each side of the minimum-skew window
	Flank int `mapstructure:"flank"`

	// number of frequent k-mers to report
	Top int `mapstructure:"top"`

	// use the cumulative skew minimum rather than the per-window minimum
	Cumulative bool `mapstructure:"cumulative"`
}

// EnrichmentConfig is settings for the k-mer density scan
type EnrichmentConfig struct {
	K      int `mapstructure:"k"`
	Window int `mapstructure:"window"`
	Step   int `mapstructure:"step"`

	// number of genome wide frequent k-mers to report, the first is plotted
	Top int `mapstructure:"top"`

	Out    string `mapstructure:"out"`
	NoPlot bool   `mapstructure:"no-plot"`
}

// Config is the root-level settings struct and is a mix
// of defaults, an optional settings file, the environment and
// those available from the command line
type Config struct {
	// path to the input FASTA (plain or gzipped)
	In string `mapstructure:"in"`

	// ID of the record analyzed by genome-scale commands, the first if empty
	Record string `mapstructure:"record"`

	// write JSON reports rather than text
	JSON bool `mapstructure:"json"`

	// whether to log debug messages
	Verbose bool `mapstructure:"verbose"`

	Kmers      KmersConfig      `mapstructure:"kmers"`
	Clumps     ClumpsConfig     `mapstructure:"clumps"`
	Skew       SkewConfig       `mapstructure:"skew"`
	Ori        OriConfig        `mapstructure:"ori"`
	Enrichment EnrichmentConfig `mapstructure:"enrichment"`
}

func init() {
	SetDefaults(viper.GetViper())
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("in", "")
	v.SetDefault("record", "")
	v.SetDefault("json", false)
	v.SetDefault("verbose", false)

	v.SetDefault("kmers.k", 3)

	v.SetDefault("clumps.k", 8)
	v.SetDefault("clumps.window", 1000)
	v.SetDefault("clumps.threshold", 3)
	v.SetDefault("clumps.show", 10)

	v.SetDefault("skew.window", 5000)
	v.SetDefault("skew.step", 500)
	v.SetDefault("skew.cumulative", false)
	v.SetDefault("skew.out", "")
	v.SetDefault("skew.no-plot", false)

	v.SetDefault("ori.k", 8)
	v.SetDefault("ori.window", 5000)
	v.SetDefault("ori.step", 500)
	v.SetDefault("ori.flank", 1000)
	v.SetDefault("ori.top", 5)
	v.SetDefault("ori.cumulative", false)

	v.SetDefault("enrichment.k", 8)
	v.SetDefault("enrichment.window", 5000)
	v.SetDefault("enrichment.step", 500)
	v.SetDefault("enrichment.top", 3)
	v.SetDefault("enrichment.out", "ori_plot.png")
	v.SetDefault("enrichment.no-plot", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads an optional settings file into the global viper. An empty
// path leaves the defaults, environment and flags as they are.
func Load(settings string) error {
	return loadFile(viper.GetViper(), settings)
}

func loadFile(v *viper.Viper, settings string) error {
	if settings == "" {
		return nil
	}

	v.SetConfigFile(settings)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read settings file %s: %v", settings, err)
	}
	return nil
}

// New returns a new Config struct populated by Viper settings
func New() (*Config, error) {
	return FromViper(viper.GetViper())
}

// FromViper unmarshals the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %v", err)
	}
	return &c, nil
}

type bound struct {
	name  string
	value int
	min   int
}

// Validate checks that the settings the named command uses are in range.
// Sections of other commands aren't checked. Checks against the sequence
// length happen in the scan package once the input is read.
func (c *Config) Validate(command string) error {
	var checks []bound
	switch command {
	case "kmers":
		checks = []bound{{"kmers.k", c.Kmers.K, 1}}
	case "clumps":
		checks = []bound{
			{"clumps.k", c.Clumps.K, 1},
			{"clumps.window", c.Clumps.Window, c.Clumps.K},
			{"clumps.threshold", c.Clumps.Threshold, 1},
			{"clumps.show", c.Clumps.Show, 0},
		}
	case "skew":
		checks = []bound{
			{"skew.window", c.Skew.Window, 1},
			{"skew.step", c.Skew.Step, 1},
		}
	case "ori":
		checks = []bound{
			{"ori.k", c.Ori.K, 1},
			{"ori.window", c.Ori.Window, 1},
			{"ori.step", c.Ori.Step, 1},
			{"ori.flank", c.Ori.Flank, 0},
			{"ori.top", c.Ori.Top, 1},
		}
	case "enrichment":
		checks = []bound{
			{"enrichment.k", c.Enrichment.K, 1},
			{"enrichment.window", c.Enrichment.Window, c.Enrichment.K},
			{"enrichment.step", c.Enrichment.Step, 1},
			{"enrichment.top", c.Enrichment.Top, 1},
		}
	}

	for _, check := range checks {
		if check.value < check.min {
			return fmt.Errorf("%w: %s must be at least %d, got %d", scan.ErrInvalidParameters, check.name, check.min, check.value)
		}
	}
	return nil
}

// Input returns the configured input path, or fallback if none was set.
func (c *Config) Input(fallback string) string {
	if c.In != "" {
		return c.In
	}
	return fallback
}

// SkewPlotPath is the plot path for the skew command.
func (c *Config) SkewPlotPath() string {
	if c.Skew.Out != "" {
		return c.Skew.Out
	}
	if c.Skew.Cumulative {
		return "cumulative_skew_plot.png"
	}
	return "gc_skew_plot.png"
}
