// Package oriscan holds the command handlers: each reads its input, runs one
// analysis from the scan package and reports (and plots) the result.
package oriscan

import (
	"fmt"
	"os"

	"github.com/Dhanushsk16/BBL434-DhanushSk/config"
	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/fasta"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Logger is for logging to Stderr (without an annoying timestamp)
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "oriscan",
})

// parseCmdConfig reads the optional settings file and returns the merged
// Config, validated for the named command.
func parseCmdConfig(command string) (*config.Config, error) {
	if err := config.Load(viper.GetString("settings")); err != nil {
		return nil, err
	}

	conf, err := config.New()
	if err != nil {
		return nil, err
	}

	if conf.Verbose {
		Logger.SetLevel(log.DebugLevel)
	}
	if err := conf.Validate(command); err != nil {
		return nil, err
	}

	Logger.Debug("settings", "config", fmt.Sprintf("%+v", *conf))
	return conf, nil
}

// readTarget reads the record a genome-scale analysis works on: the one
// named id, or the first in the file.
func readTarget(path, id string) (fasta.Record, error) {
	Logger.Info(fmt.Sprintf("Loading %s...", path))

	records, err := fasta.Read(path)
	if err != nil {
		return fasta.Record{}, err
	}

	rec, err := fasta.Select(records, id)
	if err != nil {
		return fasta.Record{}, fmt.Errorf("%s: %w", path, err)
	}

	if len(records) > 1 {
		Logger.Warn("multiple records in input, analyzing one", "record", rec.ID, "ignored", len(records)-1)
	}
	return rec, nil
}
