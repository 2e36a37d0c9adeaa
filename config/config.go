// Package config holds app wide settings that are unmarshalled from
// Viper (see: /cmd).
package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/viroscan/viroscan-go/internal/alignment"
	"github.com/viroscan/viroscan-go/internal/screen"
)

// ScoringConfig is the alignment scoring parameters. The defaults
// reproduce identity-only scoring: only matches count.
type ScoringConfig struct {
	// reward for identical aligned bases
	Match float64 `mapstructure:"match"`

	// score for differing aligned bases
	Mismatch float64 `mapstructure:"mismatch"`

	// score charged per gapped position
	GapOpen float64 `mapstructure:"gap-open"`

	// kept for affine-style schemes; linear scoring ignores it
	GapExtend float64 `mapstructure:"gap-extend"`
}

// Config is the root-level settings struct, a mix of settings available
// in a config file and those bound from the command line.
type Config struct {
	// path to the reference genome FASTA
	Reference string `mapstructure:"reference"`

	// similarity percentage below which a sample is infected
	Threshold float64 `mapstructure:"threshold"`

	// alignment scoring parameters
	Scoring ScoringConfig `mapstructure:",squash"`
}

// SetDefaults registers the calibrated screening defaults with viper.
// Call once before binding flags.
func SetDefaults() {
	viper.SetDefault("threshold", screen.DefaultThreshold)
	viper.SetDefault("match", 1.0)
	viper.SetDefault("mismatch", 0.0)
	viper.SetDefault("gap-open", 0.0)
	viper.SetDefault("gap-extend", 0.0)
}

// New returns a Config populated by Viper settings, from a config file
// and/or bound command line flags.
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings: %v", err)
	}

	return c
}

// Scheme converts the scoring settings into an alignment scheme.
func (c Config) Scheme() *alignment.Scheme {
	return &alignment.Scheme{
		Match:     c.Scoring.Match,
		Mismatch:  c.Scoring.Mismatch,
		GapOpen:   c.Scoring.GapOpen,
		GapExtend: c.Scoring.GapExtend,
	}
}

// Options converts the settings into screening options.
func (c Config) Options() *screen.Options {
	return &screen.Options{
		Threshold: c.Threshold,
		Scheme:    c.Scheme(),
	}
}
