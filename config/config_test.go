// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/viroscan/viroscan-go/internal/alignment"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	SetDefaults()

	c := New()

	assert.Equal(t, 90.0, c.Threshold)
	assert.Equal(t, 1.0, c.Scoring.Match)
	assert.Equal(t, 0.0, c.Scoring.Mismatch)
	assert.Equal(t, 0.0, c.Scoring.GapOpen)
	assert.Equal(t, alignment.DefaultScheme(), c.Scheme())
}

func TestOverrides(t *testing.T) {
	viper.Reset()
	SetDefaults()
	viper.Set("threshold", 95.0)
	viper.Set("mismatch", -3.0)
	viper.Set("reference", "genome.fna")

	c := New()

	assert.Equal(t, 95.0, c.Threshold)
	assert.Equal(t, -3.0, c.Scoring.Mismatch)
	assert.Equal(t, "genome.fna", c.Reference)

	opts := c.Options()
	assert.Equal(t, 95.0, opts.Threshold)
	assert.Equal(t, -3.0, opts.Scheme.Mismatch)
}

func TestScheme(t *testing.T) {
	c := Config{Scoring: ScoringConfig{Match: 2, Mismatch: -1, GapOpen: -2, GapExtend: -1}}

	assert.Equal(t, &alignment.Scheme{Match: 2, Mismatch: -1, GapOpen: -2, GapExtend: -1}, c.Scheme())
}
