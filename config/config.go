// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/clustalign/clustalign/internal/align"
)

// ScoringConfig holds the substitution and affine gap settings
type ScoringConfig struct {
	// score of two identical residues
	Match float64 `mapstructure:"match"`

	// score of two differing residues
	Mismatch float64 `mapstructure:"mismatch"`

	// penalty for the first symbol of a gap
	GapOpen float64 `mapstructure:"gap-open"`

	// penalty for each further gap symbol
	GapExtend float64 `mapstructure:"gap-extend"`
}

// ConsensusConfig holds consensus derivation settings
type ConsensusConfig struct {
	// majority fraction a symbol needs to win a column
	Threshold float64 `mapstructure:"threshold"`
}

// FilterConfig bounds the lengths of input sequences kept for a run
type FilterConfig struct {
	// shortest sequence kept; 16S rRNA genes run ~1500bp
	MinLength int `mapstructure:"min-length"`

	// longest sequence kept, 0 for unbounded
	MaxLength int `mapstructure:"max-length"`
}

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those from the command line
type Config struct {
	// substitution scoring and gap model
	Scoring ScoringConfig `mapstructure:"scoring"`

	// consensus settings
	Consensus ConsensusConfig `mapstructure:"consensus"`

	// input length filtering
	Filter FilterConfig `mapstructure:"filter"`

	// worker count for the pairwise distance stage, 0 for one per CPU
	Workers int `mapstructure:"workers"`
}

// New returns a Config populated from Viper (settings file and/or
// command line flags), falling back to the 16S nucleotide defaults.
func New() *Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into config: %v", err)
	}
	return &c
}

func setDefaults() {
	viper.SetDefault("scoring.match", 1.0)
	viper.SetDefault("scoring.mismatch", -1.0)
	viper.SetDefault("scoring.gap-open", -2.0)
	viper.SetDefault("scoring.gap-extend", -1.0)
	viper.SetDefault("consensus.threshold", 0.5)
	viper.SetDefault("filter.min-length", 0)
	viper.SetDefault("filter.max-length", 0)
	viper.SetDefault("workers", 0)
}

// Options converts the app settings into engine options.
func (c *Config) Options() align.Options {
	return align.Options{
		Scoring:            align.NewScoring(c.Scoring.Match, c.Scoring.Mismatch, c.Scoring.GapOpen, c.Scoring.GapExtend),
		Alphabet:           align.Nucleotide(),
		Workers:            c.Workers,
		ConsensusThreshold: c.Consensus.Threshold,
	}
}
