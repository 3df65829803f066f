// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew_Defaults(t *testing.T) {
	viper.Reset()
	c := New()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"match", c.Scoring.Match, 1},
		{"mismatch", c.Scoring.Mismatch, -1},
		{"gap open", c.Scoring.GapOpen, -2},
		{"gap extend", c.Scoring.GapExtend, -1},
		{"consensus threshold", c.Consensus.Threshold, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("default = %v, want %v", tt.got, tt.want)
			}
		})
	}

	if c.Workers != 0 || c.Filter.MinLength != 0 || c.Filter.MaxLength != 0 {
		t.Error("worker and filter defaults should be zero")
	}
}

func TestConfig_Options(t *testing.T) {
	viper.Reset()
	viper.Set("scoring.match", 2.0)
	viper.Set("workers", 4)
	defer viper.Reset()

	opts := New().Options()
	if opts.Workers != 4 {
		t.Errorf("Workers = %d, want 4", opts.Workers)
	}
	if got := opts.Scoring.Sub('A', 'A'); got != 2 {
		t.Errorf("match score = %v, want 2", got)
	}
	if got := opts.Scoring.Sub('A', 'C'); got != -1 {
		t.Errorf("mismatch score = %v, want -1", got)
	}
	if opts.Alphabet.Ambiguous != 'N' {
		t.Errorf("ambiguity symbol = %q, want 'N'", opts.Alphabet.Ambiguous)
	}
}
