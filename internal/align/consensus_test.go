package align

import (
	"testing"
)

func TestConsensus(t *testing.T) {
	alpha := Nucleotide()

	p := &Profile{
		IDs: []string{"s1", "s2", "s3", "s4"},
		Rows: [][]byte{
			[]byte("ACGT-A"),
			[]byte("ACCTGA"),
			[]byte("ACCAG-"),
			[]byte("A-CAGT"),
		},
	}
	// columns: AAAA, CCC-, GCCC, TTAA, -GGG, AA-T

	type args struct {
		threshold float64
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			// every column emits its leader; column 4 (TTAA) and
			// column 6 (AA-T) have leaders but TTAA is a 2-2 tie
			"threshold zero",
			args{0},
			"ACCNGA",
		},
		{
			"simple majority",
			args{0.5},
			"ACCNGA",
		},
		{
			"unanimous",
			args{1.0},
			"ANNNNN",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Consensus(p, tt.args.threshold, &alpha)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Consensus(%v) = %s, want %s", tt.args.threshold, got, tt.want)
			}
		})
	}
}

func TestConsensus_AllGapColumn(t *testing.T) {
	alpha := Nucleotide()
	p := &Profile{
		IDs: []string{"s1", "s2"},
		Rows: [][]byte{
			[]byte("A-T"),
			[]byte("A-T"),
		},
	}
	got, err := Consensus(p, 0.5, &alpha)
	if err != nil {
		t.Fatal(err)
	}
	if got != "ANT" {
		t.Errorf("Consensus() = %s, want ANT", got)
	}
}

func TestConsensus_ThresholdRange(t *testing.T) {
	alpha := Nucleotide()
	p := FromSequence(NewSequence("s1", "ACGT"))

	for _, bad := range []float64{-0.1, 1.5} {
		if _, err := Consensus(p, bad, &alpha); err == nil {
			t.Errorf("Consensus() accepted threshold %v", bad)
		}
	}
}

func TestConsensus_RaggedProfile(t *testing.T) {
	alpha := Nucleotide()
	p := &Profile{
		IDs: []string{"s1", "s2"},
		Rows: [][]byte{
			[]byte("ACGT"),
			[]byte("AC"),
		},
	}
	if _, err := Consensus(p, 0.5, &alpha); err == nil {
		t.Fatal("Consensus() accepted a ragged profile")
	}
}
