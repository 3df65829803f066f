package align

import (
	"context"
	"fmt"
)

// Options configures one alignment run. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// Scoring is the substitution and gap model used for every
	// alignment in the run
	Scoring Scoring

	// Alphabet validates input and provides the ambiguity symbol
	Alphabet Alphabet

	// Workers bounds the distance-stage worker pool; <= 0 means one
	// worker per CPU
	Workers int

	// ConsensusThreshold is the majority fraction for consensus calls
	// made alongside this run
	ConsensusThreshold float64
}

// DefaultOptions returns the nucleotide scheme used for 16S rRNA work:
// +1 match, -1 mismatch, -2 gap open, -1 gap extend, simple majority
// consensus.
func DefaultOptions() Options {
	return Options{
		Scoring:            NewScoring(1, -1, -2, -1),
		Alphabet:           Nucleotide(),
		ConsensusThreshold: 0.5,
	}
}

// Align is the engine's entry point: it validates the sequences, builds
// the all-pairs distance matrix, clusters it into a UPGMA guide tree,
// and merges progressively along that tree into one multiple
// alignment containing every input sequence.
//
// Two sequences degrade to a single direct pairwise alignment with no
// tree step. Fewer than two is an error.
func Align(ctx context.Context, seqs []Sequence, opts Options) (*Profile, error) {
	if len(seqs) < 2 {
		return nil, fmt.Errorf("%w: have %d sequences, need at least 2 to align", ErrInsufficientInput, len(seqs))
	}
	if err := opts.Alphabet.ValidateAll(seqs); err != nil {
		return nil, err
	}

	if len(seqs) == 2 {
		merged, _, err := PairAlign(FromSequence(seqs[0]), FromSequence(seqs[1]), &opts.Scoring)
		return merged, err
	}

	dists, err := BuildDistances(ctx, seqs, &opts.Scoring, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("building distance matrix: %w", err)
	}
	tree, err := BuildTree(dists)
	if err != nil {
		return nil, fmt.Errorf("building guide tree: %w", err)
	}
	final, err := ProgressiveAlign(ctx, tree, seqs, &opts.Scoring)
	if err != nil {
		return nil, fmt.Errorf("progressive alignment: %w", err)
	}
	return final, nil
}

// GuideTree exposes the distance and clustering stages on their own,
// for callers that only want the tree.
func GuideTree(ctx context.Context, seqs []Sequence, opts Options) (*Tree, error) {
	if err := opts.Alphabet.ValidateAll(seqs); err != nil {
		return nil, err
	}
	dists, err := BuildDistances(ctx, seqs, &opts.Scoring, opts.Workers)
	if err != nil {
		return nil, err
	}
	return BuildTree(dists)
}
