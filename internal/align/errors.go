package align

import "errors"

// Errors returned by the alignment engine. All are recoverable and are
// returned to the caller rather than logged or swallowed. A single bad
// input sequence fails the whole run; filtering belongs upstream.
var (
	// ErrEmptySequence is returned when a zero-length sequence or
	// zero-width profile reaches the engine.
	ErrEmptySequence = errors.New("empty sequence")

	// ErrAlphabetMismatch is returned when a sequence contains a symbol
	// outside the configured alphabet.
	ErrAlphabetMismatch = errors.New("symbol outside alphabet")

	// ErrInsufficientInput is returned when fewer sequences are supplied
	// than the requested operation needs.
	ErrInsufficientInput = errors.New("insufficient input sequences")

	// ErrInconsistentWidth signals an internal invariant violation: the
	// rows of one alignment no longer share a width. It points at a
	// defect in the aligner, not at user input.
	ErrInconsistentWidth = errors.New("inconsistent alignment width")
)
