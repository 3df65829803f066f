// Package align implements progressive multiple sequence alignment:
// pairwise global alignment with affine gap penalties (Gotoh), an
// all-pairs distance matrix, a UPGMA guide tree, progressive merging of
// profiles along that tree, and consensus derivation.
package align

import (
	"fmt"
)

// Gap is the gap symbol used in alignment output. It never appears in
// an input sequence.
const Gap byte = '-'

// Sequence is one biological sequence. Residues are upper-case symbols
// from the run's alphabet. A Sequence is never mutated once created;
// the aligner works on copies.
type Sequence struct {
	// ID identifies the sequence and must be unique within a run
	ID string

	// Residues is the ordered symbol string, without gaps
	Residues []byte
}

// NewSequence builds a Sequence from an identifier and a residue string.
func NewSequence(id, residues string) Sequence {
	return Sequence{ID: id, Residues: []byte(residues)}
}

// Len returns the number of residues.
func (s Sequence) Len() int {
	return len(s.Residues)
}

// Copy returns a deep copy of the sequence.
func (s Sequence) Copy() Sequence {
	residues := make([]byte, len(s.Residues))
	copy(residues, s.Residues)
	return Sequence{ID: s.ID, Residues: residues}
}

func (s Sequence) String() string {
	return fmt.Sprintf(">%s\n%s", s.ID, s.Residues)
}

// Alphabet is the set of symbols a run accepts, together with the
// ambiguity symbol used in consensus output. The gap symbol is never a
// member: it may only appear in alignment output, not in input.
type Alphabet struct {
	// Ambiguous is emitted where no symbol wins a consensus column
	Ambiguous byte

	valid [256]bool
	name  string
}

// Nucleotide returns the DNA/RNA alphabet: A, C, G, T, U plus the IUPAC
// ambiguity codes. 'N' is the ambiguity symbol.
func Nucleotide() Alphabet {
	return newAlphabet("nucleotide", 'N', "ACGTURYSWKMBDHVN")
}

// Protein returns the amino-acid alphabet with B, Z and X ambiguity
// codes. 'X' is the ambiguity symbol.
func Protein() Alphabet {
	return newAlphabet("protein", 'X', "ACDEFGHIKLMNPQRSTVWYBZX")
}

func newAlphabet(name string, ambiguous byte, symbols string) Alphabet {
	a := Alphabet{Ambiguous: ambiguous, name: name}
	for i := 0; i < len(symbols); i++ {
		a.valid[symbols[i]] = true
		a.valid[symbols[i]|0x20] = true // lower case
	}
	return a
}

// Contains reports whether c is a symbol of the alphabet.
func (a *Alphabet) Contains(c byte) bool {
	return a.valid[c]
}

func (a *Alphabet) String() string {
	return a.name
}

// Validate checks a single input sequence against the alphabet. It
// returns ErrEmptySequence for a zero-length sequence and
// ErrAlphabetMismatch for the first out-of-alphabet symbol. Gaps are
// out-of-alphabet on purpose: input sequences must be ungapped.
func (a *Alphabet) Validate(s Sequence) error {
	if s.Len() == 0 {
		return fmt.Errorf("%w: %q", ErrEmptySequence, s.ID)
	}
	for i, c := range s.Residues {
		if !a.valid[c] {
			return fmt.Errorf("%w: %q has %q at position %d", ErrAlphabetMismatch, s.ID, c, i)
		}
	}
	return nil
}

// ValidateAll checks every sequence and that no identifier repeats.
func (a *Alphabet) ValidateAll(seqs []Sequence) error {
	seen := make(map[string]bool, len(seqs))
	for _, s := range seqs {
		if err := a.Validate(s); err != nil {
			return err
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate sequence id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
