package align

// Substituter scores a pair of residues. It must be symmetric, and
// identical symbols must never score below differing ones.
type Substituter func(a, b byte) float64

// Scoring is the scheme used for every alignment in one run: a
// substitution function plus affine gap penalties. A gap of length L
// costs GapOpen + (L-1)*GapExtend, so GapOpen is the cost of the first
// gap symbol. Both penalties are negative scores.
type Scoring struct {
	// Sub scores a residue pair
	Sub Substituter

	// GapOpen is the (negative) score of the first symbol of a gap
	GapOpen float64

	// GapExtend is the (negative) score of each further gap symbol
	GapExtend float64

	// GapResidue is the score of a residue against a frozen gap when
	// comparing profile columns
	GapResidue float64
}

// MatchMismatch returns the identity substituter: match for equal
// symbols, mismatch otherwise.
func MatchMismatch(match, mismatch float64) Substituter {
	return func(a, b byte) float64 {
		if a == b {
			return match
		}
		return mismatch
	}
}

// NewScoring builds a match/mismatch scheme with affine gap penalties.
func NewScoring(match, mismatch, gapOpen, gapExtend float64) Scoring {
	return Scoring{
		Sub:        MatchMismatch(match, mismatch),
		GapOpen:    gapOpen,
		GapExtend:  gapExtend,
		GapResidue: mismatch,
	}
}

// Column scores two profile columns against each other: the mean of
// the substitution scores over every residue pair drawn one from each
// column. Residue-vs-gap pairs use the frozen-gap score, gap-vs-gap
// pairs are skipped. With two single-sequence columns this reduces to
// plain residue scoring, so the DP recurrence is the same for
// sequences and profiles.
func (sc *Scoring) Column(ca, cb []byte) float64 {
	var sum float64
	var pairs int
	for _, x := range ca {
		for _, y := range cb {
			switch {
			case x == Gap && y == Gap:
				continue
			case x == Gap || y == Gap:
				sum += sc.GapResidue
			default:
				sum += sc.Sub(x, y)
			}
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return sum / float64(pairs)
}
