package align

import (
	"fmt"
)

// Consensus derives one symbol per alignment column by majority vote.
// Non-gap symbols are tallied per column; if the most frequent symbol
// accounts for at least threshold of the members it is emitted,
// otherwise the alphabet's ambiguity symbol is. Columns with no
// residues at all, and columns where two symbols tie for the lead, also
// emit the ambiguity symbol. No phylogenetic weighting: a plain
// per-column vote, like the "dumb consensus" of the reference tools.
func Consensus(p *Profile, threshold float64, alpha *Alphabet) (string, error) {
	if err := p.check(); err != nil {
		return "", err
	}
	if threshold < 0 || threshold > 1 {
		return "", fmt.Errorf("consensus threshold %v outside [0,1]", threshold)
	}

	k := p.Members()
	width := p.Width()
	out := make([]byte, width)
	for j := 0; j < width; j++ {
		var counts [256]int
		for _, row := range p.Rows {
			if c := row[j]; c != Gap {
				counts[c]++
			}
		}

		best, bestCount, tied := byte(0), 0, false
		for c := 0; c < 256; c++ {
			switch {
			case counts[c] > bestCount:
				best, bestCount, tied = byte(c), counts[c], false
			case counts[c] == bestCount && counts[c] > 0:
				tied = true
			}
		}

		switch {
		case bestCount == 0: // all members gapped
			out[j] = alpha.Ambiguous
		case tied:
			out[j] = alpha.Ambiguous
		case float64(bestCount)/float64(k) >= threshold:
			out[j] = best
		default:
			out[j] = alpha.Ambiguous
		}
	}
	return string(out), nil
}
