package seqio

import (
	"fmt"
	stdio "io"

	"github.com/TuftsBCB/io/fasta"
	"github.com/TuftsBCB/seq"

	"github.com/clustalign/clustalign/internal/align"
)

// WriteFASTA writes the alignment as gapped FASTA, one record per
// member sequence.
func WriteFASTA(w stdio.Writer, p *align.Profile) error {
	writer := fasta.NewWriter(w)
	for i, id := range p.IDs {
		if err := writer.Write(seq.NewSequenceString(id, string(p.Rows[i]))); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// clustalWidth is the number of alignment columns per output block.
const clustalWidth = 60

// WriteClustal writes the alignment in CLUSTAL format: interleaved
// blocks of 60 columns with a conservation line marking fully
// conserved columns with '*'.
func WriteClustal(w stdio.Writer, p *align.Profile) error {
	if _, err := fmt.Fprintf(w, "CLUSTAL W multiple sequence alignment\n\n"); err != nil {
		return err
	}

	nameWidth := 0
	for _, id := range p.IDs {
		if len(id) > nameWidth {
			nameWidth = len(id)
		}
	}

	width := p.Width()
	for start := 0; start < width; start += clustalWidth {
		end := start + clustalWidth
		if end > width {
			end = width
		}
		for i, id := range p.IDs {
			if _, err := fmt.Fprintf(w, "%-*s   %s\n", nameWidth, id, p.Rows[i][start:end]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%-*s   %s\n\n", nameWidth, "", conservation(p, start, end)); err != nil {
			return err
		}
	}
	return nil
}

// conservation builds the '*' line for one block: a star where every
// member holds the same residue, a space everywhere else.
func conservation(p *align.Profile, start, end int) []byte {
	line := make([]byte, end-start)
	for j := start; j < end; j++ {
		first := p.Rows[0][j]
		conserved := first != align.Gap
		for _, row := range p.Rows[1:] {
			if row[j] != first {
				conserved = false
				break
			}
		}
		if conserved {
			line[j-start] = '*'
		} else {
			line[j-start] = ' '
		}
	}
	return line
}
