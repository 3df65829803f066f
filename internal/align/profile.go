package align

import (
	"fmt"
)

// Profile is an alignment: one gapped row per member sequence, all rows
// the same width. A single raw sequence is the degenerate profile of
// width equal to its length. Stripping the gaps from any row
// reproduces the original sequence exactly.
type Profile struct {
	// IDs of the member sequences, in row order
	IDs []string

	// Rows holds one gapped residue string per member
	Rows [][]byte
}

// FromSequence wraps a raw sequence as its degenerate single-member
// profile. The residues are copied so later merges never touch the
// caller's sequence.
func FromSequence(s Sequence) *Profile {
	row := make([]byte, len(s.Residues))
	copy(row, s.Residues)
	return &Profile{
		IDs:  []string{s.ID},
		Rows: [][]byte{row},
	}
}

// Width returns the number of columns.
func (p *Profile) Width() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return len(p.Rows[0])
}

// Members returns the number of sequences in the profile.
func (p *Profile) Members() int {
	return len(p.Rows)
}

// Column returns the j'th column, one symbol per member row. The slice
// is freshly allocated.
func (p *Profile) Column(j int) []byte {
	col := make([]byte, len(p.Rows))
	for i, row := range p.Rows {
		col[i] = row[j]
	}
	return col
}

// Row returns the gapped row for the given sequence id.
func (p *Profile) Row(id string) ([]byte, bool) {
	for i, rid := range p.IDs {
		if rid == id {
			return p.Rows[i], true
		}
	}
	return nil, false
}

// Ungapped strips the gaps from the row of the given id, recovering
// the original sequence.
func (p *Profile) Ungapped(id string) (Sequence, bool) {
	row, ok := p.Row(id)
	if !ok {
		return Sequence{}, false
	}
	residues := make([]byte, 0, len(row))
	for _, c := range row {
		if c != Gap {
			residues = append(residues, c)
		}
	}
	return Sequence{ID: id, Residues: residues}, true
}

// check verifies the width invariant. A failure here is a defect in the
// aligner, never in user input.
func (p *Profile) check() error {
	w := p.Width()
	for i, row := range p.Rows {
		if len(row) != w {
			return fmt.Errorf("%w: row %s has %d columns, want %d",
				ErrInconsistentWidth, p.IDs[i], len(row), w)
		}
	}
	if len(p.IDs) != len(p.Rows) {
		return fmt.Errorf("%w: %d ids for %d rows",
			ErrInconsistentWidth, len(p.IDs), len(p.Rows))
	}
	return nil
}

func (p *Profile) String() string {
	out := ""
	for i, id := range p.IDs {
		out += fmt.Sprintf(">%s\n%s\n", id, p.Rows[i])
	}
	return out
}
