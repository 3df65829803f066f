package align

// Gotoh global alignment with affine gaps, generalized to profiles.
// Implements Gotoh, J. Mol. Biol. (1982) 162, 705-708 with three state
// matrices per cell: best score ending in a column match, ending with a
// gap in A, and ending with a gap in B. All matrices are flat slices
// indexed i*(n+1)+j; 16S-scale inputs (1000-2000 columns) make nested
// containers too slow.

// traceback states, also the fixed tie-break order: a tie prefers the
// diagonal, then a gap in A, then a gap in B, so one optimal path is
// chosen reproducibly.
const (
	stateDiag byte = iota
	stateGapA      // gap row inserted into A, consumes a B column
	stateGapB      // gap row inserted into B, consumes an A column
)

// minScore stands in for -infinity. Low enough that no real path ever
// reaches it, high enough that adding penalties cannot underflow.
const minScore = -1e18

// PairAlign globally aligns two profiles (either may be a degenerate
// single-sequence profile) and returns the merged profile holding every
// member of both, along with the optimal alignment score. Gaps are only
// ever inserted as whole columns into one side, so columns frozen by
// earlier merges stay intact.
func PairAlign(a, b *Profile, sc *Scoring) (*Profile, float64, error) {
	if a.Width() == 0 || b.Width() == 0 {
		return nil, 0, ErrEmptySequence
	}
	if err := a.check(); err != nil {
		return nil, 0, err
	}
	if err := b.check(); err != nil {
		return nil, 0, err
	}

	m, n := a.Width(), b.Width()
	w := n + 1 // row stride

	// Cache the columns once: Column allocates, and the scorer visits
	// every pair of them.
	acols := make([][]byte, m)
	for i := range acols {
		acols[i] = a.Column(i)
	}
	bcols := make([][]byte, n)
	for j := range bcols {
		bcols[j] = b.Column(j)
	}

	size := (m + 1) * (n + 1)
	dg := make([]float64, size) // best ending in a column match
	ga := make([]float64, size) // best ending with a gap in A
	gb := make([]float64, size) // best ending with a gap in B
	pdg := make([]byte, size)   // predecessor state per cell and state
	pga := make([]byte, size)
	pgb := make([]byte, size)

	dg[0] = 0
	ga[0], gb[0] = minScore, minScore
	for j := 1; j <= n; j++ {
		dg[j], gb[j] = minScore, minScore
		ga[j] = sc.GapOpen + float64(j-1)*sc.GapExtend
		pga[j] = stateGapA
	}
	for i := 1; i <= m; i++ {
		at := i * w
		dg[at], ga[at] = minScore, minScore
		gb[at] = sc.GapOpen + float64(i-1)*sc.GapExtend
		pgb[at] = stateGapB
	}

	for i := 1; i <= m; i++ {
		row, prev := i*w, (i-1)*w
		for j := 1; j <= n; j++ {
			at := row + j

			// column match: best predecessor in tie-break order
			best, from := dg[prev+j-1], stateDiag
			if ga[prev+j-1] > best {
				best, from = ga[prev+j-1], stateGapA
			}
			if gb[prev+j-1] > best {
				best, from = gb[prev+j-1], stateGapB
			}
			dg[at] = best + sc.Column(acols[i-1], bcols[j-1])
			pdg[at] = from

			// gap in A: open from a match or a B-gap, extend an A-gap
			best, from = dg[row+j-1]+sc.GapOpen, stateDiag
			if v := ga[row+j-1] + sc.GapExtend; v > best {
				best, from = v, stateGapA
			}
			if v := gb[row+j-1] + sc.GapOpen; v > best {
				best, from = v, stateGapB
			}
			ga[at] = best
			pga[at] = from

			// gap in B
			best, from = dg[prev+j]+sc.GapOpen, stateDiag
			if v := ga[prev+j] + sc.GapOpen; v > best {
				best, from = v, stateGapA
			}
			if v := gb[prev+j] + sc.GapExtend; v > best {
				best, from = v, stateGapB
			}
			gb[at] = best
			pgb[at] = from
		}
	}

	end := m*w + n
	score, state := dg[end], stateDiag
	if ga[end] > score {
		score, state = ga[end], stateGapA
	}
	if gb[end] > score {
		score, state = gb[end], stateGapB
	}

	// Walk back, collecting one op per merged column.
	ops := make([]byte, 0, m+n)
	for i, j := m, n; i > 0 || j > 0; {
		at := i*w + j
		ops = append(ops, state)
		switch state {
		case stateDiag:
			state = pdg[at]
			i--
			j--
		case stateGapA:
			state = pga[at]
			j--
		case stateGapB:
			state = pgb[at]
			i--
		}
	}
	for x, y := 0, len(ops)-1; x < y; x, y = x+1, y-1 {
		ops[x], ops[y] = ops[y], ops[x]
	}

	return mergeByOps(a, b, ops), score, nil
}

// mergeByOps builds the merged profile from the traceback ops. Each op
// emits one output column: a column from both profiles, or a column
// from one with a gap column for the other's members.
func mergeByOps(a, b *Profile, ops []byte) *Profile {
	width := len(ops)
	ka, kb := a.Members(), b.Members()
	rows := make([][]byte, ka+kb)
	for r := range rows {
		rows[r] = make([]byte, 0, width)
	}

	ai, bi := 0, 0
	for _, op := range ops {
		switch op {
		case stateDiag:
			for r := 0; r < ka; r++ {
				rows[r] = append(rows[r], a.Rows[r][ai])
			}
			for r := 0; r < kb; r++ {
				rows[ka+r] = append(rows[ka+r], b.Rows[r][bi])
			}
			ai++
			bi++
		case stateGapA:
			for r := 0; r < ka; r++ {
				rows[r] = append(rows[r], Gap)
			}
			for r := 0; r < kb; r++ {
				rows[ka+r] = append(rows[ka+r], b.Rows[r][bi])
			}
			bi++
		case stateGapB:
			for r := 0; r < ka; r++ {
				rows[r] = append(rows[r], a.Rows[r][ai])
			}
			for r := 0; r < kb; r++ {
				rows[ka+r] = append(rows[ka+r], Gap)
			}
			ai++
		}
	}

	ids := make([]string, 0, ka+kb)
	ids = append(ids, a.IDs...)
	ids = append(ids, b.IDs...)
	return &Profile{IDs: ids, Rows: rows}
}
