package align

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Distances is the all-pairs distance matrix over the input sequences.
// It is built once, published complete, and never mutated afterwards.
type Distances struct {
	ids   []string
	index map[string]int
	sym   *mat.SymDense
}

// IDs returns the sequence identifiers in input order.
func (d *Distances) IDs() []string {
	return d.ids
}

// At returns the distance between two identifiers. The diagonal is 0.
func (d *Distances) At(a, b string) float64 {
	return d.sym.At(d.index[a], d.index[b])
}

// at is the index-based accessor used by the tree builder.
func (d *Distances) at(i, j int) float64 {
	return d.sym.At(i, j)
}

// Len returns the number of sequences.
func (d *Distances) Len() int {
	return len(d.ids)
}

// pairJob asks a worker for the distance between sequences i and j.
// Each job owns its own slot in the results slice, so workers never
// write to the same place and the fan-in needs no locking beyond the
// join barrier.
type pairJob struct {
	i, j int
	slot int
}

// BuildDistances aligns every unordered pair of sequences and converts
// each alignment into a distance: 1 minus the identity fraction over
// the aligned columns that are not gap-vs-gap. The n(n-1)/2 alignments
// are independent and fan out over a worker pool; the matrix is
// assembled and published only after every worker has finished, so a
// cancelled run never exposes a half-built matrix.
func BuildDistances(ctx context.Context, seqs []Sequence, sc *Scoring, workers int) (*Distances, error) {
	n := len(seqs)
	if n < 3 {
		return nil, fmt.Errorf("%w: have %d sequences, need at least 3 for a distance matrix", ErrInsufficientInput, n)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	profiles := make([]*Profile, n)
	for i, s := range seqs {
		profiles[i] = FromSequence(s)
	}

	npairs := n * (n - 1) / 2
	results := make([]float64, npairs)
	errs := make([]error, npairs)
	jobs := make(chan pairJob, workers)

	wg := &sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				merged, _, err := PairAlign(profiles[job.i], profiles[job.j], sc)
				if err != nil {
					errs[job.slot] = err
					continue
				}
				results[job.slot] = pairDistance(merged.Rows[0], merged.Rows[1])
			}
		}()
	}

	// Feed jobs, checking for cancellation between tasks. Slot order is
	// row-major over the upper triangle.
	var ctxErr error
	slot := 0
feed:
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := ctx.Err(); err != nil {
				ctxErr = err
				break feed
			}
			jobs <- pairJob{i: i, j: j, slot: slot}
			slot++
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return nil, ctxErr
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	d := &Distances{
		ids:   make([]string, n),
		index: make(map[string]int, n),
		sym:   mat.NewSymDense(n, nil),
	}
	slot = 0
	for i := 0; i < n; i++ {
		d.ids[i] = seqs[i].ID
		d.index[seqs[i].ID] = i
		for j := i + 1; j < n; j++ {
			d.sym.SetSym(i, j, results[slot])
			slot++
		}
	}
	return d, nil
}

// pairDistance converts one aligned sequence pair into a distance.
// Identity is counted over columns where at least one side has a
// residue; matching residues raise it, everything else lowers it.
func pairDistance(a, b []byte) float64 {
	var cols, same int
	for i := range a {
		if a[i] == Gap && b[i] == Gap {
			continue
		}
		cols++
		if a[i] == b[i] {
			same++
		}
	}
	if cols == 0 {
		return 0
	}
	return 1 - float64(same)/float64(cols)
}
