// Package seqio reads and writes sequence collections at the
// boundaries of the alignment engine: FASTA in, FASTA or Clustal out,
// plus the length filtering and sequence-supply glue that sits in front
// of the engine.
package seqio

import (
	"bytes"
	"context"
	"fmt"
	stdio "io"
	"os"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	log "github.com/sirupsen/logrus"

	"github.com/clustalign/clustalign/internal/align"
)

// ReadFASTA reads every record of a FASTA file into engine sequences.
// Residues are upper-cased; the record's first header word becomes the
// identifier. Records repeating an earlier identifier with the same
// residues are dropped with a warning, matching what curated 16S sets
// tend to contain.
func ReadFASTA(path string) ([]align.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seqs, err := readAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return seqs, nil
}

func readAll(r stdio.Reader) ([]align.Sequence, error) {
	reader := fasta.NewReader(r)
	var seqs []align.Sequence
	byID := make(map[string][]byte)
	for {
		record, err := reader.Read()
		if err == stdio.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		id := firstWord(record.Name)
		residues := bytes.ToUpper(record.Bytes())
		if prev, ok := byID[id]; ok {
			if bytes.Equal(prev, residues) {
				log.WithField("id", id).Warn("dropping duplicate record")
				continue
			}
			return nil, fmt.Errorf("two different records share id %q", id)
		}
		byID[id] = residues
		seqs = append(seqs, align.Sequence{ID: id, Residues: residues})
	}
	return seqs, nil
}

func firstWord(header string) string {
	if fields := strings.Fields(header); len(fields) > 0 {
		return fields[0]
	}
	return header
}

// Filter keeps the sequences whose length lies in [minLen, maxLen].
// A maxLen of 0 or less means no upper bound.
func Filter(seqs []align.Sequence, minLen, maxLen int) []align.Sequence {
	kept := make([]align.Sequence, 0, len(seqs))
	for _, s := range seqs {
		if s.Len() < minLen {
			continue
		}
		if maxLen > 0 && s.Len() > maxLen {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// Supplier provides sequences for a query, up to max results. Remote
// nucleotide databases sit behind this interface; the engine itself
// never talks to one.
type Supplier interface {
	Fetch(ctx context.Context, query string, max int) ([]align.Sequence, error)
}

// FileSupplier serves sequences out of local FASTA files. The query is
// matched case-insensitively against identifiers; an empty query
// matches everything.
type FileSupplier struct {
	// Paths of the FASTA files to serve from
	Paths []string
}

// Fetch implements Supplier.
func (fs *FileSupplier) Fetch(ctx context.Context, query string, max int) ([]align.Sequence, error) {
	query = strings.ToLower(query)
	var out []align.Sequence
	for _, path := range fs.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seqs, err := ReadFASTA(path)
		if err != nil {
			return nil, err
		}
		for _, s := range seqs {
			if query != "" && !strings.Contains(strings.ToLower(s.ID), query) {
				continue
			}
			out = append(out, s)
			if max > 0 && len(out) == max {
				return out, nil
			}
		}
	}
	return out, nil
}
