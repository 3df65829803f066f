package align

import (
	"context"
	"fmt"
)

// ProgressiveAlign merges the sequences into one multiple alignment by
// walking the guide tree children-first. A leaf contributes its raw
// sequence as a degenerate profile; an internal node pairwise-aligns
// the profiles of its two children. Gaps placed by an earlier merge are
// frozen: a later merge can insert whole new columns but never moves or
// removes existing ones ("once a gap, always a gap"). That is the
// standard progressive-MSA approximation and is kept deliberately for
// comparability with ClustalW-class output.
//
// The arena stores children before parents, so a single index-order
// sweep is a post-order traversal; no recursion, no stack bound tied to
// input size.
func ProgressiveAlign(ctx context.Context, tree *Tree, seqs []Sequence, sc *Scoring) (*Profile, error) {
	byID := make(map[string]Sequence, len(seqs))
	for _, s := range seqs {
		byID[s.ID] = s
	}

	profiles := make([]*Profile, len(tree.nodes))
	for i, nd := range tree.nodes {
		if nd.left < 0 {
			s, ok := byID[nd.id]
			if !ok {
				return nil, fmt.Errorf("guide tree leaf %q has no sequence", nd.id)
			}
			profiles[i] = FromSequence(s)
			continue
		}

		// Merges are natural checkpoints; an abandoned run publishes
		// nothing.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		merged, _, err := PairAlign(profiles[nd.left], profiles[nd.right], sc)
		if err != nil {
			return nil, fmt.Errorf("merging node %d: %w", i, err)
		}
		profiles[nd.left], profiles[nd.right] = nil, nil
		profiles[i] = merged
	}

	final := profiles[tree.root]
	if err := final.check(); err != nil {
		return nil, err
	}
	return final, nil
}
