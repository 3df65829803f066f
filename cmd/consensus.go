package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clustalign/clustalign/internal/align"
	"github.com/clustalign/clustalign/internal/seqio"
)

var (
	consensusInput     string
	consensusThreshold float64
)

// consensusCmd represents the consensus command
var consensusCmd = &cobra.Command{
	Use:   "consensus",
	Short: "Derive the consensus of an existing alignment",
	Long: `Derive the per-column majority consensus of an aligned FASTA file.

A column's most frequent residue is emitted when it reaches the majority
threshold; otherwise the column is reported as ambiguous ('N').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seqs, err := seqio.ReadFASTA(consensusInput)
		if err != nil {
			return err
		}
		profile, err := profileFromAligned(seqs)
		if err != nil {
			return err
		}

		alpha := align.Nucleotide()
		cons, err := align.Consensus(profile, consensusThreshold, &alpha)
		if err != nil {
			return err
		}
		fmt.Println(cons)
		return nil
	},
}

// profileFromAligned rebuilds a Profile from externally aligned, gapped
// records. The engine's width invariant is checked up front so a ragged
// file fails loudly instead of misaligning columns.
func profileFromAligned(seqs []align.Sequence) (*align.Profile, error) {
	if len(seqs) == 0 {
		return nil, align.ErrInsufficientInput
	}
	p := &align.Profile{}
	width := seqs[0].Len()
	for _, s := range seqs {
		if s.Len() != width {
			return nil, fmt.Errorf("%w: %q has %d columns, want %d",
				align.ErrInconsistentWidth, s.ID, s.Len(), width)
		}
		p.IDs = append(p.IDs, s.ID)
		p.Rows = append(p.Rows, s.Residues)
	}
	return p, nil
}

func init() {
	RootCmd.AddCommand(consensusCmd)

	consensusCmd.Flags().StringVarP(&consensusInput, "in", "i", "", "path to an aligned (gapped) FASTA file")
	consensusCmd.Flags().Float64VarP(&consensusThreshold, "threshold", "t", 0.5, "majority fraction a symbol needs to win a column")

	consensusCmd.MarkFlagRequired("in")
}
