package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clustalign/clustalign/config"
	"github.com/clustalign/clustalign/internal/align"
	"github.com/clustalign/clustalign/internal/seqio"
)

var treeInput string

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the UPGMA guide tree for a set of sequences",
	Long: `Print the guide tree that progressive alignment would follow, in
Newick format with branch lengths.

The tree is UPGMA clustering over pairwise alignment distances. It
orders the progressive merges; it is not a phylogeny with statistical
support.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.New()

		seqs, err := seqio.ReadFASTA(treeInput)
		if err != nil {
			return err
		}
		tree, err := align.GuideTree(context.Background(), seqs, conf.Options())
		if err != nil {
			return err
		}
		fmt.Println(tree.Newick())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringVarP(&treeInput, "in", "i", "", "path to a multi-FASTA file")

	treeCmd.MarkFlagRequired("in")
}
