package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clustalign/clustalign/config"
	"github.com/clustalign/clustalign/internal/align"
	"github.com/clustalign/clustalign/internal/seqio"
)

var (
	alignInput  string
	alignOutput string
	alignFormat string
)

// alignCmd represents the align command
var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align the sequences of a FASTA file progressively",
	Long: `Align the sequences of a multi-FASTA file and write the multiple
sequence alignment.

Every pair of sequences is first aligned globally (Gotoh, affine gaps)
to build a distance matrix. UPGMA clustering over those distances gives
a guide tree, and the sequences are merged into profiles bottom-up
along that tree. The consensus of the final alignment is logged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.New()
		opts := conf.Options()

		seqs, err := seqio.ReadFASTA(alignInput)
		if err != nil {
			return err
		}
		if conf.Filter.MinLength > 0 || conf.Filter.MaxLength > 0 {
			before := len(seqs)
			seqs = seqio.Filter(seqs, conf.Filter.MinLength, conf.Filter.MaxLength)
			log.WithFields(log.Fields{
				"kept":    len(seqs),
				"read":    before,
				"minimum": conf.Filter.MinLength,
				"maximum": conf.Filter.MaxLength,
			}).Info("filtered sequences by length")
		}

		result, err := align.Align(context.Background(), seqs, opts)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"sequences": result.Members(),
			"columns":   result.Width(),
		}).Info("aligned")

		cons, err := align.Consensus(result, opts.ConsensusThreshold, &opts.Alphabet)
		if err != nil {
			return err
		}
		log.WithField("consensus", cons).Info("derived consensus")

		out := os.Stdout
		if alignOutput != "" {
			f, err := os.Create(alignOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		switch alignFormat {
		case "clustal":
			return seqio.WriteClustal(out, result)
		case "fasta":
			return seqio.WriteFASTA(out, result)
		default:
			return fmt.Errorf("unknown output format %q", alignFormat)
		}
	},
}

func init() {
	RootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringVarP(&alignInput, "in", "i", "", "path to a multi-FASTA file with the sequences to align")
	alignCmd.Flags().StringVarP(&alignOutput, "out", "o", "", "path to write the alignment to (default stdout)")
	alignCmd.Flags().StringVarP(&alignFormat, "format", "f", "clustal", "output format: clustal or fasta")
	alignCmd.Flags().Int("min-length", 0, "drop sequences shorter than this before aligning")
	alignCmd.Flags().Int("max-length", 0, "drop sequences longer than this before aligning")
	alignCmd.Flags().Float64P("threshold", "t", 0.5, "majority fraction a symbol needs to win a consensus column")

	alignCmd.MarkFlagRequired("in")

	viper.BindPFlag("filter.min-length", alignCmd.Flags().Lookup("min-length"))
	viper.BindPFlag("filter.max-length", alignCmd.Flags().Lookup("max-length"))
	viper.BindPFlag("consensus.threshold", alignCmd.Flags().Lookup("threshold"))
}
